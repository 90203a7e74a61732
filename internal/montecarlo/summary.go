package montecarlo

import (
	"math"
	"sort"
)

const (
	histogramBuckets = 30
	exceedancePoints = 50
)

// Сводная статистика годового убытка (ALE).
type Stats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P5     float64 `json:"p5"`
	P10    float64 `json:"p10"`
	P90    float64 `json:"p90"`
	P95    float64 `json:"p95"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type HistogramBucket struct {
	BinStart float64 `json:"bin_start"`
	BinEnd   float64 `json:"bin_end"`
	Count    int     `json:"count"`
}

type ExceedancePoint struct {
	Threshold   float64 `json:"threshold"`
	Probability float64 `json:"probability"`
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

// percentile — линейная интерполяция между порядковыми статистиками,
// индекс = pct/100 * (n-1). Вход обязан быть отсортирован.
func percentile(sorted []float64, pct float64) float64 {
	idx := pct / 100.0 * float64(len(sorted)-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	return sorted[lo] + (sorted[hi]-sorted[lo])*(idx-float64(lo))
}

// Summarize сводит ряд годовых убытков в статистику, гистограмму на 30
// корзин и кривую превышения на 50 точек. Статистика округляется до
// 2 знаков, вероятности до 4 — в таком виде прогон и сохраняется.
func Summarize(losses []float64) (Stats, []HistogramBucket, []ExceedancePoint) {
	n := len(losses)
	if n == 0 {
		return Stats{}, nil, nil
	}

	sorted := make([]float64, n)
	copy(sorted, losses)
	sort.Float64s(sorted)

	var mean float64
	for _, v := range sorted {
		mean += v
	}
	mean /= float64(n)

	var variance float64
	for _, v := range sorted {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n) // дисперсия по совокупности, не выборочная

	stats := Stats{
		Mean:   round2(mean),
		Median: round2(percentile(sorted, 50)),
		P5:     round2(percentile(sorted, 5)),
		P10:    round2(percentile(sorted, 10)),
		P90:    round2(percentile(sorted, 90)),
		P95:    round2(percentile(sorted, 95)),
		StdDev: round2(math.Sqrt(variance)),
		Min:    round2(sorted[0]),
		Max:    round2(sorted[n-1]),
	}

	// Гистограмма: 30 равных корзин по [min,max].
	// Вырожденный диапазон расширяем на 1.0, максимум падает в последнюю корзину.
	loVal := sorted[0]
	hiVal := sorted[n-1]
	if hiVal <= loVal {
		hiVal = loVal + 1.0
	}
	binWidth := (hiVal - loVal) / histogramBuckets

	counts := make([]int, histogramBuckets)
	for _, v := range sorted {
		idx := int((v - loVal) / binWidth)
		if idx >= histogramBuckets {
			idx = histogramBuckets - 1
		}
		counts[idx]++
	}

	histogram := make([]HistogramBucket, 0, histogramBuckets)
	for i := 0; i < histogramBuckets; i++ {
		histogram = append(histogram, HistogramBucket{
			BinStart: round2(loVal + float64(i)*binWidth),
			BinEnd:   round2(loVal + float64(i+1)*binWidth),
			Count:    counts[i],
		})
	}

	// Кривая превышения: P(loss > threshold) на 50 равных порогах.
	step := (hiVal - loVal) / float64(exceedancePoints-1)
	exceedance := make([]ExceedancePoint, 0, exceedancePoints)
	for i := 0; i < exceedancePoints; i++ {
		threshold := loVal + float64(i)*step
		countAbove := 0
		for _, v := range sorted {
			if v > threshold {
				countAbove++
			}
		}
		exceedance = append(exceedance, ExceedancePoint{
			Threshold:   round2(threshold),
			Probability: round4(float64(countAbove) / float64(n)),
		})
	}

	return stats, histogram, exceedance
}
