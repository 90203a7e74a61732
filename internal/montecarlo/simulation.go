package montecarlo

import (
	"math/rand"
	"time"
)

type Distribution string

const (
	DistributionPERT       Distribution = "PERT"
	DistributionTriangular Distribution = "TRIANGULAR"
)

// ParseDistribution нормализует выбор распределения.
// Неизвестное значение — PERT, это поведение по умолчанию, не ошибка.
func ParseDistribution(s string) Distribution {
	if Distribution(s) == DistributionTriangular {
		return DistributionTriangular
	}
	return DistributionPERT
}

// Трёхточечная оценка одного фактора FAIR.
type Triplet struct {
	Min    float64
	Likely float64
	Max    float64
}

// Ordered возвращает триплет с гарантированным Min <= Max.
// Пользователь мог ввести границы наоборот — молча меняем местами.
func (t Triplet) Ordered() Triplet {
	if t.Min > t.Max {
		t.Min, t.Max = t.Max, t.Min
	}
	return t
}

// Inputs — всё, что нужно ядру симуляции. Никакого глобального состояния:
// генератор случайных чисел создаётся внутри Run и живёт только в нём,
// поэтому параллельные симуляции друг другу не мешают.
type Inputs struct {
	TEF  Triplet
	Vuln Triplet
	PLM  Triplet
	SLM  Triplet

	ControlEffectiveness float64 // [0,1], доля снижения каждого убытка
	Iterations           int
	Seed                 *int64 // nil — невоспроизводимый прогон
	Distribution         Distribution
}

// RawResult — посерийные результаты прогона. Каждый ряд имеет длину
// Iterations; факторные ряды пишутся по годам (не по событиям) —
// они нужны анализу чувствительности.
type RawResult struct {
	AnnualLosses []float64
	TEFSamples   []float64
	VulnSamples  []float64
	PLMSamples   []float64
	SLMSamples   []float64
}

// Run — ядро Монте-Карло по модели FAIR: один прогон = Iterations
// независимых симулированных лет.
func Run(in Inputs) RawResult {
	var src rand.Source
	if in.Seed != nil {
		src = rand.NewSource(*in.Seed)
	} else {
		src = rand.NewSource(time.Now().UnixNano())
	}
	rng := rand.New(src)

	sample := SamplePERT
	if in.Distribution == DistributionTriangular {
		sample = SampleTriangular
	}

	res := RawResult{
		AnnualLosses: make([]float64, 0, in.Iterations),
		TEFSamples:   make([]float64, 0, in.Iterations),
		VulnSamples:  make([]float64, 0, in.Iterations),
		PLMSamples:   make([]float64, 0, in.Iterations),
		SLMSamples:   make([]float64, 0, in.Iterations),
	}

	lossReduction := 1.0 - clamp(in.ControlEffectiveness, 0.0, 1.0)

	for i := 0; i < in.Iterations; i++ {
		// 1. Частота угрозных событий, не ниже нуля
		tef := sample(in.TEF.Min, in.TEF.Likely, in.TEF.Max, rng)
		if tef < 0 {
			tef = 0
		}
		res.TEFSamples = append(res.TEFSamples, tef)

		// 2. Уязвимость — вероятность, обрезаем в [0,1]
		vuln := clamp(sample(in.Vuln.Min, in.Vuln.Likely, in.Vuln.Max, rng), 0.0, 1.0)
		res.VulnSamples = append(res.VulnSamples, vuln)

		// 3. Число событий с убытком за год
		events := SamplePoisson(tef*vuln, rng)

		// 4. По каждому событию — первичный и вторичный убыток
		annualLoss := 0.0
		yearPLM := 0.0
		yearSLM := 0.0
		for e := 0; e < events; e++ {
			plm := sample(in.PLM.Min, in.PLM.Likely, in.PLM.Max, rng)
			if plm < 0 {
				plm = 0
			}
			slm := sample(in.SLM.Min, in.SLM.Likely, in.SLM.Max, rng)
			if slm < 0 {
				slm = 0
			}
			annualLoss += (plm + slm) * lossReduction
			yearPLM += plm
			yearSLM += slm
		}

		res.PLMSamples = append(res.PLMSamples, yearPLM)
		res.SLMSamples = append(res.SLMSamples, yearSLM)
		res.AnnualLosses = append(res.AnnualLosses, annualLoss)
	}

	return res
}
