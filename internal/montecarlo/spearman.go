package montecarlo

import (
	"math"
	"sort"
)

// averageRanks присваивает значениям ранги (с единицы).
// Равные значения получают средний ранг своих позиций — это важно:
// суммы, производные от Пуассона, часто повторяются.
func averageRanks(values []float64) []float64 {
	n := len(values)
	indexed := make([]int, n)
	for i := range indexed {
		indexed[i] = i
	}
	sort.Slice(indexed, func(a, b int) bool {
		return values[indexed[a]] < values[indexed[b]]
	})

	ranks := make([]float64, n)
	i := 0
	for i < n {
		j := i
		for j < n-1 && values[indexed[j+1]] == values[indexed[j]] {
			j++
		}
		avgRank := float64(i+j)/2.0 + 1.0
		for k := i; k <= j; k++ {
			ranks[indexed[k]] = avgRank
		}
		i = j + 1
	}
	return ranks
}

// SpearmanCorrelation — ранговая корреляция Спирмена двух рядов равной длины.
// Меньше трёх точек или нулевая дисперсия рангов — возвращаем 0, не ошибку.
func SpearmanCorrelation(x, y []float64) float64 {
	n := len(x)
	if n < 3 {
		return 0.0
	}

	rx := averageRanks(x)
	ry := averageRanks(y)

	var meanRX, meanRY float64
	for i := 0; i < n; i++ {
		meanRX += rx[i]
		meanRY += ry[i]
	}
	meanRX /= float64(n)
	meanRY /= float64(n)

	var num, denX, denY float64
	for i := 0; i < n; i++ {
		dx := rx[i] - meanRX
		dy := ry[i] - meanRY
		num += dx * dy
		denX += dx * dx
		denY += dy * dy
	}

	if denX == 0 || denY == 0 {
		return 0.0
	}
	return num / (math.Sqrt(denX) * math.Sqrt(denY))
}
