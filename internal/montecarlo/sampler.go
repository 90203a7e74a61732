package montecarlo

import (
	"math"
	"math/rand"
)

// Порог, ниже которого диапазон считаем вырожденным.
const epsilon = 1e-12

// Параметр формы PERT. В методологии фиксирован, наружу не выносится.
const pertLambda = 4.0

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SamplePERT — выборка из PERT-распределения (модифицированное Beta)
// по трёхточечной оценке min / likely / max.
// Перевод в Beta(a1, a2) — по стандартной формуле PERT,
// сама Beta — как X/(X+Y) из двух независимых Gamma(a, 1).
func SamplePERT(minVal, likely, maxVal float64, rng *rand.Rand) float64 {
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}
	likely = clamp(likely, minVal, maxVal)

	// вырожденный диапазон
	if maxVal-minVal < epsilon {
		return likely
	}

	mu := (minVal + pertLambda*likely + maxVal) / (pertLambda + 2)

	// При likely == mu стандартная формула a1 делит на ноль.
	// Откатываемся на симметричную колоколообразную форму a1 = a2 = 1 + lambda/2.
	denom := (likely - mu) * (maxVal - minVal)
	var a1, a2 float64
	if math.Abs(denom) < epsilon {
		a1 = 1.0 + pertLambda/2.0
		a2 = a1
	} else {
		a1 = ((mu - minVal) * (2*likely - minVal - maxVal)) / denom
		if a1 <= 0 {
			a1 = 1.0 + pertLambda/2.0
		}
		if mu-minVal > epsilon {
			a2 = a1 * (maxVal - mu) / (mu - minVal)
		} else {
			a2 = 1.0 + pertLambda/2.0
		}
		if a2 <= 0 {
			a2 = 1.0 + pertLambda/2.0
		}
	}

	x := gammaVariate(rng, a1)
	y := gammaVariate(rng, a2)
	beta := 0.5
	if x+y != 0 {
		beta = x / (x + y)
	}

	return minVal + beta*(maxVal-minVal)
}

// SampleTriangular — выборка из треугольного распределения методом обращения.
// Мода (likely) обрезается в границы диапазона.
func SampleTriangular(minVal, likely, maxVal float64, rng *rand.Rand) float64 {
	if minVal > maxVal {
		minVal, maxVal = maxVal, minVal
	}
	if maxVal-minVal < epsilon {
		return likely
	}
	mode := clamp(likely, minVal, maxVal)

	u := rng.Float64()
	fc := (mode - minVal) / (maxVal - minVal)
	if u < fc {
		return minVal + math.Sqrt(u*(maxVal-minVal)*(mode-minVal))
	}
	return maxVal - math.Sqrt((1-u)*(maxVal-minVal)*(maxVal-mode))
}

// SamplePoisson — целочисленная пуассоновская выборка.
// Для малых rate — мультипликативный алгоритм Кнута,
// для rate >= 30 — гауссово приближение с обрезкой в ноль.
func SamplePoisson(rate float64, rng *rand.Rand) int {
	if rate <= 0 {
		return 0
	}

	if rate < 30 {
		l := math.Exp(-rate)
		k := 0
		p := 1.0
		for {
			k++
			p *= rng.Float64()
			if p <= l {
				return k - 1
			}
		}
	}

	n := math.Round(rng.NormFloat64()*math.Sqrt(rate) + rate)
	if n < 0 {
		return 0
	}
	return int(n)
}

// gammaVariate — Gamma(alpha, 1) по Marsaglia–Tsang.
// В math/rand гамма-генератора нет.
func gammaVariate(rng *rand.Rand, alpha float64) float64 {
	if alpha < 1 {
		// буст: Gamma(a) = Gamma(a+1) * U^(1/a)
		u := rng.Float64()
		for u == 0 {
			u = rng.Float64()
		}
		return gammaVariate(rng, alpha+1) * math.Pow(u, 1/alpha)
	}

	d := alpha - 1.0/3.0
	c := 1.0 / math.Sqrt(9*d)
	for {
		var x, v float64
		for {
			x = rng.NormFloat64()
			v = 1 + c*x
			if v > 0 {
				break
			}
		}
		v = v * v * v

		u := rng.Float64()
		if u < 1-0.0331*x*x*x*x {
			return d * v
		}
		if math.Log(u) < 0.5*x*x+d*(1-v+math.Log(v)) {
			return d * v
		}
	}
}
