package montecarlo

import (
	"math"
	"sort"
)

type SensitivityEntry struct {
	Factor      string  `json:"factor"`
	Correlation float64 `json:"correlation"`
	Rank        int     `json:"rank"`
}

// RankSensitivity считает корреляцию Спирмена каждого фактора с годовым
// убытком и ранжирует факторы по |корреляции|. Знак сохраняется.
// Сортировка стабильная: при равных значениях порядок TEF, VULN, PLM, SLM.
func RankSensitivity(res RawResult) []SensitivityEntry {
	factors := []struct {
		name    string
		samples []float64
	}{
		{"TEF", res.TEFSamples},
		{"VULN", res.VulnSamples},
		{"PLM", res.PLMSamples},
		{"SLM", res.SLMSamples},
	}

	entries := make([]SensitivityEntry, 0, len(factors))
	for _, f := range factors {
		corr := SpearmanCorrelation(f.samples, res.AnnualLosses)
		entries = append(entries, SensitivityEntry{
			Factor:      f.name,
			Correlation: round4(corr),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return math.Abs(entries[i].Correlation) > math.Abs(entries[j].Correlation)
	})
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}
