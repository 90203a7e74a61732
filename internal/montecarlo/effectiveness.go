package montecarlo

import "risk-quant/internal/models"

// CombinedEffectiveness сводит привязанные контроли в одну долю снижения
// риска по модели убывающей отдачи: residual = П(1 - w_i * eff_i).
// Независимые несовершенные контроли не складываются аддитивно.
// Берётся снимок эффективности из самой связи, не из каталога.
func CombinedEffectiveness(links []models.ScenarioControlLink) float64 {
	if len(links) == 0 {
		return 0.0
	}

	product := 1.0
	for _, link := range links {
		eff := link.EffectivenessAtLink
		if eff == "" {
			eff = models.EffectivenessNone
		}
		weight := 1.0
		if link.Weight != nil {
			weight = *link.Weight
		}
		weight = clamp(weight, 0.0, 1.0)

		product *= 1.0 - weight*eff.NumericStrength()
	}

	return round4(1.0 - product)
}
