package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"risk-quant/internal/models"
)

func link(eff models.EffectivenessLevel, weight *float64) models.ScenarioControlLink {
	return models.ScenarioControlLink{
		EffectivenessAtLink: eff,
		Weight:              weight,
	}
}

func fp(v float64) *float64 { return &v }

func TestCombinedEffectivenessEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CombinedEffectiveness(nil))
	assert.Equal(t, 0.0, CombinedEffectiveness([]models.ScenarioControlLink{}))
}

func TestCombinedEffectivenessSingleFull(t *testing.T) {
	links := []models.ScenarioControlLink{
		link(models.EffectivenessFully, fp(1.0)),
	}
	assert.Equal(t, 1.0, CombinedEffectiveness(links))
}

func TestCombinedEffectivenessDiminishingReturns(t *testing.T) {
	// Два независимых контроля 0.5 с полным весом: 1 - 0.5*0.5 = 0.75,
	// не 1.0 — эффективность не складывается аддитивно.
	links := []models.ScenarioControlLink{
		link(models.EffectivenessLargely, fp(1.0)),
		link(models.EffectivenessLargely, fp(1.0)),
	}
	assert.Equal(t, 0.75, CombinedEffectiveness(links))
}

func TestCombinedEffectivenessNilWeightDefaultsToOne(t *testing.T) {
	links := []models.ScenarioControlLink{
		link(models.EffectivenessFully, nil),
	}
	assert.Equal(t, 1.0, CombinedEffectiveness(links))
}

func TestCombinedEffectivenessWeightClamped(t *testing.T) {
	// Вес выше 1 обрезается до 1, ниже 0 — до 0
	assert.Equal(t, 0.5, CombinedEffectiveness([]models.ScenarioControlLink{
		link(models.EffectivenessLargely, fp(2.5)),
	}))
	assert.Equal(t, 0.0, CombinedEffectiveness([]models.ScenarioControlLink{
		link(models.EffectivenessFully, fp(-1.0)),
	}))
}

func TestCombinedEffectivenessUnknownCategory(t *testing.T) {
	// Пустая / неизвестная категория трактуется как NONE
	assert.Equal(t, 0.0, CombinedEffectiveness([]models.ScenarioControlLink{
		link("", fp(1.0)),
		link("SOMETHING_ELSE", fp(1.0)),
	}))
}

func TestCombinedEffectivenessRounding(t *testing.T) {
	// 1 - (1 - 0.25)*(1 - 0.75) = 0.8125 — округление до 4 знаков его не трогает
	links := []models.ScenarioControlLink{
		link(models.EffectivenessPartially, fp(1.0)),
		link(models.EffectivenessEffective, fp(1.0)),
	}
	assert.Equal(t, 0.8125, CombinedEffectiveness(links))
}
