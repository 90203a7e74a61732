package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fp(v float64) *float64 { return &v }

func fullScenario() *RiskScenario {
	return &RiskScenario{
		TEFMin: fp(0.1), TEFLikely: fp(1), TEFMax: fp(5),
		VulnMin: fp(0.01), VulnLikely: fp(0.05), VulnMax: fp(0.2),
		PLMMin: fp(1000), PLMLikely: fp(5000), PLMMax: fp(50000),
		SLMMin: fp(0), SLMLikely: fp(1000), SLMMax: fp(10000),
	}
}

func TestMissingFactorInputsComplete(t *testing.T) {
	assert.Empty(t, fullScenario().MissingFactorInputs())
}

func TestMissingFactorInputsReportsNames(t *testing.T) {
	s := fullScenario()
	s.TEFMin = nil
	s.SLMMax = nil

	assert.Equal(t, []string{"tef_min", "slm_max"}, s.MissingFactorInputs())
}

func TestMissingFactorInputsAllEmpty(t *testing.T) {
	s := &RiskScenario{}
	assert.Len(t, s.MissingFactorInputs(), 12)
}

func TestEffectivenessNumericClosedTable(t *testing.T) {
	assert.Equal(t, 0.0, EffectivenessNone.NumericStrength())
	assert.Equal(t, 0.25, EffectivenessPartially.NumericStrength())
	assert.Equal(t, 0.5, EffectivenessLargely.NumericStrength())
	assert.Equal(t, 0.75, EffectivenessEffective.NumericStrength())
	assert.Equal(t, 1.0, EffectivenessFully.NumericStrength())

	// неизвестная категория деградирует до NONE
	assert.Equal(t, 0.0, EffectivenessLevel("WHATEVER").NumericStrength())
}
