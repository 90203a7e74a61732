package models

import "gorm.io/gorm"

// Сценарий риска с факторами FAIR (количественная оценка).
// Все 12 факторов — трёхточечные оценки аналитика: min / likely / max.
// Поля nullable: пока аналитик не заполнил все 12 значений,
// симуляция запускаться не должна.
type RiskScenario struct {
	gorm.Model
	ScenarioRef string `gorm:"size:32;uniqueIndex"` // Например: RS-2024-001
	Title       string `gorm:"size:255;not null"`
	Description string `gorm:"type:text"`

	// TEF — Threat Event Frequency, событий/год
	TEFMin    *float64
	TEFLikely *float64
	TEFMax    *float64

	// Vuln — Vulnerability, вероятность [0,1]
	VulnMin    *float64
	VulnLikely *float64
	VulnMax    *float64

	// PLM — Primary Loss Magnitude, в валюте
	PLMMin    *float64
	PLMLikely *float64
	PLMMax    *float64

	// SLM — Secondary Loss Magnitude, в валюте
	SLMMin    *float64
	SLMLikely *float64
	SLMMax    *float64

	ControlLinks   []ScenarioControlLink `gorm:"foreignKey:ScenarioID"`
	SimulationRuns []SimulationRun       `gorm:"foreignKey:ScenarioID"`
}

// MissingFactorInputs возвращает имена незаполненных факторов FAIR.
// Пустой срез — сценарий готов к симуляции.
func (s *RiskScenario) MissingFactorInputs() []string {
	fields := []struct {
		name  string
		value *float64
	}{
		{"tef_min", s.TEFMin}, {"tef_likely", s.TEFLikely}, {"tef_max", s.TEFMax},
		{"vuln_min", s.VulnMin}, {"vuln_likely", s.VulnLikely}, {"vuln_max", s.VulnMax},
		{"plm_min", s.PLMMin}, {"plm_likely", s.PLMLikely}, {"plm_max", s.PLMMax},
		{"slm_min", s.SLMMin}, {"slm_likely", s.SLMLikely}, {"slm_max", s.SLMMax},
	}

	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}
