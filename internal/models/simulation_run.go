package models

import "time"

// Результат одного прогона Монте-Карло по сценарию.
// Запись неизменяемая: создаётся один раз, никогда не обновляется.
// ALE — Annualized Loss Expectancy (годовой убыток).
type SimulationRun struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	ScenarioID uint

	Iterations   int
	Seed         *int64 // nil — прогон невоспроизводим
	Distribution string `gorm:"size:16;not null"` // PERT / TRIANGULAR

	MeanALE   float64
	MedianALE float64
	P5ALE     float64
	P10ALE    float64
	P90ALE    float64
	P95ALE    float64
	StdDev    float64
	MinALE    float64
	MaxALE    float64

	CombinedControlEffectiveness float64

	// Готовые к отдаче наружу агрегаты (JSON): гистограмма на 30 корзин,
	// кривая превышения убытка на 50 точек, ранжированная чувствительность.
	HistogramJSON   string `gorm:"type:text"`
	ExceedanceJSON  string `gorm:"type:text"`
	SensitivityJSON string `gorm:"type:text"`
}
