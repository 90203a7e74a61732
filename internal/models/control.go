package models

import "gorm.io/gorm"

type EffectivenessLevel string

// Закрытая порядковая шкала эффективности контроля.
const (
	EffectivenessNone      EffectivenessLevel = "NONE"
	EffectivenessPartially EffectivenessLevel = "PARTIALLY_EFFECTIVE"
	EffectivenessLargely   EffectivenessLevel = "LARGELY_EFFECTIVE"
	EffectivenessEffective EffectivenessLevel = "EFFECTIVE"
	EffectivenessFully     EffectivenessLevel = "FULLY_EFFECTIVE"
)

// Числовая сила категории для движка симуляции.
// Таблица фиксированная: неизвестная категория трактуется как NONE.
var EffectivenessNumeric = map[EffectivenessLevel]float64{
	EffectivenessNone:      0.0,
	EffectivenessPartially: 0.25,
	EffectivenessLargely:   0.5,
	EffectivenessEffective: 0.75,
	EffectivenessFully:     1.0,
}

// NumericStrength возвращает силу уровня по таблице, 0.0 для неизвестных.
func (e EffectivenessLevel) NumericStrength() float64 {
	return EffectivenessNumeric[e]
}

// Каталог внедрённых контролей (мер защиты).
type ControlImplementation struct {
	gorm.Model
	Code          string             `gorm:"size:32;uniqueIndex"`
	Name          string             `gorm:"size:255;not null"`
	Effectiveness EffectivenessLevel `gorm:"type:varchar(32);not null"`
	Notes         string             `gorm:"type:text"`
}

// Связь "сценарий риска → контроль".
// EffectivenessAtLink — снимок эффективности контроля на момент привязки:
// последующие правки каталога не меняют смысл уже сохранённых прогонов.
type ScenarioControlLink struct {
	gorm.Model

	ScenarioID       uint
	ImplementationID uint

	EffectivenessAtLink EffectivenessLevel `gorm:"type:varchar(32)"`
	Weight              *float64           // nil => 1.0, в агрегации обрезается до [0,1]

	Implementation ControlImplementation `gorm:"foreignKey:ImplementationID"`
}
