package montecarlo

import (
	"encoding/json"
	"fmt"
	"strings"

	"risk-quant/internal/models"

	"gorm.io/gorm"
)

// MissingFactorInputsError — сценарий не готов к симуляции:
// часть из 12 факторов FAIR не заполнена. Прогон при этом не создаётся.
type MissingFactorInputsError struct {
	Fields []string
}

func (e *MissingFactorInputsError) Error() string {
	return "missing FAIR factor inputs: " + strings.Join(e.Fields, ", ")
}

// RunAndStore — единственная точка входа в движок для остальной системы:
// валидирует сценарий, сводит эффективность контролей, запускает ядро
// и сохраняет неизменяемый SimulationRun.
func RunAndStore(db *gorm.DB, scenarioID uint, iterations int, seed *int64, distribution Distribution) (*models.SimulationRun, error) {
	var scenario models.RiskScenario
	if err := db.First(&scenario, scenarioID).Error; err != nil {
		return nil, fmt.Errorf("load scenario %d: %w", scenarioID, err)
	}

	if missing := scenario.MissingFactorInputs(); len(missing) > 0 {
		return nil, &MissingFactorInputsError{Fields: missing}
	}

	var links []models.ScenarioControlLink
	if err := db.Where("scenario_id = ?", scenarioID).Find(&links).Error; err != nil {
		return nil, fmt.Errorf("load control links: %w", err)
	}
	combined := CombinedEffectiveness(links)

	// нераспознанный выбор распределения — PERT, и в прогон пишем уже
	// нормализованное значение
	distribution = ParseDistribution(string(distribution))

	// Границы min/max выправляем по каждому фактору отдельно:
	// на порядок ввода выше по стеку не полагаемся.
	in := Inputs{
		TEF:  Triplet{Min: *scenario.TEFMin, Likely: *scenario.TEFLikely, Max: *scenario.TEFMax}.Ordered(),
		Vuln: Triplet{Min: *scenario.VulnMin, Likely: *scenario.VulnLikely, Max: *scenario.VulnMax}.Ordered(),
		PLM:  Triplet{Min: *scenario.PLMMin, Likely: *scenario.PLMLikely, Max: *scenario.PLMMax}.Ordered(),
		SLM:  Triplet{Min: *scenario.SLMMin, Likely: *scenario.SLMLikely, Max: *scenario.SLMMax}.Ordered(),

		ControlEffectiveness: combined,
		Iterations:           iterations,
		Seed:                 seed,
		Distribution:         distribution,
	}

	res := Run(in)
	stats, histogram, exceedance := Summarize(res.AnnualLosses)
	sensitivity := RankSensitivity(res)

	histogramJSON, err := json.Marshal(histogram)
	if err != nil {
		return nil, fmt.Errorf("encode histogram: %w", err)
	}
	exceedanceJSON, err := json.Marshal(exceedance)
	if err != nil {
		return nil, fmt.Errorf("encode exceedance curve: %w", err)
	}
	sensitivityJSON, err := json.Marshal(sensitivity)
	if err != nil {
		return nil, fmt.Errorf("encode sensitivity ranking: %w", err)
	}

	run := &models.SimulationRun{
		ScenarioID:   scenarioID,
		Iterations:   iterations,
		Seed:         seed,
		Distribution: string(in.Distribution),

		MeanALE:   stats.Mean,
		MedianALE: stats.Median,
		P5ALE:     stats.P5,
		P10ALE:    stats.P10,
		P90ALE:    stats.P90,
		P95ALE:    stats.P95,
		StdDev:    stats.StdDev,
		MinALE:    stats.Min,
		MaxALE:    stats.Max,

		CombinedControlEffectiveness: combined,

		HistogramJSON:   string(histogramJSON),
		ExceedanceJSON:  string(exceedanceJSON),
		SensitivityJSON: string(sensitivityJSON),
	}

	if err := db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("store simulation run: %w", err)
	}

	return run, nil
}
