package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"

	"risk-quant/internal/config"
	"risk-quant/internal/database"
	"risk-quant/internal/montecarlo"
)

// parseSeed: пустая строка — nil, прогон невоспроизводим.
// Ноль — обычный валидный seed, не сигнальное значение.
func parseSeed(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func main() {
	scenarioID := flag.Uint("scenario", 0, "risk scenario ID")
	iterations := flag.Int("iterations", 10000, "number of simulated years")
	seedFlag := flag.String("seed", "", "RNG seed, empty = non-reproducible run")
	distribution := flag.String("distribution", "PERT", "PERT or TRIANGULAR")
	flag.Parse()

	if *scenarioID == 0 {
		log.Fatal("scenario ID is required (-scenario)")
	}

	cfg := config.Load()
	database.Init(cfg.DBDSN)

	// границы числа итераций — зона ответственности вызывающей стороны,
	// ядро их не проверяет
	iters := *iterations
	if iters < 1000 {
		iters = 1000
	}
	if iters > 50000 {
		iters = 50000
	}

	seed, err := parseSeed(*seedFlag)
	if err != nil {
		log.Fatalf("invalid seed %q: %v", *seedFlag, err)
	}

	run, err := montecarlo.RunAndStore(
		database.DB,
		uint(*scenarioID),
		iters,
		seed,
		montecarlo.ParseDistribution(*distribution),
	)
	if err != nil {
		log.Fatalf("simulation failed: %v", err)
	}

	fmt.Printf("simulation run #%d (%d iterations, %s)\n", run.ID, run.Iterations, run.Distribution)
	fmt.Printf("  mean ALE:    %.2f\n", run.MeanALE)
	fmt.Printf("  median ALE:  %.2f\n", run.MedianALE)
	fmt.Printf("  p5 / p95:    %.2f / %.2f\n", run.P5ALE, run.P95ALE)
	fmt.Printf("  p10 / p90:   %.2f / %.2f\n", run.P10ALE, run.P90ALE)
	fmt.Printf("  std dev:     %.2f\n", run.StdDev)
	fmt.Printf("  min / max:   %.2f / %.2f\n", run.MinALE, run.MaxALE)
	fmt.Printf("  control eff: %.4f\n", run.CombinedControlEffectiveness)
}
