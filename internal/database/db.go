package database

import (
	"log"
	"time"

	"risk-quant/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.RiskScenario{},
		&models.ControlImplementation{},
		&models.ScenarioControlLink{},
		&models.SimulationRun{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// стартовый каталог контролей
	seedControlCatalog()
}

// Базовый набор контролей, чтобы не начинать с пустого каталога.
// Идемпотентно: если код уже есть — пропускаем.
func seedControlCatalog() {
	type seedControl struct {
		Code          string
		Name          string
		Effectiveness models.EffectivenessLevel
	}

	controls := []seedControl{
		{
			Code:          "CTL-MFA",
			Name:          "Multi-factor authentication",
			Effectiveness: models.EffectivenessLargely,
		},
		{
			Code:          "CTL-BKP",
			Name:          "Offline backups with restore testing",
			Effectiveness: models.EffectivenessEffective,
		},
		{
			Code:          "CTL-EDR",
			Name:          "Endpoint detection and response",
			Effectiveness: models.EffectivenessPartially,
		},
	}

	for _, c := range controls {
		var count int64
		if err := DB.Model(&models.ControlImplementation{}).
			Where("code = ?", c.Code).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed control %s: %v", c.Code, err)
			continue
		}
		if count > 0 {
			// уже есть — пропускаем
			continue
		}

		control := models.ControlImplementation{
			Code:          c.Code,
			Name:          c.Name,
			Effectiveness: c.Effectiveness,
		}

		if err := DB.Create(&control).Error; err != nil {
			log.Printf("failed to create seed control %s: %v", c.Code, err)
			continue
		}

		log.Printf("created seed control: %s (%s)", c.Code, c.Name)
	}
}
