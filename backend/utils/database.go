package utils

import (
	"fmt"
	"mindwell/backend/config"
	"mindwell/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Journal{},
		&models.WellnessAssessment{},
		&models.DiabetesAssessment{},
		&models.HeartDiseaseAssessment{},
		&models.MentalHealthAssessment{},
		&models.StudentStress{},
		&models.StudentProcrastination{},
		&models.StudentSleep{},
		&models.StudentConfidence{},
		&models.StudentCareer{},
	)
}

// DBAvailable pings the underlying connection. Several write paths
// degrade instead of failing hard when the database is down.
func DBAvailable(db *gorm.DB) bool {
	if db == nil {
		return false
	}
	sqlDB, err := db.DB()
	if err != nil {
		return false
	}
	return sqlDB.Ping() == nil
}
