package database

import (
	"fmt"
	"os"

	"github.com/kodraiti-design/eagles-transportes/logger"
	clientModel "github.com/kodraiti-design/eagles-transportes/models/client"
	driverModel "github.com/kodraiti-design/eagles-transportes/models/driver"
	financialModel "github.com/kodraiti-design/eagles-transportes/models/financial"
	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
	logModel "github.com/kodraiti-design/eagles-transportes/models/log"
	notificationModel "github.com/kodraiti-design/eagles-transportes/models/notification"
	quotationModel "github.com/kodraiti-design/eagles-transportes/models/quotation"
	settingModel "github.com/kodraiti-design/eagles-transportes/models/setting"
	templateModel "github.com/kodraiti-design/eagles-transportes/models/template"
	userModel "github.com/kodraiti-design/eagles-transportes/models/user"
	vehicletypeModel "github.com/kodraiti-design/eagles-transportes/models/vehicletype"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// InitDB initializes the database connection and runs migrations.
func InitDB() (*gorm.DB, error) {
	if err := godotenv.Load(); err != nil {
		logger.Error("Error loading .env file", err)
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	database := os.Getenv("DB_DATABASE")
	user := os.Getenv("DB_USERNAME")
	password := os.Getenv("DB_PASSWORD")
	sslmode := os.Getenv("DB_SSLMODE")

	if sslmode == "" {
		sslmode = "disable"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, database, sslmode)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Error("Failed to connect to the database", err)
		return nil, err
	}
	logger.Success("Successfully connected to the database")

	if err := autoMigrate(); err != nil {
		logger.Error("Failed to run migrations", err)
		return nil, err
	}
	logger.Success("All migrations completed successfully")

	return DB, nil
}

// autoMigrate runs auto migration in dependency stages.
func autoMigrate() error {
	// Stage 1: foundation models without foreign keys
	stage1Models := []interface{}{
		&userModel.User{},
		&driverModel.Driver{},
		&clientModel.Client{},
		&vehicletypeModel.VehicleType{},
		&quotationModel.Quotation{},
		&templateModel.MessageTemplate{},
		&settingModel.SystemSetting{},
		&financialModel.Category{},
	}

	for _, model := range stage1Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 2: models referencing stage 1
	stage2Models := []interface{}{
		&freightModel.Freight{},
		&financialModel.Transaction{},
	}

	for _, model := range stage2Models {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	// Stage 3: event, ledger and logging tables
	remainingModels := []interface{}{
		&freightModel.FreightStatusEvent{},
		&notificationModel.LedgerEntry{},
		&logModel.Log{},
	}

	for _, model := range remainingModels {
		if err := DB.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	return nil
}
