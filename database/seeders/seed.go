package seeders

import (
	"errors"
	"os"

	"github.com/kodraiti-design/eagles-transportes/logger"
	financialModel "github.com/kodraiti-design/eagles-transportes/models/financial"
	userModel "github.com/kodraiti-design/eagles-transportes/models/user"
	vehicletypeModel "github.com/kodraiti-design/eagles-transportes/models/vehicletype"
	"github.com/kodraiti-design/eagles-transportes/utils"

	"gorm.io/gorm"
)

// Seed inserts the rows a fresh install needs: the bootstrap admin,
// system financial categories and the default vehicle types.
func Seed(db *gorm.DB) error {
	if err := seedAdmin(db); err != nil {
		return err
	}
	if err := seedCategories(db); err != nil {
		return err
	}
	return seedVehicleTypes(db)
}

func seedAdmin(db *gorm.DB) error {
	var existing userModel.User
	err := db.Where("role = ?", userModel.RoleAdmin).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	password := os.Getenv("ADMIN_BOOTSTRAP_PASSWORD")
	if password == "" {
		password = "admin"
		logger.Warning("ADMIN_BOOTSTRAP_PASSWORD not set, using default bootstrap password")
	}
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	admin := userModel.User{
		Username:       "admin",
		HashedPassword: hashed,
		Role:           userModel.RoleAdmin,
		IsActive:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logger.Success("Bootstrap admin user created")
	return nil
}

func seedCategories(db *gorm.DB) error {
	categories := []financialModel.Category{
		{Name: "Frete", Type: financialModel.TransactionTypeIncome, IsSystem: true},
		{Name: "Pagamento Motorista", Type: financialModel.TransactionTypeExpense, IsSystem: true},
		{Name: "Combustível", Type: financialModel.TransactionTypeExpense, IsSystem: false},
		{Name: "Manutenção", Type: financialModel.TransactionTypeExpense, IsSystem: false},
	}

	for _, category := range categories {
		var existing financialModel.Category
		err := db.Where("name = ?", category.Name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&category).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func seedVehicleTypes(db *gorm.DB) error {
	names := []string{"Truck", "Carreta", "Bitrem", "Rodotrem", "Fiorino", "Toco"}

	for _, name := range names {
		var existing vehicletypeModel.VehicleType
		err := db.Where("name = ?", name).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&vehicletypeModel.VehicleType{Name: name}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
