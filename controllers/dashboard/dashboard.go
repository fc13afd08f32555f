package dashboard

import (
	"time"

	"github.com/kodraiti-design/eagles-transportes/logger"
	clientModel "github.com/kodraiti-design/eagles-transportes/models/client"
	driverModel "github.com/kodraiti-design/eagles-transportes/models/driver"
	financialModel "github.com/kodraiti-design/eagles-transportes/models/financial"
	freightModel "github.com/kodraiti-design/eagles-transportes/models/freight"
	"github.com/kodraiti-design/eagles-transportes/services/lifecycle"
	notificationService "github.com/kodraiti-design/eagles-transportes/services/notification"
	"github.com/kodraiti-design/eagles-transportes/types"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB      *gorm.DB
	Engine  *lifecycle.Engine
	Service *notificationService.Service
}

func NewDashboardController(db *gorm.DB, engine *lifecycle.Engine, ledger notificationService.Ledger) *DashboardController {
	return &DashboardController{
		DB:      db,
		Engine:  engine,
		Service: notificationService.NewService(ledger),
	}
}

// Stats aggregates the numbers the operator dashboard shows: freight
// counts per status, active fleet and client totals, current-month
// revenue and payouts, and the size of the pending-notification queue.
func (dc *DashboardController) Stats(c *fiber.Ctx) error {
	monthStart := now.BeginningOfMonth()
	monthEnd := now.EndOfMonth()

	statusCounts := make(map[string]int64)
	for _, status := range freightModel.GetAllFreightStatuses() {
		var count int64
		if err := dc.DB.Model(&freightModel.Freight{}).
			Where("status = ?", status).
			Count(&count).Error; err != nil {
			return dc.dbError(c, err)
		}
		statusCounts[string(status)] = count
	}

	var activeDrivers int64
	if err := dc.DB.Model(&driverModel.Driver{}).
		Where("is_blocked = ? AND status = ?", false, driverModel.DriverStatusActive).
		Count(&activeDrivers).Error; err != nil {
		return dc.dbError(c, err)
	}

	var totalClients int64
	if err := dc.DB.Model(&clientModel.Client{}).Count(&totalClients).Error; err != nil {
		return dc.dbError(c, err)
	}

	// Month revenue is what clients owe for freights delivered this month;
	// month payout is what those freights cost in driver fees.
	var monthRevenue, monthPayout float64
	if err := dc.DB.Model(&freightModel.Freight{}).
		Where("status = ? AND delivered_at BETWEEN ? AND ?", freightModel.FreightStatusDelivered, monthStart, monthEnd).
		Select("COALESCE(SUM(valor_cliente), 0)").
		Scan(&monthRevenue).Error; err != nil {
		return dc.dbError(c, err)
	}
	if err := dc.DB.Model(&freightModel.Freight{}).
		Where("status = ? AND delivered_at BETWEEN ? AND ?", freightModel.FreightStatusDelivered, monthStart, monthEnd).
		Select("COALESCE(SUM(valor_motorista), 0)").
		Scan(&monthPayout).Error; err != nil {
		return dc.dbError(c, err)
	}

	var monthExpenses float64
	if err := dc.DB.Model(&financialModel.Transaction{}).
		Where("type = ? AND date BETWEEN ? AND ?", financialModel.TransactionTypeExpense, monthStart, monthEnd).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&monthExpenses).Error; err != nil {
		return dc.dbError(c, err)
	}

	freights, err := dc.Engine.List()
	if err != nil {
		return dc.dbError(c, err)
	}
	pending, err := dc.Service.PendingItems(freights)
	if err != nil {
		return dc.dbError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(types.ApiResponse{
		Status:  fiber.StatusOK,
		Message: "Dashboard stats",
		Data: fiber.Map{
			"freights_by_status":    statusCounts,
			"active_drivers":        activeDrivers,
			"total_clients":         totalClients,
			"month_revenue":         monthRevenue,
			"month_driver_payout":   monthPayout,
			"month_margin":          monthRevenue - monthPayout,
			"month_expenses":        monthExpenses,
			"pending_notifications": len(pending),
			"month_start":           monthStart.Format(time.RFC3339),
			"month_end":             monthEnd.Format(time.RFC3339),
		},
	})
}

func (dc *DashboardController) dbError(c *fiber.Ctx, err error) error {
	logger.Error("Dashboard aggregation failed", err)
	return c.Status(fiber.StatusInternalServerError).JSON(types.ApiResponse{
		Status:  fiber.StatusInternalServerError,
		Message: "Database error",
	})
}
