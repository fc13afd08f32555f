package routes

import (
	"github.com/kodraiti-design/eagles-transportes/constants"
	authController "github.com/kodraiti-design/eagles-transportes/controllers/auth"
	clientController "github.com/kodraiti-design/eagles-transportes/controllers/client"
	dashboardController "github.com/kodraiti-design/eagles-transportes/controllers/dashboard"
	driverController "github.com/kodraiti-design/eagles-transportes/controllers/driver"
	financialController "github.com/kodraiti-design/eagles-transportes/controllers/financial"
	freightController "github.com/kodraiti-design/eagles-transportes/controllers/freight"
	notificationController "github.com/kodraiti-design/eagles-transportes/controllers/notification"
	quotationController "github.com/kodraiti-design/eagles-transportes/controllers/quotation"
	settingController "github.com/kodraiti-design/eagles-transportes/controllers/setting"
	templateController "github.com/kodraiti-design/eagles-transportes/controllers/template"
	vehicletypeController "github.com/kodraiti-design/eagles-transportes/controllers/vehicletype"
	"github.com/kodraiti-design/eagles-transportes/logger"
	"github.com/kodraiti-design/eagles-transportes/middleware"
	"github.com/kodraiti-design/eagles-transportes/services/lifecycle"
	notificationService "github.com/kodraiti-design/eagles-transportes/services/notification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	engine := lifecycle.NewEngine(db)
	ledger := notificationService.NewGormLedger(db)

	auth := authController.NewAuthController(db, asyncLogger)
	drivers := driverController.NewDriverController(db, engine, asyncLogger)
	clients := clientController.NewClientController(db, asyncLogger)
	freights := freightController.NewFreightController(db, engine, asyncLogger)
	notifications := notificationController.NewNotificationController(engine, ledger, asyncLogger)
	quotations := quotationController.NewQuotationController(db, asyncLogger)
	vehicleTypes := vehicletypeController.NewVehicleTypeController(db)
	templates := templateController.NewTemplateController(db)
	financial := financialController.NewFinancialController(db, asyncLogger)
	settings := settingController.NewSettingController(db)
	dashboard := dashboardController.NewDashboardController(db, engine, ledger)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	app.Use(middleware.AuditLog(asyncLogger))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"service": "eagles-transportes", "status": "ok"})
	})

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Post("/login", auth.Login)

	// Driver self-service acceptance page. The driver follows a WhatsApp
	// link and acts without an account; the freight id is the handle.
	acceptance := api.Group("/acceptance")
	acceptance.Get("/freights/:id", freights.Show)
	acceptance.Post("/freights/:id/accept", freights.Accept)
	acceptance.Post("/freights/:id/reject", freights.Reject)
	acceptance.Post("/freights/:id/start-transit", freights.StartTransit)
	acceptance.Post("/freights/:id/deliver", freights.Deliver)

	/*=============================================================================
	| User Routes
	===============================================================================*/
	authGroup := api.Group("/auth")
	authGroup.Get("/profile", middleware.RequireAuthentication(), auth.Profile)
	authGroup.Get("/users", middleware.RequirePermission(constants.PermManageUsers), auth.Index)
	authGroup.Post("/register", middleware.RequirePermission(constants.PermManageUsers), auth.Register)
	authGroup.Put("/users/:id", middleware.RequirePermission(constants.PermManageUsers), auth.Update)

	/*=============================================================================
	| Driver Routes
	===============================================================================*/
	driverGroup := api.Group("/drivers")
	driverGroup.Get("/", middleware.RequireAuthentication(), drivers.Index)
	driverGroup.Get("/eligible", middleware.RequirePermission(constants.PermAssignDriver), drivers.Eligible)
	driverGroup.Post("/", middleware.RequirePermission(constants.PermCreateDriver), drivers.Store)
	driverGroup.Put("/:id", middleware.RequirePermission(constants.PermEditDriver), drivers.Update)
	driverGroup.Patch("/:id/status", middleware.RequirePermission(constants.PermEditDriver), drivers.UpdateStatus)
	driverGroup.Delete("/:id", middleware.RequirePermission(constants.PermDeleteDriver), drivers.Destroy)

	/*=============================================================================
	| Client Routes
	===============================================================================*/
	clientGroup := api.Group("/clients")
	clientGroup.Get("/", middleware.RequireAuthentication(), clients.Index)
	clientGroup.Post("/", middleware.RequirePermission(constants.PermCreateClient), clients.Store)
	clientGroup.Put("/:id", middleware.RequirePermission(constants.PermEditClient), clients.Update)
	clientGroup.Delete("/:id", middleware.RequirePermission(constants.PermDeleteClient), clients.Destroy)

	/*=============================================================================
	| Freight Routes
	===============================================================================*/
	freightGroup := api.Group("/freights")
	freightGroup.Get("/", middleware.RequireAuthentication(), freights.Index)
	freightGroup.Get("/:id", middleware.RequireAuthentication(), freights.Show)
	freightGroup.Get("/:id/events", middleware.RequireAuthentication(), freights.Events)
	freightGroup.Post("/", middleware.RequirePermission(constants.PermCreateFreight), freights.Store)
	freightGroup.Put("/:id", middleware.RequirePermission(constants.PermEditFreight), freights.Update)
	freightGroup.Patch("/:id/status", middleware.RequirePermission(constants.PermChangeFreightStatus), freights.OverrideStatus)
	freightGroup.Post("/:id/assign/:driverId", middleware.RequirePermission(constants.PermAssignDriver), freights.AssignDriver)
	freightGroup.Patch("/:id/billing-status", middleware.RequirePermission(constants.PermViewBilling), freights.UpdateBillingStatus)
	freightGroup.Delete("/:id", middleware.RequirePermission(constants.PermDeleteFreight), freights.Destroy)

	/*=============================================================================
	| Notification Routes
	===============================================================================*/
	notificationGroup := api.Group("/notifications")
	notificationGroup.Get("/pending", middleware.RequirePermission(constants.PermSendNotifications), notifications.Pending)
	notificationGroup.Post("/freights/:id/notify-client", middleware.RequirePermission(constants.PermSendNotifications), notifications.NotifyClient)
	notificationGroup.Post("/freights/:id/notify-driver", middleware.RequirePermission(constants.PermSendNotifications), notifications.NotifyDriver)
	notificationGroup.Delete("/freights/:id/ledger", middleware.RequirePermission(constants.PermManageUsers), notifications.Reset)

	/*=============================================================================
	| Quotation Routes
	===============================================================================*/
	quotationGroup := api.Group("/quotations").Use(middleware.RequirePermission(constants.PermManageQuotations))
	quotationGroup.Get("/", quotations.Index)
	quotationGroup.Post("/", quotations.Store)
	quotationGroup.Post("/parse", quotations.Parse)
	quotationGroup.Put("/:id", quotations.Update)
	quotationGroup.Delete("/:id", quotations.Destroy)

	/*=============================================================================
	| Registry Routes
	===============================================================================*/
	vehicleTypeGroup := api.Group("/vehicle-types")
	vehicleTypeGroup.Get("/", middleware.RequireAuthentication(), vehicleTypes.Index)
	vehicleTypeGroup.Post("/", middleware.RequirePermission(constants.PermManageSettings), vehicleTypes.Store)
	vehicleTypeGroup.Delete("/:id", middleware.RequirePermission(constants.PermManageSettings), vehicleTypes.Destroy)

	templateGroup := api.Group("/templates")
	templateGroup.Get("/", middleware.RequireAuthentication(), templates.Index)
	templateGroup.Post("/", middleware.RequirePermission(constants.PermManageTemplates), templates.Store)
	templateGroup.Put("/:id", middleware.RequirePermission(constants.PermManageTemplates), templates.Update)
	templateGroup.Delete("/:id", middleware.RequirePermission(constants.PermManageTemplates), templates.Destroy)

	/*=============================================================================
	| Financial Routes
	===============================================================================*/
	financialGroup := api.Group("/financial").Use(middleware.RequirePermission(constants.PermViewFinancial))
	financialGroup.Get("/transactions", financial.Transactions)
	financialGroup.Post("/transactions", financial.StoreTransaction)
	financialGroup.Put("/transactions/:id", financial.UpdateTransaction)
	financialGroup.Delete("/transactions/:id", financial.DestroyTransaction)
	financialGroup.Get("/categories", financial.Categories)
	financialGroup.Post("/categories", financial.StoreCategory)
	financialGroup.Delete("/categories/:id", financial.DestroyCategory)

	/*=============================================================================
	| Settings and Dashboard Routes
	===============================================================================*/
	settingGroup := api.Group("/settings").Use(middleware.RequirePermission(constants.PermManageSettings))
	settingGroup.Get("/", settings.Index)
	settingGroup.Post("/", settings.Upsert)
	settingGroup.Delete("/:key", settings.Destroy)

	api.Get("/dashboard/stats", middleware.RequirePermission(constants.PermViewDashboard), dashboard.Stats)
}
