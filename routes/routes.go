package routes

import (
	"net/http"
	"time"

	"digitaltailor-backend/config"
	"digitaltailor-backend/controllers"
	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/services"
	"digitaltailor-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the wired services the HTTP layer needs.
type Dependencies struct {
	Config        *config.Config
	Logger        *zap.Logger
	Users         repository.UserStore
	Templates     repository.TemplateStore
	Notifications repository.NotificationLogStore
	Customers     *services.CustomerService
	Orders        *services.OrderService
	Reminders     *services.ReminderService
	Hub           *services.Hub
}

func SetupRouter(d Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     d.Config.Origins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	r.Use(cors.New(corsConfig))

	r.Use(config.PerformanceLogger(d.Logger, d.Config.SlowRequestThreshold))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "store": d.Config.DirectoryStore})
	})

	secret := d.Config.JWTSecret
	tailorOnly := utils.RequireRole(models.RoleTailor)

	authController := &controllers.AuthController{
		Users:     d.Users,
		Customers: d.Customers,
		Secret:    secret,
		Expiry:    d.Config.JWTExpiry(),
		Logger:    d.Logger,
	}
	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/customer-login", authController.CustomerLogin)

		auth.GET("/me", utils.AuthMiddleware(secret), authController.Me)
	}

	customerController := &controllers.CustomerController{Customers: d.Customers, Logger: d.Logger}
	orderController := &controllers.OrderController{
		Orders:        d.Orders,
		Notifications: d.Notifications,
		Logger:        d.Logger,
	}
	templateController := &controllers.TemplateController{Templates: d.Templates, Logger: d.Logger}
	profileController := &controllers.ProfileController{Users: d.Users, Logger: d.Logger}
	dashboardController := &controllers.DashboardController{Orders: d.Orders, Logger: d.Logger}
	reminderController := &controllers.ReminderController{Reminders: d.Reminders}
	streamController := &controllers.StreamController{Orders: d.Orders, Hub: d.Hub, Logger: d.Logger}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware(secret))
	{
		// Shared by tailor and customer; handlers check ownership
		api.GET("/customers/:id", customerController.GetCustomer)
		api.GET("/orders/:id", orderController.GetOrder)

		catalog := api.Group("/catalog")
		{
			catalog.GET("/suit-types", controllers.GetSuitTypes)
			catalog.GET("/measurement-fields", controllers.GetMeasurementFields)
		}

		api.GET("/my/orders", utils.RequireRole(models.RoleCustomer), orderController.GetMyOrders)

		tailor := api.Group("", tailorOnly)
		{
			customers := tailor.Group("/customers")
			{
				customers.POST("", customerController.CreateCustomer)
				customers.GET("", customerController.GetCustomers)
				customers.PUT("/:id", customerController.UpdateCustomer)
				customers.PUT("/:id/profile-picture", customerController.SetProfilePicture)
			}

			orders := tailor.Group("/orders")
			{
				orders.POST("", orderController.CreateOrder)
				orders.GET("", orderController.GetOrders)
				orders.PATCH("/:id/status", orderController.UpdateStatus)
				orders.POST("/:id/messages", orderController.SendMessage)
				orders.POST("/:id/photos", orderController.AddPhoto)
				orders.POST("/:id/payments", orderController.RecordPayment)
				orders.GET("/:id/notifications", orderController.GetNotifications)
			}

			templates := tailor.Group("/templates")
			{
				templates.POST("", templateController.CreateTemplate)
				templates.GET("", templateController.GetTemplates)
				templates.GET("/:id", templateController.GetTemplate)
				templates.PUT("/:id", templateController.UpdateTemplate)
				templates.DELETE("/:id", templateController.DeleteTemplate)
			}

			profile := tailor.Group("/profile")
			{
				profile.GET("", profileController.GetProfile)
				profile.PUT("", profileController.UpdateProfile)
				profile.PUT("/notifications", profileController.UpdateNotificationSettings)
			}

			tailor.GET("/dashboard", dashboardController.GetDashboardOverview)
			tailor.GET("/reports", dashboardController.GetReportAnalytics)
			tailor.POST("/reminders/run", reminderController.RunReminders)
			tailor.GET("/stream", streamController.StreamDirectory)
		}
	}

	return r
}
