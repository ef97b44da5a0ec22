package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"

	"github.com/hiyoko-dev/crm-web/internal/config"
	"github.com/hiyoko-dev/crm-web/internal/constants"
	"github.com/hiyoko-dev/crm-web/internal/database"
	"github.com/hiyoko-dev/crm-web/internal/handlers"
	"github.com/hiyoko-dev/crm-web/internal/middleware"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Gin router
	r := gin.Default()
	r.LoadHTMLGlob("web/templates/*.html")

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	dealRepo := repository.NewDealRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	recorder := services.NewActivityService(activityRepo)
	dashboardService := services.NewDashboardService(db, taskRepo, activityRepo)
	reportService := services.NewReportService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	contactHandler := handlers.NewContactHandler(contactRepo, noteRepo, activityRepo, userRepo, recorder)
	dealHandler := handlers.NewDealHandler(dealRepo, contactRepo, companyRepo, noteRepo, activityRepo, userRepo, recorder)
	taskHandler := handlers.NewTaskHandler(taskRepo, contactRepo, dealRepo, userRepo, recorder)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	// Public routes
	r.GET("/login/", authHandler.LoginPage)
	r.POST("/login/", authHandler.Login)
	r.GET("/logout/", authHandler.Logout)
	r.GET("/register/", authHandler.RegisterPage)
	r.POST("/register/", authHandler.Register)

	// Authenticated pages
	pages := r.Group("/")
	pages.Use(middleware.RequireAuth())
	{
		pages.GET("/", dashboardHandler.Home)

		pages.GET("/contacts/", contactHandler.List)
		pages.GET("/contacts/create/", contactHandler.CreatePage)
		pages.POST("/contacts/create/", contactHandler.Create)
		pages.GET("/contacts/:id/", contactHandler.Detail)
		pages.GET("/contacts/:id/edit/", contactHandler.EditPage)
		pages.POST("/contacts/:id/edit/", contactHandler.Edit)

		pages.GET("/deals/", dealHandler.List)
		pages.GET("/deals/create/", dealHandler.CreatePage)
		pages.POST("/deals/create/", dealHandler.Create)
		pages.GET("/deals/:id/", dealHandler.Detail)

		pages.GET("/tasks/", taskHandler.List)
		pages.GET("/tasks/create/", taskHandler.CreatePage)
		pages.POST("/tasks/create/", taskHandler.Create)

		pages.GET("/companies/", companyHandler.List)
		pages.GET("/companies/create/", companyHandler.CreatePage)
		pages.POST("/companies/create/", companyHandler.Create)

		pages.GET("/reports/", reportHandler.Reports)
	}

	// Start server
	log.Printf("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
