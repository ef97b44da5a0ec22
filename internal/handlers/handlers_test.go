package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hiyoko-dev/crm-web/internal/constants"
	"github.com/hiyoko-dev/crm-web/internal/handlers"
	"github.com/hiyoko-dev/crm-web/internal/middleware"
	"github.com/hiyoko-dev/crm-web/internal/models"
	"github.com/hiyoko-dev/crm-web/internal/repository"
	"github.com/hiyoko-dev/crm-web/internal/services"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Contact{},
		&models.Company{},
		&models.Deal{},
		&models.Task{},
		&models.Note{},
		&models.Activity{},
	)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return db
}

// newRouter wires the full page router against db the way cmd/server does,
// with a cookie session store instead of Redis. When currentUserID is nonzero
// the page group is pre-authenticated as that user; otherwise RequireAuth runs
// as in production.
func newRouter(db *gorm.DB, currentUserID uint64) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")

	store := cookie.NewStore([]byte("test-secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	dealRepo := repository.NewDealRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	authService := services.NewAuthService(userRepo)
	recorder := services.NewActivityService(activityRepo)
	dashboardService := services.NewDashboardService(db, taskRepo, activityRepo)
	reportService := services.NewReportService(db)

	authHandler := handlers.NewAuthHandler(authService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	contactHandler := handlers.NewContactHandler(contactRepo, noteRepo, activityRepo, userRepo, recorder)
	dealHandler := handlers.NewDealHandler(dealRepo, contactRepo, companyRepo, noteRepo, activityRepo, userRepo, recorder)
	taskHandler := handlers.NewTaskHandler(taskRepo, contactRepo, dealRepo, userRepo, recorder)
	companyHandler := handlers.NewCompanyHandler(companyRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	r.GET("/login/", authHandler.LoginPage)
	r.POST("/login/", authHandler.Login)
	r.GET("/logout/", authHandler.Logout)
	r.GET("/register/", authHandler.RegisterPage)
	r.POST("/register/", authHandler.Register)

	pages := r.Group("/")
	if currentUserID != 0 {
		pages.Use(func(c *gin.Context) {
			c.Set(constants.ContextKeyUserID, currentUserID)
			c.Next()
		})
	} else {
		pages.Use(middleware.RequireAuth())
	}
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

	return r
}

func doGet(r http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func indexOf(haystack, needle string) int {
	return strings.Index(haystack, needle)
}

func doPostForm(r http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
