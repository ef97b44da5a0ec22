package handlers_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/gin-gonic/gin"

	"github.com/hiyoko-dev/crm-web/internal/models"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *AuthHandlerTestSuite) SetupTest() {
	suite.db = openTestDB(suite.T())
	suite.router = newRouter(suite.db, 0)
}

func (suite *AuthHandlerTestSuite) createUser(username, password string) *models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	suite.Require().NoError(err)
	user := &models.User{Username: username, PasswordHash: string(hash)}
	suite.Require().NoError(suite.db.Create(user).Error)
	return user
}

func (suite *AuthHandlerTestSuite) TestRegister_RedirectsToLoginWithoutAuthenticating() {
	w := doPostForm(suite.router, "/register/", url.Values{
		"username":  {"newuser"},
		"password1": {"password123"},
		"password2": {"password123"},
	})

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/login/", w.Header().Get("Location"))

	var user models.User
	suite.Require().NoError(suite.db.Where("username = ?", "newuser").First(&user).Error)
	suite.NotEmpty(user.PasswordHash)

	// No session cookie grants access; the dashboard still redirects to login.
	dash := doGet(suite.router, "/")
	suite.Equal(http.StatusFound, dash.Code)
	suite.Equal("/login/", dash.Header().Get("Location"))
}

func (suite *AuthHandlerTestSuite) TestRegister_PasswordMismatchReRendersForm() {
	w := doPostForm(suite.router, "/register/", url.Values{
		"username":  {"newuser"},
		"password1": {"password123"},
		"password2": {"different456"},
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "password fields didn")

	var count int64
	suite.Require().NoError(suite.db.Model(&models.User{}).Count(&count).Error)
	suite.Zero(count)
}

func (suite *AuthHandlerTestSuite) TestRegister_DuplicateUsernameReRendersForm() {
	suite.createUser("taken", "password123")

	w := doPostForm(suite.router, "/register/", url.Values{
		"username":  {"taken"},
		"password1": {"password123"},
		"password2": {"password123"},
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "already exists")
}

func (suite *AuthHandlerTestSuite) TestLogin_Success() {
	suite.createUser("alice", "password123")

	w := doPostForm(suite.router, "/login/", url.Values{
		"username": {"alice"},
		"password": {"password123"},
	})

	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/", w.Header().Get("Location"))
	suite.NotEmpty(w.Result().Cookies())
}

func (suite *AuthHandlerTestSuite) TestLogin_BadPasswordReRendersForm() {
	suite.createUser("alice", "password123")

	w := doPostForm(suite.router, "/login/", url.Values{
		"username": {"alice"},
		"password": {"wrongpass"},
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Invalid username or password.")
}

func (suite *AuthHandlerTestSuite) TestLogin_UnknownUserReRendersForm() {
	w := doPostForm(suite.router, "/login/", url.Values{
		"username": {"ghost"},
		"password": {"password123"},
	})

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), "Invalid username or password.")
}

func (suite *AuthHandlerTestSuite) TestLogout_RedirectsToLogin() {
	w := doGet(suite.router, "/logout/")
	suite.Equal(http.StatusFound, w.Code)
	suite.Equal("/login/", w.Header().Get("Location"))
}

func (suite *AuthHandlerTestSuite) TestUnauthenticatedPagesRedirectToLogin() {
	for _, path := range []string{"/", "/contacts/", "/deals/", "/tasks/", "/companies/", "/reports/"} {
		w := doGet(suite.router, path)
		suite.Equal(http.StatusFound, w.Code, "path %s", path)
		suite.Equal("/login/", w.Header().Get("Location"), "path %s", path)
	}
}

func TestAuthHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}
