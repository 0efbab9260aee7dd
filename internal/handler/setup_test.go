package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"indiepulse/backend/internal/auth"
	"indiepulse/backend/internal/config"
	"indiepulse/backend/internal/database"
	"indiepulse/backend/internal/dataset"
	"indiepulse/backend/internal/models"
	"indiepulse/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fakeMailer records sent mail instead of talking to an SMTP server.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to, subject, body string
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

// setupRouter wires a fresh in-memory database, a testdata-backed analysis
// store and the full route table, mirroring the wiring in main.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.ContactMessage{}))
	database.DB = db

	Analytics = dataset.NewStore("testdata")
	Mail = &fakeMailer{}

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", RegisterUser)
		api.POST("/auth/login", LoginUser)
		api.POST("/contact", auth.OptionalAuthMiddleware(), SubmitContact)
		api.GET("/users/me", auth.AuthMiddleware(), GetMe)

		analysisRoutes := api.Group("/analysis", auth.AuthMiddleware())
		{
			analysisRoutes.GET("/genres", GetGenreAnalysis)
			analysisRoutes.GET("/prices", GetPriceAnalysis)
			analysisRoutes.GET("/languages", GetLanguageAnalysis)
		}

		admin := api.Group("/admin", auth.AuthMiddleware(), auth.AdminMiddleware())
		{
			admin.GET("/messages", ListContactMessages)
			admin.GET("/messages/:id", GetContactMessage)
			admin.POST("/messages/:id/reply", ReplyContactMessage)
			admin.POST("/analysis/refresh", RefreshAnalysis)
		}
	}
	return r
}

// createUser inserts a user with a known password and returns it with a
// valid token.
func createUser(t *testing.T, nickname, role string) (models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Nickname:     nickname,
		Email:        nickname + "@example.com",
		PasswordHash: string(hash),
		Role:         role,
	}
	require.NoError(t, database.DB.Create(&user).Error)

	token, err := jwt.GenerateToken(user.ID)
	require.NoError(t, err)
	return user, token
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out), w.Body.String())
}
