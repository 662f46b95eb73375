package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prefeitura-digital/cms-go/config"
	"github.com/prefeitura-digital/cms-go/db"
	"github.com/prefeitura-digital/cms-go/middleware"
	"github.com/prefeitura-digital/cms-go/models"
	"github.com/prefeitura-digital/cms-go/routes"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/prefeitura-digital/cms-go/internal/testutils"

	_ "github.com/lib/pq"
)

var router *gin.Engine

func TestMain(m *testing.M) {
	sqlDB, cleanup := testutils.SetupPostgresForIntegration()
	defer cleanup()

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: sqlDB,
	}), &gorm.Config{
		Logger: logger.New(
			log.New(io.Discard, "", log.LstdFlags),
			logger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  logger.Silent,
				IgnoreRecordNotFoundError: true,
				Colorful:                  false,
			},
		),
	})
	if err != nil {
		log.Fatal(err)
	}
	config.LoadConfig()
	middleware.Init()
	db.InitWithGormDB(gormDB)

	gin.SetMode(gin.TestMode)
	router = gin.New()
	routes.RegisterRoutes(router)

	// setup
	seedUser("admin", "admin123", models.UserRoleAdmin)
	seedUser("editor", "editor123", models.UserRoleEditor)

	code := m.Run()
	os.Exit(code)
}

// --- Helper functions ---
// doRequest is a generalized helper to make HTTP requests in tests.
// Supports:
// - body as url.Values -> form-urlencoded
// - body as any other struct/map -> JSON
// - nil body -> GET/DELETE with query parameters included in path
func doRequest(t *testing.T, method, path string, token string, body interface{}, expectStatus int) *httptest.ResponseRecorder {
	var req *http.Request

	switch v := body.(type) {
	case url.Values:
		req = httptest.NewRequest(method, path, strings.NewReader(v.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	case nil:
		req = httptest.NewRequest(method, path, nil)
	default:
		reqBody, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(reqBody))
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if expectStatus != 0 {
		require.Equal(t, expectStatus, w.Code,
			fmt.Sprintf("expected %d, got %d, body=%s", expectStatus, w.Code, w.Body.String()))
	}

	return w
}

func seedUser(username, password string, role models.UserRole) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	user := models.User{
		Username: username,
		Password: string(hashed),
		Role:     string(role),
		Active:   true,
	}
	if err := db.DB.Where("username = ?", username).FirstOrCreate(&user).Error; err != nil {
		log.Fatal(err)
	}
}

func loginAs(t *testing.T, username, password string) string {
	w := doRequest(t, http.MethodPost, "/login", "",
		map[string]string{"username": username, "password": password}, http.StatusOK)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
