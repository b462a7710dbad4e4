package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/laibaafzal969/Bakery-BE/controllers"
	"github.com/laibaafzal969/Bakery-BE/initializers"
	"github.com/laibaafzal969/Bakery-BE/middlewares"
	"github.com/laibaafzal969/Bakery-BE/routes"
	"github.com/laibaafzal969/Bakery-BE/utils"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One named in-memory database per test so parallel connections in
	// the pool see the same data without tests seeing each other's.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, initializers.SyncDatabase(db))

	return db
}

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	server := gin.New()
	requireAuth := middlewares.RequireAuth(testSecret)

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, controllers.NewAuthController(db, testSecret), requireAuth)
	routes.ProductRoutes(server, controllers.NewProductController(db), requireAuth)
	routes.OrderRoutes(server, controllers.NewOrderController(db), requireAuth)
	routes.ContactRoutes(server, controllers.NewContactController(db), requireAuth)

	return server, db
}

func validToken(t *testing.T) string {
	t.Helper()
	token, err := utils.GenerateToken(1, "tester@bakery.test", testSecret)
	require.NoError(t, err)
	return token
}

func performRequest(t *testing.T, server http.Handler, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), out))
}
