package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/pageza/geladeira/backend/internal/catalog"
	"github.com/pageza/geladeira/backend/internal/middleware"
	"github.com/pageza/geladeira/backend/internal/service"
)

// testServices holds the real services behind a test router
type testServices struct {
	Recipes   *service.RecipeService
	Inventory *service.InventoryService
}

func setupTestRouter(t *testing.T, limit gin.HandlerFunc) (*gin.Engine, testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := zaptest.NewLogger(t)
	svc := testServices{
		Recipes:   service.NewRecipeService(catalog.Default(), logger),
		Inventory: service.NewInventoryService(logger),
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	SetupAPI(router, Services{
		Recipes:     svc.Recipes,
		Inventory:   svc.Inventory,
		RecipeLimit: limit,
	}, logger)
	return router, svc
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
