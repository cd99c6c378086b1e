package inventory_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"gestao-ativos-backend/internal/config"
	"gestao-ativos-backend/internal/database"
	"gestao-ativos-backend/internal/models"
	"gestao-ativos-backend/internal/server"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	t   *testing.T
	app *fiber.App
}

// Sobe a aplicação sobre um SQLite em memória, isolado por teste.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	db, err := database.Open(sqlite.Open(":memory:"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Uma única conexão, senão cada conexão do pool enxerga um ":memory:" próprio
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	database.DB = db

	return &testApp{
		t:   t,
		app: server.New(&config.Config{CORSOrigins: "*"}),
	}
}

func (ta *testApp) request(method, target string, body any) *http.Response {
	ta.t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(ta.t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(ta.t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func createAssetFixture(t *testing.T, asset models.Asset) models.Asset {
	t.Helper()
	require.NoError(t, database.DB.Create(&asset).Error)
	return asset
}

func mouseAssetBody() map[string]any {
	return map[string]any{
		"nome":            "Mouse",
		"tag_patrimonio":  "MOU-01",
		"tipo":            "Periférico",
		"status":          "Disponível",
		"valor_aquisicao": 50.0,
	}
}
