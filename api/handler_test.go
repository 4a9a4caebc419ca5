package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roofquote/core/catalog"
	"roofquote/core/quote"
	"roofquote/internal/config"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := catalog.NewStaticStore(catalog.Defaults())
	engine := quote.NewEngine(store, nil)
	h := NewHandler(engine, store, "test", nil)
	srv := httptest.NewServer(NewRouter(h, config.ServerConfig{AllowedOrigins: []string{"*"}}, nil))
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, srv *httptest.Server, path, body string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Post(srv.URL+path, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func getJSON(t *testing.T, srv *httptest.Server, path string) (int, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestCalculateChaseCover(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{
		"product": "chase_cover",
		"metal":   "stainless",
		"tier":    "elite",
		"length":  40,
		"width":   24
	}`)

	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 259.0, body["finalPrice"])
	assert.Equal(t, body["finalPrice"], body["price"], "price must mirror finalPrice")
	assert.Equal(t, "small", body["sizeCategory"])
}

// Numbers sent as strings price identically to numbers sent as numbers.
func TestCalculateStringNumbers(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{
		"product": "chase_cover",
		"metal":   "stainless",
		"L":       "40",
		"W":       "24",
		"holes":   "3"
	}`)

	require.Equal(t, http.StatusOK, status)
	// 259 base + 2 extra holes x 45
	assert.Equal(t, 349.0, body["finalPrice"])
}

// An unparseable dimension string is a bad dimension, not a missing one.
func TestCalculateGarbageDimension(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{
		"product": "chase_cover",
		"metal":   "stainless",
		"length":  "forty",
		"width":   24
	}`)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_DIMENSIONS", body["error"])
}

func TestCalculateMultiFlue(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{
		"product": "flat_top",
		"metal":   "stainless",
		"tier":    "gold"
	}`)

	require.Equal(t, http.StatusOK, status)
	// (585 - 12.5) * 0.95
	assert.Equal(t, 543.88, body["finalPrice"])
}

func TestCalculateNoFactorFound(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{
		"product": "flat_top",
		"metal":   "aluminum"
	}`)

	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "NO_FACTOR_FOUND", body["error"])
	_, hasPrice := body["finalPrice"]
	assert.False(t, hasPrice, "error responses must not carry a price")
}

func TestCalculateUnknownProduct(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{"product": "gazebo"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "UNKNOWN_PRODUCT", body["error"])

	details, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gazebo", details["product"])
}

func TestCalculateMissingProduct(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "MISSING_PRODUCT", body["error"])
}

func TestCalculateInvalidJSON(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calculate", `{not json`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_JSON", body["error"])
}

func TestCalcAliasRoutes(t *testing.T) {
	srv := newTestServer(t)

	status, body := postJSON(t, srv, "/api/calc", `{
		"product": "dynasty",
		"metal":   "stainless"
	}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 1195.0, body["finalPrice"])

	status, body = getJSON(t, srv, "/api/calc")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
}

func TestFactorsShape(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/api/multi/factors")
	require.Equal(t, http.StatusOK, status)

	stainless, ok := body["stainless"].(map[string]interface{})
	require.True(t, ok)
	flatTop, ok := stainless["flat_top"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 585.0, flatTop["factor"])
	assert.Contains(t, flatTop, "adjustments")
}

func TestShroudConfigShape(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/api/shroud/config")
	require.Equal(t, http.StatusOK, status)

	stainless, ok := body["stainless"].(map[string]interface{})
	require.True(t, ok)
	dynasty, ok := stainless["dynasty"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 1195.0, dynasty["elite"])
}

func TestLegacyCalculateRoutesGone(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/multi/calculate", "/api/shroud/calculate"} {
		status, body := postJSON(t, srv, path, `{}`)
		assert.Equal(t, http.StatusGone, status, path)
		assert.Contains(t, body["error"], "Legacy route removed", path)
	}
}

func TestHealthAndVersion(t *testing.T) {
	srv := newTestServer(t)

	status, body := getJSON(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "test", body["version"])

	status, body = getJSON(t, srv, "/api/version")
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["catalog_hash"])
}

func TestRootAndNotFound(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	assert.Equal(t, "API online", strings.TrimSpace(buf.String()))

	status, body := getJSON(t, srv, "/api/nope")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not found", body["error"])
}
