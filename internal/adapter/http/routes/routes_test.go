package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"crpms_ledger/internal/adapter/http/middleware"
	"crpms_ledger/internal/adapter/persistence/memory"
	"crpms_ledger/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "route-secret"

type apiClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Count   *int            `json:"count"`
	Data    json.RawMessage `json:"data"`
}

func newAPI(t *testing.T) *apiClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		APIBasePath:    "/api",
		StoreDriver:    config.DriverMemory,
		StoreTimeout:   time.Second,
		JWTSecret:      testSecret,
		ReportLocation: time.UTC,
		Currency:       "RWF",
	}
	deps := newDependencies(memoryStores(memory.NewStore()), cfg)

	token, err := middleware.SignOperatorToken([]byte(testSecret), middleware.OperatorClaims{
		ID:   "u-1",
		Name: "Alice",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	require.NoError(t, err)
	return &apiClient{t: t, router: NewRouter(cfg, deps), token: token}
}

func (a *apiClient) do(method, path string, body any) (int, envelope) {
	a.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(a.t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w.Code, env
}

func (a *apiClient) seed() {
	code, _ := a.do(http.MethodPost, "/api/cars", map[string]any{
		"plate_number": "rad123a", "type": "SUV", "model": "RAV4", "manufacturing_year": 2019,
		"driver_phone": "0788000000", "mechanic_name": "Eric",
	})
	require.Equal(a.t, http.StatusCreated, code)
	code, env := a.do(http.MethodPost, "/api/services", map[string]any{"service_name": "Engine repair", "service_price": 60000})
	require.Equal(a.t, http.StatusCreated, code)
	assert.Contains(a.t, string(env.Data), `"service_code":"SRV001"`)
	code, _ = a.do(http.MethodPost, "/api/service-records", map[string]any{"plate_number": "RAD123A", "service_code": "SRV001"})
	require.Equal(a.t, http.StatusCreated, code)
}

func TestPublicAndProtectedRoutes(t *testing.T) {
	api := newAPI(t)

	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	api.token = ""
	code, env := api.do(http.MethodGet, "/api/cars", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.False(t, env.Success)
	assert.Equal(t, "UNAUTHORIZED", env.Code)
}

func TestLedgerFlow(t *testing.T) {
	api := newAPI(t)
	api.seed()

	code, env := api.do(http.MethodPost, "/api/cars", map[string]any{
		"plate_number": "RAD123A", "type": "SUV", "model": "RAV4", "manufacturing_year": 2019,
		"driver_phone": "0788000000", "mechanic_name": "Eric",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Car with this plate number already exists", env.Message)

	code, env = api.do(http.MethodGet, "/api/service-records/unpaid", nil)
	require.Equal(t, http.StatusOK, code)
	require.NotNil(t, env.Count)
	assert.Equal(t, 1, *env.Count)

	code, env = api.do(http.MethodPost, "/api/payments", map[string]any{"record_number": 1, "amount_paid": 60000})
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(env.Data), `"received_by":"u-1"`)

	code, _ = api.do(http.MethodPost, "/api/payments", map[string]any{"record_number": 1, "amount_paid": 60000})
	assert.Equal(t, http.StatusConflict, code)

	code, _ = api.do(http.MethodPost, "/api/payments", map[string]any{"record_number": 99, "amount_paid": 60000})
	assert.Equal(t, http.StatusNotFound, code)

	code, env = api.do(http.MethodGet, "/api/payments/record/1", nil)
	require.Equal(t, http.StatusOK, code)
	var bill map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &bill))
	assert.Equal(t, "RAD123A", bill["plate_number"])
	assert.Equal(t, "Engine repair", bill["service_name"])
	assert.Equal(t, "Alice", bill["received_by"])

	code, _ = api.do(http.MethodDelete, "/api/service-records/1", nil)
	assert.Equal(t, http.StatusConflict, code)

	code, _ = api.do(http.MethodGet, "/api/reports/daily?date=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, code)

	code, env = api.do(http.MethodGet, "/api/reports/daily?date="+time.Now().UTC().Format(time.DateOnly), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"total_amount_paid":60000`)

	code, env = api.do(http.MethodGet, "/api/reports/dashboard", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(env.Data), `"completed_payments":1`)
}

func TestConcurrentPaymentsOverHTTP(t *testing.T) {
	api := newAPI(t)
	api.seed()

	const k = 16
	statuses := make(chan int, k)
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			raw := fmt.Sprintf(`{"record_number":1,"amount_paid":%d}`, 60000)
			req := httptest.NewRequest(http.MethodPost, "/api/payments", bytes.NewBufferString(raw))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+api.token)
			w := httptest.NewRecorder()
			api.router.ServeHTTP(w, req)
			statuses <- w.Code
		}()
	}
	wg.Wait()
	close(statuses)

	counts := map[int]int{}
	for s := range statuses {
		counts[s]++
	}
	assert.Equal(t, map[int]int{http.StatusCreated: 1, http.StatusConflict: k - 1}, counts)

	code, env := api.do(http.MethodGet, "/api/payments", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, *env.Count)
}

func TestReadEndpointsCarryMessage(t *testing.T) {
	api := newAPI(t)
	api.seed()
	code, _ := api.do(http.MethodPost, "/api/payments", map[string]any{"record_number": 1, "amount_paid": 60000})
	require.Equal(t, http.StatusCreated, code)

	for _, path := range []string{
		"/api/cars",
		"/api/cars/RAD123A",
		"/api/services",
		"/api/services/SRV001",
		"/api/service-records",
		"/api/service-records/unpaid",
		"/api/service-records/1",
		"/api/payments",
		"/api/payments/record/1",
		"/api/reports/daily",
		"/api/reports/dashboard",
	} {
		t.Run(path, func(t *testing.T) {
			code, env := api.do(http.MethodGet, path, nil)
			require.Equal(t, http.StatusOK, code)
			assert.True(t, env.Success)
			assert.NotEmpty(t, env.Message)
		})
	}
}
