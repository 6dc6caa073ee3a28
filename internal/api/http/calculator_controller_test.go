package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"ozzus/scicalc/internal/calculator"
	"ozzus/scicalc/internal/domain"
	"ozzus/scicalc/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStatus struct {
	err error
}

func (s stubStatus) HealthCheck(context.Context) error { return s.err }

func (s stubStatus) GetStatus() map[string]interface{} {
	return map[string]interface{}{"status": "RUNNING_NO_WORKER"}
}

func setupTestRouter(t *testing.T, status StatusProvider) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.NewCalculationService(calculator.New(nil), nil, nil, log, service.Config{ServiceID: "test"})
	if status == nil {
		status = svc
	}

	return NewRouter(log, NewHealthController(status, "test"), NewCalculatorController(svc))
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCalculateEndpoint(t *testing.T) {
	router := setupTestRouter(t, nil)

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		expectedKind   string
		expectedResult *float64
	}{
		{
			name:           "success",
			body:           `{"calculation_id": "c-1", "operation": "power", "operands": [2, 8]}`,
			expectedStatus: http.StatusOK,
			expectedResult: ptr(256),
		},
		{
			name:           "division by zero",
			body:           `{"operation": "divide", "operands": [5, 0]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   string(calculator.KindDivisionByZero),
		},
		{
			name:           "log of negative",
			body:           `{"operation": "natural_log", "operands": [-5]}`,
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   string(calculator.KindNonPositiveDomain),
		},
		{
			name:           "text operand",
			body:           `{"operation": "add", "operands": ["2", 3]}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(calculator.KindInvalidOperand),
		},
		{
			name:           "null operand",
			body:           `{"operation": "sine", "operands": [null]}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(calculator.KindInvalidOperand),
		},
		{
			name:           "unknown operation",
			body:           `{"operation": "modulo", "operands": [5, 2]}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(calculator.KindUnknownOperation),
		},
		{
			name:           "wrong arity",
			body:           `{"operation": "cosine", "operands": []}`,
			expectedStatus: http.StatusBadRequest,
			expectedKind:   string(calculator.KindArity),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(router, "/api/v1/calculate", tt.body)
			assert.Equal(t, tt.expectedStatus, w.Code)

			var result domain.CalculationResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
			assert.NotEmpty(t, result.CalculationID)
			assert.Equal(t, tt.expectedKind, result.ErrorKind)

			if tt.expectedResult != nil {
				require.NotNil(t, result.Result)
				assert.Equal(t, *tt.expectedResult, *result.Result)
				assert.Equal(t, domain.StatusSuccess, result.Status)
				assert.Equal(t, "c-1", result.CalculationID)
			} else {
				assert.Nil(t, result.Result)
				assert.Equal(t, domain.StatusFailed, result.Status)
			}
		})
	}
}

func TestCalculateMalformedBody(t *testing.T) {
	router := setupTestRouter(t, nil)

	w := postJSON(router, "/api/v1/calculate", `{"operation": `)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid_request", resp.Error)
}

func TestOperationsEndpoint(t *testing.T) {
	router := setupTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/operations", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Operations []domain.OperationInfo `json:"operations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Operations, len(domain.Operations()))
	assert.Equal(t, domain.OperationInfo{Name: domain.OpAdd, Arity: 2}, resp.Operations[0])
	assert.Equal(t, domain.OperationInfo{Name: domain.OpTangent, Arity: 1}, resp.Operations[len(resp.Operations)-1])
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		status         StatusProvider
		expectedStatus int
		expectedBody   string
	}{
		{name: "healthy", path: "/health", expectedStatus: http.StatusOK, expectedBody: `"status":"healthy"`},
		{name: "unhealthy", path: "/health", status: stubStatus{err: errors.New("calculation worker is not running")}, expectedStatus: http.StatusServiceUnavailable, expectedBody: `"status":"unhealthy"`},
		{name: "ready", path: "/ready", expectedStatus: http.StatusOK, expectedBody: `"status":"ready"`},
		{name: "not ready", path: "/ready", status: stubStatus{err: errors.New("down")}, expectedStatus: http.StatusServiceUnavailable, expectedBody: `"status":"not_ready"`},
		{name: "status", path: "/status", status: stubStatus{}, expectedStatus: http.StatusOK, expectedBody: `"status":"RUNNING_NO_WORKER"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupTestRouter(t, tt.status)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func ptr(v float64) *float64 {
	return &v
}
