package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/justinas/alice"
	"github.com/stretchr/testify/assert"

	"github.com/nuellacreatives/ledger-api/pkg/log"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRateLimiter_Middleware(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)
	handler := limiter.Limit(okHandler)

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/v1/sales", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code, "outro cliente tem seu próprio limite")
}

func TestClientIP(t *testing.T) {
	limiter := NewRateLimiter(1, 1, "127.0.0.1", "10.0.0.0/8", "não-é-ip")

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		expected   string
	}{
		{name: "Endereço remoto", remoteAddr: "192.168.0.1:1234", expected: "192.168.0.1"},
		{name: "Endereço sem porta", remoteAddr: "192.168.0.1", expected: "192.168.0.1"},
		{name: "Cabeçalho ignorado sem proxy confiável", remoteAddr: "192.168.0.1:1234", forwarded: "203.0.113.9", expected: "192.168.0.1"},
		{name: "Cabeçalho de proxy confiável", remoteAddr: "127.0.0.1:1", forwarded: "203.0.113.9", expected: "203.0.113.9"},
		{name: "Pula proxies confiáveis da cadeia", remoteAddr: "127.0.0.1:1", forwarded: "203.0.113.9, 10.1.2.3", expected: "203.0.113.9"},
		{name: "Entrada forjada à esquerda é ignorada", remoteAddr: "127.0.0.1:1", forwarded: "1.2.3.4, 198.51.100.7", expected: "198.51.100.7"},
		{name: "Entrada inválida usa o proxy", remoteAddr: "127.0.0.1:1", forwarded: "lixo", expected: "127.0.0.1"},
		{name: "Cadeia só de proxies usa a conexão", remoteAddr: "10.0.0.5:1", forwarded: "10.0.0.6", expected: "10.0.0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.expected, limiter.clientIP(req))
		})
	}
}

func TestRateLimiter_CabecalhoRotativoNaoBurlaLimite(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	handler := limiter.Limit(okHandler)

	codes := make([]int, 0, 3)
	for _, forwarded := range []string{"203.0.113.1", "203.0.113.2", "203.0.113.3"} {
		req := httptest.NewRequest(http.MethodGet, "/v1/reports/monthly/export", nil)
		req.RemoteAddr = "192.168.0.9:4000"
		req.Header.Set("X-Forwarded-For", forwarded)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusTooManyRequests, http.StatusTooManyRequests}, codes)
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:3000"})(okHandler)

	tests := []struct {
		name          string
		method        string
		origin        string
		expectedAllow string
	}{
		{name: "Origem permitida", method: http.MethodGet, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000"},
		{name: "Origem desconhecida", method: http.MethodGet, origin: "http://evil.example", expectedAllow: ""},
		{name: "Preflight", method: http.MethodOptions, origin: "http://localhost:3000", expectedAllow: "http://localhost:3000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/sales", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expectedAllow, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestLoggingMiddleware_DefineCorrelationID(t *testing.T) {
	var seen string
	handler := alice.New(LoggingMiddleware()).ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = log.GetCorrelationID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(CorrelationIDHeader))
}

func TestLogPanicMiddleware(t *testing.T) {
	handler := alice.New(LogPanicMiddleware()).ThenFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
