package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_ValidKey(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := AuthMiddleware("secret-key", nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/missions?user_id=u1", nil)
	req.Header.Set(HeaderAPIKey, "secret-key")
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_RejectsBadKey(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := AuthMiddleware("secret-key", nil, detector)(okHandler())

	tests := []struct {
		name string
		key  string
	}{
		{"wrong key", "not-the-key"},
		{"empty key", ""},
		{"key with suffix", "secret-key-extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/missions", nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthMiddleware_PublicPathsBypass(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := AuthMiddleware("secret-key", nil, detector)(okHandler())

	for _, path := range PublicPaths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			rec := httptest.NewRecorder()
			mw.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestSecurityLoggingMiddleware_RateLimit(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := SecurityLoggingMiddleware(nil, detector)(okHandler())

	var lastCode int
	for i := 0; i < rateLimitPerWindow+1; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestSecurityLoggingMiddleware_RateLimitIsPerIP(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	mw := SecurityLoggingMiddleware(nil, detector)(okHandler())

	for i := 0; i < rateLimitPerWindow+1; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
		req.RemoteAddr = "10.0.0.9:1234"
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
	}

	// A different IP is unaffected
	req := httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil)
	req.RemoteAddr = "10.0.0.10:1234"
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeadersMiddleware(t *testing.T) {
	mw := SecurityHeadersMiddleware()(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestExtractIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		want           string
	}{
		{
			name:       "direct connection",
			remoteAddr: "203.0.113.5:443",
			want:       "203.0.113.5",
		},
		{
			name:         "forwarded header ignored from untrusted source",
			remoteAddr:   "203.0.113.5:443",
			forwardedFor: "198.51.100.1",
			want:         "203.0.113.5",
		},
		{
			name:           "forwarded header honored from trusted proxy",
			remoteAddr:     "10.0.0.1:443",
			forwardedFor:   "198.51.100.1",
			trustedProxies: []string{"10.0.0.1"},
			want:           "198.51.100.1",
		},
		{
			name:           "rightmost hop wins behind trusted proxy",
			remoteAddr:     "10.0.0.1:443",
			forwardedFor:   "198.51.100.1, 198.51.100.2",
			trustedProxies: []string{"10.0.0.1"},
			want:           "198.51.100.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.want, extractIP(req, tt.trustedProxies))
		})
	}
}

func TestSuspiciousActivityDetector_ResetsAfterWindow(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for i := 0; i < rateLimitPerWindow+10; i++ {
		detector.RecordRequest("10.0.0.9")
	}
	require.False(t, detector.RecordRequest("10.0.0.9"))

	// Force the window to lapse
	detector.mu.Lock()
	detector.lastResetTime = detector.lastResetTime.Add(-(rateLimitWindow + 1) * time.Minute)
	detector.mu.Unlock()

	assert.True(t, detector.RecordRequest("10.0.0.9"))
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	read := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := io.ReadAll(r.Body); err != nil {
			w.WriteHeader(http.StatusRequestEntityTooLarge)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	mw := RequestSizeLimitMiddleware(8)(read)

	small := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("tiny"))
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, small)
	assert.Equal(t, http.StatusOK, rec.Code)

	big := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(strings.Repeat("x", 64)))
	recBig := httptest.NewRecorder()
	mw.ServeHTTP(recBig, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, recBig.Code)
}
