package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/osse101/unlimited-inventories/internal/logger"
)

// AuthMiddleware rejects requests whose X-API-Key does not match apiKey.
// It is mounted on the /api/v1 group only; probes and metrics stay public.
func AuthMiddleware(apiKey string, trustedProxies []string, tracker *FailedAuthTracker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get(HeaderAPIKey)

			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				tracker.Record(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware limits request body size
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// FailedAuthTracker counts failed authentications per client IP inside a
// rolling window and raises an alert once a client crosses the threshold.
type FailedAuthTracker struct {
	mu          sync.Mutex
	byIP        map[string]int
	windowStart time.Time
	window      time.Duration
	threshold   int
	now         func() time.Time
}

// NewFailedAuthTracker creates a tracker with the default window and threshold
func NewFailedAuthTracker() *FailedAuthTracker {
	return &FailedAuthTracker{
		byIP:        make(map[string]int),
		windowStart: time.Now(),
		window:      FailedAuthWindow,
		threshold:   FailedAuthAlertAfter,
		now:         time.Now,
	}
}

// Record counts one failure for ip and returns the count in the current window
func (f *FailedAuthTracker) Record(ip string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	if now := f.now(); now.Sub(f.windowStart) > f.window {
		clear(f.byIP)
		f.windowStart = now
	}

	f.byIP[ip]++
	count := f.byIP[ip]
	if count >= f.threshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
	return count
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only honoured when the direct peer is a trusted proxy,
// and then only its rightmost entry.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}

	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set(HeaderContentType, HeaderValueNoSniff)
		h.Set(HeaderFrameOptions, HeaderValueDeny)
		h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
		next.ServeHTTP(w, r)
	})
}
