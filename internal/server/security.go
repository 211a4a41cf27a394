package server

import (
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

// RequestSizeLimitMiddleware caps request bodies; decoding past the cap fails as a bad request
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

type ipActivity struct {
	requests       int
	rejectedTokens int
}

// SuspiciousActivityDetector counts requests and rejected session tokens per IP over a fixed
// window. An IP is refused for the rest of the window once it exceeds either limit.
type SuspiciousActivityDetector struct {
	mu          sync.Mutex
	byIP        map[string]*ipActivity
	windowStart time.Time
	now         func() time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		byIP:        make(map[string]*ipActivity),
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// activity returns the counters for ip in the current window. Caller must hold the mutex.
func (s *SuspiciousActivityDetector) activity(ip string) *ipActivity {
	if s.now().Sub(s.windowStart) > RateWindow {
		s.byIP = make(map[string]*ipActivity)
		s.windowStart = s.now()
	}
	a, ok := s.byIP[ip]
	if !ok {
		a = &ipActivity{}
		s.byIP[ip] = a
	}
	return a
}

// RecordFailedAuth records a rejected session token
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.rejectedTokens++
	if a.rejectedTokens == FailedAuthAlertAt || a.rejectedTokens == FailedAuthBlockAt {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", a.rejectedTokens)
	}
}

// RecordRequest counts a request and reports whether it may proceed
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.activity(ip)
	a.requests++
	if a.rejectedTokens >= FailedAuthBlockAt {
		return false
	}
	if a.requests > MaxRequestsPerWindow {
		// Log every 100 requests to avoid log spam
		if a.requests%100 == 0 {
			slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", a.requests)
		}
		return false
	}
	return true
}

// retryAfter is the time left in the current window
func (s *SuspiciousActivityDetector) retryAfter() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	left := RateWindow - s.now().Sub(s.windowStart)
	if left < time.Second {
		return time.Second
	}
	return left
}

// SecurityLoggingMiddleware enforces the per-IP limits of the detector
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !detector.RecordRequest(ip) {
				w.Header().Set(HeaderRetryAfter, strconv.Itoa(int(detector.retryAfter().Seconds())))
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP gets the client IP address from request.
// X-Forwarded-For is only honoured when the direct peer is a trusted proxy.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if slices.Contains(trustedProxies, remoteIP) {
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			// Rightmost entry is the hop our proxy saw
			ips := strings.Split(forwarded, ",")
			return strings.TrimSpace(ips[len(ips)-1])
		}
	}

	return remoteIP
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for name, value := range securityHeaders {
				w.Header().Set(name, value)
			}
			next.ServeHTTP(w, r)
		})
	}
}
