package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

var (
	ErrSecretNotConfigured = errors.New("webhook secret not configured")
	ErrInvalidSignature    = errors.New("signature verification failed")
	ErrIPNotAllowed        = errors.New("ip not allowed")
	ErrRateLimited         = errors.New("rate limit exceeded")
)

const (
	maxTrackedSources = 1000
	limiterTTL        = 5 * time.Minute
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	allowedNets []*net.IPNet
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	v := &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
	for _, allowed := range config.AllowedIPs {
		if !strings.Contains(allowed, "/") {
			continue
		}
		if _, ipNet, err := net.ParseCIDR(allowed); err == nil {
			v.allowedNets = append(v.allowedNets, ipNet)
		}
	}
	return v
}

// ValidateSignature checks "sha256=<hex>" against the HMAC-SHA256 of payload.
// An unset secret rejects everything.
func (v *SecurityValidator) ValidateSignature(payload []byte, signature string) error {
	if v.config.Secret == "" {
		return ErrSecretNotConfigured
	}

	hexSig, ok := strings.CutPrefix(signature, "sha256=")
	if !ok {
		return fmt.Errorf("%w: invalid signature format", ErrInvalidSignature)
	}
	expectedSig, err := hex.DecodeString(hexSig)
	if err != nil {
		return fmt.Errorf("%w: invalid hex encoding", ErrInvalidSignature)
	}

	mac := hmac.New(sha256.New, []byte(v.config.Secret))
	mac.Write(payload)
	if !hmac.Equal(expectedSig, mac.Sum(nil)) {
		return ErrInvalidSignature
	}
	return nil
}

// ValidateIPAddress checks ip against the allow-list. An empty list allows all.
func (v *SecurityValidator) ValidateIPAddress(ip string) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil
	}

	for _, allowed := range v.config.AllowedIPs {
		if ip == allowed {
			return nil
		}
	}
	if parsed := net.ParseIP(ip); parsed != nil {
		for _, ipNet := range v.allowedNets {
			if ipNet.Contains(parsed) {
				return nil
			}
		}
	}
	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces the per-source budget.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter keeps one token bucket per key; idle keys expire from the LRU.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

// newRateLimiter disables limiting when requestsPerMin <= 0.
func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return &rateLimiter{rate: rate.Inf}
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxTrackedSources, nil, limiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0),
		burst:    max(1, requestsPerMin/10),
	}
}

func (rl *rateLimiter) Allow(key string) error {
	if rl.limiters == nil {
		return nil
	}

	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
