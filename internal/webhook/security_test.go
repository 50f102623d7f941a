package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"
)

func sign(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestValidateSignature(t *testing.T) {
	body := []byte(`{"external_id":"1"}`)
	v := NewSecurityValidator(SecurityConfig{Secret: "s3cret"})

	tests := []struct {
		name    string
		sig     string
		wantErr error
	}{
		{name: "valid", sig: sign("s3cret", body)},
		{name: "wrong secret", sig: sign("other", body), wantErr: ErrInvalidSignature},
		{name: "missing prefix", sig: hex.EncodeToString([]byte("abc")), wantErr: ErrInvalidSignature},
		{name: "bad hex", sig: "sha256=zz", wantErr: ErrInvalidSignature},
		{name: "empty", wantErr: ErrInvalidSignature},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateSignature(body, tt.sig)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	unset := NewSecurityValidator(SecurityConfig{})
	if err := unset.ValidateSignature(body, sign("", body)); !errors.Is(err, ErrSecretNotConfigured) {
		t.Errorf("unset secret: err = %v", err)
	}
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{AllowedIPs: []string{"203.0.113.7", "10.0.0.0/8", "not-a-cidr/99"}})

	tests := []struct {
		ip      string
		allowed bool
	}{
		{ip: "203.0.113.7", allowed: true},
		{ip: "10.20.30.40", allowed: true},
		{ip: "192.168.1.1", allowed: false},
		{ip: "garbage", allowed: false},
	}
	for _, tt := range tests {
		err := v.ValidateIPAddress(tt.ip)
		if (err == nil) != tt.allowed {
			t.Errorf("ValidateIPAddress(%s) = %v, allowed=%v", tt.ip, err, tt.allowed)
		}
	}

	open := NewSecurityValidator(SecurityConfig{})
	if err := open.ValidateIPAddress("192.168.1.1"); err != nil {
		t.Errorf("empty allow-list should allow all, got %v", err)
	}
}

func TestCheckRateLimit(t *testing.T) {
	// 60/min gives a burst of 6 and a refill of one token per second.
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 60})

	for i := 0; i < 6; i++ {
		if err := v.CheckRateLimit("guesty"); err != nil {
			t.Fatalf("request %d rejected: %v", i, err)
		}
	}
	if err := v.CheckRateLimit("guesty"); !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected rate limit, got %v", err)
	}
	if err := v.CheckRateLimit("email"); err != nil {
		t.Errorf("sources must have separate budgets, got %v", err)
	}
}

func TestCheckRateLimit_Disabled(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{})
	for i := 0; i < 100; i++ {
		if err := v.CheckRateLimit("guesty"); err != nil {
			t.Fatalf("request %d rejected: %v", i, err)
		}
	}
}

func TestCheckRateLimit_LowBudgetStillAllowsOne(t *testing.T) {
	v := NewSecurityValidator(SecurityConfig{RateLimitPerMin: 5})
	if err := v.CheckRateLimit("guesty"); err != nil {
		t.Errorf("first request rejected: %v", err)
	}
}
