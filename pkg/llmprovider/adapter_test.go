package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"rental-ops/pkg/gemini"
	"rental-ops/pkg/openai"
)

type mockGemini struct {
	err error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.Response{Text: "ok"}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

type mockOpenAI struct {
	err error
}

func (m *mockOpenAI) GenerateContent(ctx context.Context, req *openai.Request) (*openai.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &openai.Response{Text: "ok"}, nil
}

func (m *mockOpenAI) Model() string { return "qwen-test" }

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestAdapters_ClassifyErrors(t *testing.T) {
	tests := []struct {
		name      string
		clientErr error
		wantKind  error
	}{
		{
			name:      "openai 429",
			clientErr: fmt.Errorf("%w: API error 429: slow down", openai.ErrRateLimited),
			wantKind:  ErrProviderRateLimited,
		},
		{
			name:      "gemini 429",
			clientErr: fmt.Errorf("%w: API error 429: quota", gemini.ErrRateLimited),
			wantKind:  ErrProviderRateLimited,
		},
		{
			name:      "deadline",
			clientErr: fmt.Errorf("openai: failed to send request: %w", context.DeadlineExceeded),
			wantKind:  ErrProviderTimeout,
		},
		{
			name:      "network timeout",
			clientErr: fmt.Errorf("gemini: failed to call API: %w", timeoutErr{}),
			wantKind:  ErrProviderTimeout,
		},
		{
			name:      "server error",
			clientErr: errors.New("openai: API error 500: boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := []Provider{
				NewGeminiAdapter("gemini", &mockGemini{err: tt.clientErr}),
				NewOpenAIAdapter("qwen", &mockOpenAI{err: tt.clientErr}),
			}
			for _, p := range providers {
				_, err := p.GenerateContent(context.Background(), &Request{Prompt: "when?"})

				var pe *ProviderError
				if !errors.As(err, &pe) || pe.Provider != p.Name() {
					t.Fatalf("%s: expected ProviderError, got %v", p.Name(), err)
				}
				if !errors.Is(err, tt.clientErr) {
					t.Errorf("%s: client error lost: %v", p.Name(), err)
				}
				if pe.Kind != tt.wantKind {
					t.Errorf("%s: Kind = %v, want %v", p.Name(), pe.Kind, tt.wantKind)
				}
				if tt.wantKind != nil && !errors.Is(err, tt.wantKind) {
					t.Errorf("%s: errors.Is(%v) = false", p.Name(), tt.wantKind)
				}
			}
		})
	}
}

func TestGenerateContent_RateLimitedSkipsRetries(t *testing.T) {
	limited := &mockProvider{name: "primary", err: newProviderError("primary", fmt.Errorf("%w: 429", openai.ErrRateLimited))}
	secondary := &mockProvider{name: "secondary", response: okResponse("secondary")}
	manager := NewManager([]Provider{limited, secondary}, &Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond}, &mockLogger{})

	resp, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if resp.ProviderName != "secondary" {
		t.Errorf("Expected provider name 'secondary', got: %s", resp.ProviderName)
	}
	if limited.callCount != 1 {
		t.Errorf("Expected rate-limited provider to be called once, got: %d", limited.callCount)
	}
}

func TestGenerateContent_AllFailedKeepsKind(t *testing.T) {
	slow := &mockProvider{name: "primary", err: newProviderError("primary", context.DeadlineExceeded)}
	manager := NewManager([]Provider{slow}, &Config{RetryAttempts: 2, RetryDelay: time.Millisecond}, &mockLogger{})

	_, err := manager.GenerateContent(context.Background(), &Request{Prompt: "Hello"})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Fatalf("Expected ErrAllProvidersFailed, got: %v", err)
	}
	if !errors.Is(err, ErrProviderTimeout) {
		t.Errorf("Expected ErrProviderTimeout to survive, got: %v", err)
	}
	if slow.callCount != 1 {
		t.Errorf("Expected timed-out provider to be called once, got: %d", slow.callCount)
	}
}
