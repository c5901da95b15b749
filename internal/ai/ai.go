package ai

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/forgezone/internal/config"
	"github.com/2beens/forgezone/internal/telemetry/tracing"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var (
	// ErrUpstreamUnavailable covers every provider failure: transport errors,
	// timeouts, non-2xx statuses and empty responses.
	ErrUpstreamUnavailable = errors.New("ai upstream unavailable")
	ErrDisabled            = errors.New("ai provider disabled")
)

// Provider generates free-form text for a prompt. A single attempt is made.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

func upstreamErr(provider string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrUpstreamUnavailable, provider, err)
}

// NewTracedHTTPClient returns an http client instrumented with otelhttp.
func NewTracedHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// NewFromConfig builds the provider selected in config. Without an API key
// the provider is disabled and every suggestion uses the catalog.
func NewFromConfig(ctx context.Context, cfg *config.Config, apiKey string) (Provider, error) {
	if cfg.AIProvider == config.AIProviderNone || apiKey == "" {
		return Disabled{}, nil
	}

	httpClient := NewTracedHTTPClient(cfg.AITimeout.Duration)
	switch cfg.AIProvider {
	case config.AIProviderGemini:
		return NewGemini(GeminiParams{
			APIKey:     apiKey,
			Model:      cfg.AIModel,
			BaseURL:    cfg.AIBaseURL,
			HTTPClient: httpClient,
		}), nil
	case config.AIProviderOpenAI:
		return NewOpenAI(OpenAIParams{
			APIKey:     apiKey,
			Model:      cfg.AIModel,
			BaseURL:    cfg.AIBaseURL,
			HTTPClient: httpClient,
		}), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AIProvider)
	}
}

// Disabled never calls out and always fails, which sends callers to the fallback.
type Disabled struct{}

func (Disabled) Name() string {
	return config.AIProviderNone
}

func (Disabled) Generate(context.Context, string) (string, error) {
	return "", fmt.Errorf("%w: %w", ErrUpstreamUnavailable, ErrDisabled)
}

// Instrumented wraps a provider with a span and a duration histogram.
type Instrumented struct {
	provider Provider
	duration *prometheus.HistogramVec
}

func NewInstrumented(provider Provider, duration *prometheus.HistogramVec) *Instrumented {
	return &Instrumented{
		provider: provider,
		duration: duration,
	}
}

func (i *Instrumented) Name() string {
	return i.provider.Name()
}

func (i *Instrumented) Generate(ctx context.Context, prompt string) (_ string, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "ai."+i.provider.Name()+".generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := time.Now()
	text, err := i.provider.Generate(ctx, prompt)
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if i.duration != nil {
		i.duration.WithLabelValues(i.provider.Name(), outcome).Observe(time.Since(start).Seconds())
	}

	return text, err
}
