// Package advisory produces the short natural-language commentary shown next
// to a simulation. Every failure is converted into one of three fixed
// user-facing strings; RequestInsight never returns an error.
package advisory

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fallback texts shown when no model output is available.
const (
	FallbackNoCredential = "Chave de API não configurada. Não é possível gerar insights de IA."
	FallbackNoAnalysis   = "Não foi possível gerar uma análise no momento."
	FallbackConnection   = "Erro ao conectar com o consultor virtual."
)

// DefaultTimeout bounds a single generation call when none is configured.
const DefaultTimeout = 20 * time.Second

// Generator turns a prompt into text.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Advisor wraps a Generator with the prompt, the timeout and the fallbacks.
type Advisor struct {
	gen     Generator
	timeout time.Duration
	logger  *zap.SugaredLogger
}

// Option configures an Advisor
type Option func(*Advisor)

// WithTimeout sets the per-call deadline
func WithTimeout(d time.Duration) Option {
	return func(a *Advisor) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithLogger sets the logger
func WithLogger(l *zap.SugaredLogger) Option {
	return func(a *Advisor) {
		a.logger = l
	}
}

// NewAdvisor creates an Advisor. A nil gen means no credential is configured.
func NewAdvisor(gen Generator, opts ...Option) *Advisor {
	a := &Advisor{
		gen:     gen,
		timeout: DefaultTimeout,
		logger:  zap.NewNop().Sugar(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Configured reports whether a generator is available.
func (a *Advisor) Configured() bool {
	return a != nil && a.gen != nil
}

// RequestInsight asks the model for a brief analysis of the scenario.
// It always returns a displayable string.
func (a *Advisor) RequestInsight(ctx context.Context, principal, horizonYears, annualRatePercent float64, label string) string {
	if !a.Configured() {
		return FallbackNoCredential
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	text, err := a.gen.GenerateContent(ctx, BuildPrompt(principal, horizonYears, annualRatePercent, label))
	if err != nil {
		a.logger.Warnw("advisory request failed", "error", err)
		return FallbackConnection
	}

	text = strings.TrimSpace(text)
	if text == "" {
		a.logger.Warnw("advisory returned no text")
		return FallbackNoAnalysis
	}
	return text
}
