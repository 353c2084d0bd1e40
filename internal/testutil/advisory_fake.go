package testutil

import (
	"context"
	"sync"
	"time"
)

// FakeGenerator is a scripted advisory text generator.
//
// Example usage:
//
//	gen := &testutil.FakeGenerator{Text: "Cenário prudente."}
//	advisor := advisory.NewAdvisor(gen)
type FakeGenerator struct {
	Text  string
	Err   error
	Delay time.Duration

	// Respond, when set, replaces Text/Err/Delay.
	Respond func(ctx context.Context, prompt string) (string, error)

	mu      sync.Mutex
	prompts []string
}

func (f *FakeGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()

	if f.Respond != nil {
		return f.Respond(ctx, prompt)
	}

	if f.Delay > 0 {
		select {
		case <-time.After(f.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.Text, f.Err
}

// Calls returns how many prompts were received.
func (f *FakeGenerator) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

// LastPrompt returns the most recent prompt, or "".
func (f *FakeGenerator) LastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}
