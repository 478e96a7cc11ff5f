package suggest

import (
	"context"
	"fmt"
)

// MockProvider is a mock suggestion provider for testing.
type MockProvider struct {
	Suggestions map[string]string // Map of Arabic name to suggested spelling
	CallCount   int               // Number of times Suggest was called
	LastRequest *Request          // Last request received
}

// NewMockProvider creates a new mock provider with default suggestions.
func NewMockProvider() *MockProvider {
	return &MockProvider{
		Suggestions: map[string]string{
			"سرور":  "Sorour",
			"تيسير": "Tayseer",
			"شيماء": "Shaimaa",
		},
	}
}

// Suggest returns mock suggestions.
func (m *MockProvider) Suggest(ctx context.Context, req Request) ([]string, error) {
	m.CallCount++
	m.LastRequest = &req

	results := make([]string, len(req.Names))
	for i, name := range req.Names {
		if suggestion, ok := m.Suggestions[name]; ok {
			results[i] = suggestion
		} else {
			// Return bracketed text for unknown names
			results[i] = fmt.Sprintf("[%s]", name)
		}
	}

	return results, nil
}

// Reset resets the call count and last request.
func (m *MockProvider) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockProvider implements Provider
var _ Provider = (*MockProvider)(nil)
