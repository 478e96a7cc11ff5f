package suggest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qalamlabs/arlatin"
	"github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements Provider using OpenAI's API.
type OpenAIProvider struct {
	client      *openai.Client
	model       string
	temperature float32
}

// OpenAIConfig holds configuration for the OpenAI provider.
type OpenAIConfig struct {
	APIKey      string  // OpenAI API key (uses OPENAI_API_KEY env var if empty)
	Model       string  // Model to use (default: "gpt-4o-mini")
	Temperature float32 // Temperature for generation (default: 0.2)
	BaseURL     string  // Custom base URL (optional)
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(cfg OpenAIConfig) *OpenAIProvider {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.2
	}

	return &OpenAIProvider{
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// Suggest proposes Latin spellings for a batch of Arabic names.
func (p *OpenAIProvider) Suggest(ctx context.Context, req Request) ([]string, error) {
	if len(req.Names) == 0 {
		return []string{}, nil
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: buildSystemPrompt(req)},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(req)},
		},
		Temperature: p.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &arlatin.ProviderError{
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &arlatin.ProviderError{
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return parseResponse(resp.Choices[0].Message.Content, len(req.Names))
}

// endingDescriptions phrases each tāʼ marbūṭa style for the prompt.
var endingDescriptions = map[arlatin.TaMarbutaStyle]string{
	arlatin.StyleAH: `Render a final tāʼ marbūṭa as "-ah" (e.g. Fatimah).`,
	arlatin.StyleA:  `Render a final tāʼ marbūṭa as "-a" (e.g. Fatima).`,
	arlatin.StyleAT: `Render a final tāʼ marbūṭa as "-at" (e.g. Fatimat).`,
}

func buildSystemPrompt(req Request) string {
	variant := req.MappingName
	if variant == "" {
		variant = "default"
	}

	prompt := fmt.Sprintf(`# Role
You are an expert in Arabic onomastics and romanization for identity documents.

# Task
For each Arabic personal name provided, give the single most conventional Latin-script spelling as it would appear on a passport, following the %q regional convention.

# Rules
- One spelling per name, no alternatives and no commentary.
- Capitalize each name segment (e.g. "Abd Al-Rahman").
- Do not insert diacritical marks or non-ASCII characters.
- Preserve hyphens for the definite article in divine-name compounds.`, variant)

	if desc, ok := endingDescriptions[req.Style]; ok {
		prompt += "\n- " + desc
	}

	if req.Context != "" {
		prompt += fmt.Sprintf("\n\n# Context\nThe names belong to: %s. Prefer spellings conventional for that population.", req.Context)
	}

	prompt += `

# Format
Return a valid JSON object with a single key "suggestions" containing an array of strings in the exact same order as the input.
Example: { "suggestions": ["Sorour", "Tayseer"] }
- Do NOT wrap in Markdown code blocks.`

	return prompt
}

func buildUserMessage(req Request) string {
	data, _ := json.Marshal(req.Names)
	return string(data)
}

func parseResponse(content string, expectedCount int) ([]string, error) {
	// Try parsing as object first
	var objResult map[string]interface{}
	if err := json.Unmarshal([]byte(content), &objResult); err == nil {
		if suggestions, ok := objResult["suggestions"]; ok {
			if arr, ok := suggestions.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}

		// Fallback: find first array value
		for _, v := range objResult {
			if arr, ok := v.([]interface{}); ok {
				return toStringSlice(arr, expectedCount)
			}
		}
	}

	// Try parsing as direct array
	var arrResult []interface{}
	if err := json.Unmarshal([]byte(content), &arrResult); err == nil {
		return toStringSlice(arrResult, expectedCount)
	}

	return nil, &arlatin.ProviderError{
		Message:   "invalid response format from OpenAI",
		Retryable: false,
	}
}

func toStringSlice(arr []interface{}, expectedCount int) ([]string, error) {
	result := make([]string, len(arr))
	for i, v := range arr {
		if s, ok := v.(string); ok {
			result[i] = s
		} else {
			result[i] = fmt.Sprintf("%v", v)
		}
	}

	if len(result) != expectedCount {
		return nil, &arlatin.CountMismatchError{
			Expected: expectedCount,
			Got:      len(result),
		}
	}

	return result, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporarily unavailable",
		"429",
		"500",
		"502",
		"503",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify OpenAIProvider implements Provider
var _ Provider = (*OpenAIProvider)(nil)
