package recommendation

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/yanqian/what-to-wear/pkg/errors"
	"github.com/yanqian/what-to-wear/pkg/metrics"
)

// ModelKind identifies which LLM provider format is in use. It is a closed
// enumeration: adding a provider means a new constant plus entries in the
// parsers and modelIDs tables.
type ModelKind string

// ModelMistral is the only registered model kind.
const ModelMistral ModelKind = "mistral"

// Parser extracts the generated text from a provider-specific response body.
// Usage reads the token accounting block when the provider reports one; a
// missing or unreadable block yields the zero value, never an error.
type Parser interface {
	Content(raw []byte) (string, error)
	Usage(raw []byte) metrics.TokenUsage
}

var parsers = map[ModelKind]Parser{
	ModelMistral: mistralParser{},
}

var modelIDs = map[ModelKind]string{
	ModelMistral: "mistralai/mistral-7b-instruct",
}

// ParserFor resolves the parser registered for a model kind.
func ParserFor(kind ModelKind) (Parser, error) {
	parser, ok := parsers[kind]
	if !ok {
		return nil, apperrors.Wrap(apperrors.CodeNoModelSelected,
			fmt.Sprintf("no parser available for model: %s", kind), nil)
	}
	return parser, nil
}

// ModelID returns the wire identifier sent in the completion request body.
func ModelID(kind ModelKind) (string, error) {
	id, ok := modelIDs[kind]
	if !ok {
		return "", apperrors.Wrap(apperrors.CodeNoModelSelected,
			fmt.Sprintf("no model identifier for model: %s", kind), nil)
	}
	return id, nil
}

// ParseModelKind validates a configured model kind string.
func ParseModelKind(raw string) (ModelKind, error) {
	kind := ModelKind(raw)
	if _, ok := parsers[kind]; !ok {
		return "", apperrors.Wrap(apperrors.CodeNoModelSelected,
			fmt.Sprintf("no parser available for model: %s", raw), nil)
	}
	return kind, nil
}

// mistralParser reads the OpenAI-compatible chat completion shape the Mistral
// endpoint returns.
type mistralParser struct{}

func (mistralParser) Content(raw []byte) (string, error) {
	var resp struct {
		Choices []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", apperrors.Wrap(apperrors.CodeMalformedLLM, "decode llm response", err)
	}
	if len(resp.Choices) == 0 {
		return "", apperrors.Wrap(apperrors.CodeMalformedLLM, "llm response contains no choices", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

func (mistralParser) Usage(raw []byte) metrics.TokenUsage {
	var resp struct {
		Usage struct {
			PromptTokens     int `json:"prompt_tokens"`
			CompletionTokens int `json:"completion_tokens"`
			TotalTokens      int `json:"total_tokens"`
		} `json:"usage"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return metrics.TokenUsage{}
	}
	return metrics.TokenUsage{
		PromptTokens:     resp.Usage.PromptTokens,
		CompletionTokens: resp.Usage.CompletionTokens,
		TotalTokens:      resp.Usage.TotalTokens,
	}
}
