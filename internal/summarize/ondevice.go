package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const summaryPrompt = "Summarize the following text in at most three sentences. Reply with the summary only.\n\n"

// LLMCapability is a Capability backed by a locally hosted language model.
type LLMCapability struct {
	model llms.Model
}

// NewLLMCapability wraps an llms.Model.
func NewLLMCapability(model llms.Model) *LLMCapability {
	return &LLMCapability{model: model}
}

// NewOllamaCapability connects to an Ollama server running modelName.
func NewOllamaCapability(serverURL, modelName string) (*LLMCapability, error) {
	opts := []ollama.Option{ollama.WithModel(modelName)}
	if serverURL != "" {
		opts = append(opts, ollama.WithServerURL(serverURL))
	}
	llm, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}
	return NewLLMCapability(llm), nil
}

// Summarize asks the model for a short summary of text.
func (c *LLMCapability) Summarize(ctx context.Context, text string) (Result, error) {
	completion, err := llms.GenerateFromSinglePrompt(ctx, c.model, summaryPrompt+text, llms.WithTemperature(0))
	if err != nil {
		return Result{}, fmt.Errorf("generate summary: %w", err)
	}
	return Result{Summary: strings.TrimSpace(completion)}, nil
}
