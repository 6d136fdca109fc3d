// Package oracle implements the suggestion oracle: given a set of inbox items
// it proposes candidate chunks. Output is advisory and never mutates state.
package oracle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/heartmarshall/outcomes-backend/internal/config"
	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

const maxTokens = 4096

// Anthropic asks Claude to group inbox items.
type Anthropic struct {
	client  anthropic.Client
	model   anthropic.Model
	timeout time.Duration
	log     *slog.Logger
}

// NewAnthropic creates an Anthropic-backed oracle. Extra request options are
// appended after the API key (tests use them to point at a fake server).
func NewAnthropic(logger *slog.Logger, cfg config.OracleConfig, opts ...option.RequestOption) *Anthropic {
	all := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	return &Anthropic{
		client:  anthropic.NewClient(all...),
		model:   anthropic.Model(cfg.Model),
		timeout: cfg.Timeout,
		log:     logger.With("adapter", "oracle"),
	}
}

// SuggestChunks sends items to the model and parses its grouping.
// Any failure is reported as domain.ErrOracleUnavailable.
func (a *Anthropic) SuggestChunks(ctx context.Context, items []domain.InboxItem) (*domain.SuggestionResult, error) {
	if len(items) == 0 {
		return &domain.SuggestionResult{}, nil
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	prompt, err := buildPrompt(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}

	start := time.Now()
	msg, err := a.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     a.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		a.log.WarnContext(ctx, "oracle request failed",
			slog.Int("items", len(items)),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: messages api: %w", domain.ErrOracleUnavailable, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return nil, fmt.Errorf("%w: empty response", domain.ErrOracleUnavailable)
	}

	result, err := parseResult(text.String())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrOracleUnavailable, err)
	}

	a.log.DebugContext(ctx, "oracle answered",
		slog.Int("items", len(items)),
		slog.Int("chunks", len(result.SuggestedChunks)),
		slog.Duration("took", time.Since(start)))

	return result, nil
}

const systemPrompt = `You help a person organise captured notes into chunks. A chunk is a small group of related notes that could become one outcome (a goal-level result with concrete actions).
You only suggest. The person reviews every suggestion before anything changes.`

type promptItem struct {
	Index   int    `json:"index"`
	Type    string `json:"type"`
	Content string `json:"content"`
}

func buildPrompt(items []domain.InboxItem) (string, error) {
	list := make([]promptItem, len(items))
	for i, it := range items {
		list[i] = promptItem{Index: i, Type: it.ItemType.String(), Content: it.Content}
	}

	itemsJSON, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal items: %w", err)
	}

	return fmt.Sprintf(`Group these inbox items into chunks.

Items:
%s

Output ONLY a valid JSON object matching this exact schema:
{
  "suggestedChunks": [
    {
      "name": "<short chunk name>",
      "description": "<one sentence>",
      "itemIndices": [<index>, ...],
      "shouldConvert": <true if the group is ready to become an outcome>,
      "reasoning": "<why these belong together>",
      "suggestedOutcomeTitle": "<optional outcome title>"
    }
  ],
  "ungroupedItemIndices": [<index>, ...],
  "advice": "<one or two sentences for the person>"
}

Rules:
- Use each index at most once
- Every index appears either in a chunk or in ungroupedItemIndices
- Do not create a chunk with a single item
- Output ONLY the JSON, no markdown, no explanations`, itemsJSON), nil
}

func parseResult(s string) (*domain.SuggestionResult, error) {
	jsonStr, err := extractJSON(s)
	if err != nil {
		return nil, err
	}

	var result domain.SuggestionResult
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		return nil, fmt.Errorf("decode suggestion: %w", err)
	}
	return &result, nil
}

// extractJSON finds the outermost JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
