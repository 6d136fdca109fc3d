package oracle

import (
	"context"
	"strings"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// Stub is an offline oracle for local development. It groups items that
// share a type and leaves singletons ungrouped.
type Stub struct{}

// NewStub creates a new offline oracle.
func NewStub() *Stub { return &Stub{} }

// SuggestChunks groups items by ItemType in first-seen order.
func (s *Stub) SuggestChunks(ctx context.Context, items []domain.InboxItem) (*domain.SuggestionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var order []domain.ItemType
	byType := make(map[domain.ItemType][]int)
	for i, it := range items {
		if _, ok := byType[it.ItemType]; !ok {
			order = append(order, it.ItemType)
		}
		byType[it.ItemType] = append(byType[it.ItemType], i)
	}

	result := &domain.SuggestionResult{
		SuggestedChunks:      []domain.SuggestedChunk{},
		UngroupedItemIndices: []int{},
		Advice:               "Suggestions are grouped by item type.",
	}
	for _, t := range order {
		idx := byType[t]
		if len(idx) < 2 {
			result.UngroupedItemIndices = append(result.UngroupedItemIndices, idx...)
			continue
		}
		name := strings.ReplaceAll(strings.ToLower(t.String()), "_", " ") + " items"
		result.SuggestedChunks = append(result.SuggestedChunks, domain.SuggestedChunk{
			Name:        strings.ToUpper(name[:1]) + name[1:],
			ItemIndices: idx,
			Reasoning:   "same item type",
		})
	}

	return result, nil
}
