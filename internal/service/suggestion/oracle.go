package suggestion

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// suggest returns the oracle's sanitized answer for items. Identical
// in-flight requests share one oracle call, which is detached from any
// single job so that cancelling one job does not fail the others.
func (s *Service) suggest(ctx context.Context, items []domain.InboxItem) (*domain.SuggestionResult, error) {
	key := cacheKey(items)

	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "suggestion cache get failed", slog.String("error", err.Error()))
	}
	if cached != nil {
		return sanitize(cached, len(items)), nil
	}

	ch := s.group.DoChan(key, func() (any, error) {
		callCtx := s.baseCtx
		if s.cfg.Timeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(callCtx, s.cfg.Timeout)
			defer cancel()
		}

		res, err := s.oracle.SuggestChunks(callCtx, items)
		if err != nil {
			return nil, err
		}
		res = sanitize(res, len(items))

		if err := s.cache.Set(callCtx, key, res); err != nil {
			s.log.WarnContext(callCtx, "suggestion cache set failed", slog.String("error", err.Error()))
		}
		return res, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*domain.SuggestionResult), nil
	}
}

// cacheKey identifies an ordered item set by id, type and content.
func cacheKey(items []domain.InboxItem) string {
	h := sha256.New()
	for _, it := range items {
		fmt.Fprintf(h, "%s\x00%s\x00%s\x00", it.ID, it.ItemType, it.Content)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// sanitize drops out-of-range and repeated indices, removes chunks left
// empty, and lists every index not placed in a chunk as ungrouped.
func sanitize(res *domain.SuggestionResult, n int) *domain.SuggestionResult {
	out := &domain.SuggestionResult{
		SuggestedChunks:      []domain.SuggestedChunk{},
		UngroupedItemIndices: []int{},
		Advice:               strings.TrimSpace(res.Advice),
	}

	placed := make([]bool, n)
	for _, sc := range res.SuggestedChunks {
		var idx []int
		for _, i := range sc.ItemIndices {
			if i < 0 || i >= n || placed[i] {
				continue
			}
			placed[i] = true
			idx = append(idx, i)
		}
		if len(idx) == 0 {
			continue
		}

		sc.ItemIndices = idx
		sc.Name = strings.TrimSpace(sc.Name)
		if sc.Name == "" {
			sc.Name = fmt.Sprintf("Suggested chunk %d", len(out.SuggestedChunks)+1)
		}
		if r := []rune(sc.Name); len(r) > 120 {
			sc.Name = string(r[:120])
		}
		out.SuggestedChunks = append(out.SuggestedChunks, sc)
	}

	for i := range n {
		if !placed[i] {
			out.UngroupedItemIndices = append(out.UngroupedItemIndices, i)
		}
	}
	return out
}

// fallback is the result used when the oracle is unavailable: nothing is
// grouped and the user is told to categorize manually.
func fallback(n int) *domain.SuggestionResult {
	res := &domain.SuggestionResult{
		SuggestedChunks:      []domain.SuggestedChunk{},
		UngroupedItemIndices: make([]int, n),
		Advice:               FallbackAdvice,
	}
	for i := range n {
		res.UngroupedItemIndices[i] = i
	}
	return res
}
