package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

type itemResponse struct {
	ID          string    `json:"id"`
	Content     string    `json:"content"`
	ItemType    string    `json:"itemType"`
	ChunkID     *string   `json:"chunkId,omitempty"`
	Triaged     bool      `json:"triaged"`
	TriagedToID *string   `json:"triagedToId,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type itemListResponse struct {
	Items []itemResponse `json:"items"`
	Total int            `json:"total"`
}

type chunkResponse struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Description     *string            `json:"description,omitempty"`
	Color           *string            `json:"color,omitempty"`
	Status          string             `json:"status"`
	ItemCount       int                `json:"itemCount"`
	ConvertedToType *string            `json:"convertedToType,omitempty"`
	ConvertedToID   *string            `json:"convertedToId,omitempty"`
	ConvertedAt     *time.Time         `json:"convertedAt,omitempty"`
	Converting      bool               `json:"converting"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
	Items           []chunkItemPayload `json:"items,omitempty"`
}

type chunkItemPayload struct {
	ID          string        `json:"id"`
	ChunkID     string        `json:"chunkId"`
	InboxItemID string        `json:"inboxItemId"`
	SortOrder   int           `json:"sortOrder"`
	Item        *itemResponse `json:"item,omitempty"`
}

type conversionResponse struct {
	Status           string   `json:"status"`
	OutcomeID        string   `json:"outcomeId"`
	ChunkID          string   `json:"chunkId"`
	ActionIDs        []string `json:"actionIds"`
	NavigateHint     string   `json:"navigateHint"`
	AlreadyConverted bool     `json:"alreadyConverted"`
}

type conversionStatusResponse struct {
	ChunkID     string     `json:"chunkId"`
	Converted   bool       `json:"converted"`
	InFlight    bool       `json:"inFlight"`
	Step        string     `json:"step,omitempty"`
	Token       *string    `json:"token,omitempty"`
	OutcomeID   *string    `json:"outcomeId,omitempty"`
	ConvertedAt *time.Time `json:"convertedAt,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
}

type preferenceResponse struct {
	AutoCreateActionsFromChunks bool   `json:"autoCreateActionsFromChunks"`
	DefaultPostConversionAction string `json:"defaultPostConversionAction"`
}

type suggestionJobResponse struct {
	ID      string                   `json:"id"`
	State   string                   `json:"state"`
	ItemIDs []string                 `json:"itemIds"`
	Result  *domain.SuggestionResult `json:"result,omitempty"`
	Error   string                   `json:"error,omitempty"`
}

func toItemResponse(it *domain.InboxItem) itemResponse {
	return itemResponse{
		ID:          it.ID.String(),
		Content:     it.Content,
		ItemType:    it.ItemType.String(),
		ChunkID:     uuidPtrString(it.ChunkID),
		Triaged:     it.Triaged,
		TriagedToID: uuidPtrString(it.TriagedToID),
		CreatedAt:   it.CreatedAt,
	}
}

func toChunkResponse(c *domain.Chunk) chunkResponse {
	resp := chunkResponse{
		ID:            c.ID.String(),
		Name:          c.Name,
		Description:   c.Description,
		Color:         c.Color,
		Status:        c.Status.String(),
		ItemCount:     c.ItemCount,
		ConvertedToID: uuidPtrString(c.ConvertedToID),
		ConvertedAt:   c.ConvertedAt,
		Converting:    c.IsConverting(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.ConvertedToType != nil {
		t := string(*c.ConvertedToType)
		resp.ConvertedToType = &t
	}
	return resp
}

func toChunkWithItemsResponse(c *domain.ChunkWithItems) chunkResponse {
	resp := toChunkResponse(&c.Chunk)
	resp.Items = toChunkItemPayloads(c.Items)
	resp.ItemCount = len(c.Items)
	return resp
}

func toChunkItemPayload(ci *domain.ChunkItem) chunkItemPayload {
	p := chunkItemPayload{
		ID:          ci.ID.String(),
		ChunkID:     ci.ChunkID.String(),
		InboxItemID: ci.InboxItemID.String(),
		SortOrder:   ci.SortOrder,
	}
	if ci.Item != nil {
		item := toItemResponse(ci.Item)
		p.Item = &item
	}
	return p
}

func toChunkItemPayloads(items []domain.ChunkItem) []chunkItemPayload {
	out := make([]chunkItemPayload, len(items))
	for i := range items {
		out[i] = toChunkItemPayload(&items[i])
	}
	return out
}

func toConversionResponse(res *domain.ConversionResult) conversionResponse {
	return conversionResponse{
		Status:           "converted",
		OutcomeID:        res.OutcomeID.String(),
		ChunkID:          res.ChunkID.String(),
		ActionIDs:        uuidStrings(res.ActionIDs),
		NavigateHint:     res.NavigateHint.String(),
		AlreadyConverted: res.AlreadyConverted,
	}
}

func toConversionStatusResponse(st *domain.ConversionStatus) conversionStatusResponse {
	resp := conversionStatusResponse{
		ChunkID:     st.ChunkID.String(),
		Converted:   st.Converted,
		InFlight:    st.InFlight,
		Token:       uuidPtrString(st.Token),
		OutcomeID:   uuidPtrString(st.OutcomeID),
		ConvertedAt: st.ConvertedAt,
		StartedAt:   st.StartedAt,
	}
	if st.Step != "" {
		resp.Step = st.Step.String()
	}
	return resp
}

func toPreferenceResponse(p *domain.UserPreference) preferenceResponse {
	return preferenceResponse{
		AutoCreateActionsFromChunks: p.AutoCreateActionsFromChunks,
		DefaultPostConversionAction: p.DefaultPostConversionAction.String(),
	}
}

func toSuggestionJobResponse(j *domain.SuggestionJob) suggestionJobResponse {
	return suggestionJobResponse{
		ID:      j.ID.String(),
		State:   j.State.String(),
		ItemIDs: uuidStrings(j.ItemIDs),
		Result:  j.Result,
		Error:   j.Error,
	}
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseUUIDs(field string, raw []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, len(raw))
	for i, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, domain.NewValidationError(field, "must contain UUIDs")
		}
		ids[i] = id
	}
	return ids, nil
}

func parseOptionalUUID(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be a UUID")
	}
	return &id, nil
}
