package chunk

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/outcomes-backend/internal/domain"
)

// memStore backs chunkRepoMock and itemRepoMock with maps so tests can
// check membership state across several calls.
type memStore struct {
	chunks  map[uuid.UUID]*domain.Chunk
	items   map[uuid.UUID]*domain.InboxItem
	members map[uuid.UUID]*domain.ChunkItem // by chunk item id
}

func newMemStore() *memStore {
	return &memStore{
		chunks:  make(map[uuid.UUID]*domain.Chunk),
		items:   make(map[uuid.UUID]*domain.InboxItem),
		members: make(map[uuid.UUID]*domain.ChunkItem),
	}
}

func (m *memStore) addChunk(userID uuid.UUID, name string) *domain.Chunk {
	c := &domain.Chunk{ID: uuid.New(), UserID: userID, Name: name, Status: domain.ChunkStatusActive}
	m.chunks[c.ID] = c
	return c
}

func (m *memStore) addItem(userID uuid.UUID, content string) *domain.InboxItem {
	i := &domain.InboxItem{ID: uuid.New(), UserID: userID, Content: content, ItemType: domain.ItemTypeNote}
	m.items[i.ID] = i
	return i
}

func (m *memStore) ordered(chunkID uuid.UUID) []domain.ChunkItem {
	var out []domain.ChunkItem
	for _, ci := range m.members {
		if ci.ChunkID == chunkID {
			cp := *ci
			item := *m.items[ci.InboxItemID]
			cp.Item = &item
			out = append(out, cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out
}

func (m *memStore) chunkRepo() *chunkRepoMock {
	return &chunkRepoMock{
		GetByIDFunc: func(ctx context.Context, userID, chunkID uuid.UUID) (*domain.Chunk, error) {
			c, ok := m.chunks[chunkID]
			if !ok || c.UserID != userID {
				return nil, domain.ErrNotFound
			}
			cp := *c
			cp.ItemCount = len(m.ordered(chunkID))
			return &cp, nil
		},
		LockFunc: func(ctx context.Context, chunkID uuid.UUID) (*domain.Chunk, error) {
			c, ok := m.chunks[chunkID]
			if !ok {
				return nil, domain.ErrNotFound
			}
			cp := *c
			return &cp, nil
		},
		CreateFunc: func(ctx context.Context, c *domain.Chunk) (*domain.Chunk, error) {
			cp := *c
			m.chunks[c.ID] = &cp
			return c, nil
		},
		UpdateFunc: func(ctx context.Context, chunkID uuid.UUID, p domain.ChunkUpdateParams, now time.Time) error {
			c := m.chunks[chunkID]
			if p.Name != nil {
				c.Name = *p.Name
			}
			if p.Color != nil {
				if *p.Color == "" {
					c.Color = nil
				} else {
					v := *p.Color
					c.Color = &v
				}
			}
			return nil
		},
		SetStatusFunc: func(ctx context.Context, chunkID uuid.UUID, status domain.ChunkStatus, now time.Time) error {
			m.chunks[chunkID].Status = status
			return nil
		},
		DeleteFunc: func(ctx context.Context, chunkID uuid.UUID) error {
			delete(m.chunks, chunkID)
			return nil
		},
		ListItemsFunc: func(ctx context.Context, chunkID uuid.UUID) ([]domain.ChunkItem, error) {
			return m.ordered(chunkID), nil
		},
		GetItemFunc: func(ctx context.Context, id uuid.UUID) (*domain.ChunkItem, error) {
			ci, ok := m.members[id]
			if !ok {
				return nil, domain.ErrNotFound
			}
			cp := *ci
			item := *m.items[ci.InboxItemID]
			cp.Item = &item
			return &cp, nil
		},
		AddItemFunc: func(ctx context.Context, chunkID, itemID uuid.UUID, now time.Time) (*domain.ChunkItem, error) {
			item := m.items[itemID]
			if item.ChunkID != nil {
				return nil, domain.NewConflictError("inbox_item", itemID, "already chunked")
			}
			maxOrder := 0
			for _, ci := range m.ordered(chunkID) {
				if ci.SortOrder > maxOrder {
					maxOrder = ci.SortOrder
				}
			}
			ci := &domain.ChunkItem{ID: uuid.New(), ChunkID: chunkID, InboxItemID: itemID, SortOrder: maxOrder + 1, CreatedAt: now}
			m.members[ci.ID] = ci
			item.ChunkID = &chunkID
			cp := *ci
			return &cp, nil
		},
		RemoveItemFunc: func(ctx context.Context, id uuid.UUID) error {
			ci, ok := m.members[id]
			if !ok {
				return domain.ErrNotFound
			}
			delete(m.members, id)
			m.items[ci.InboxItemID].ChunkID = nil
			return nil
		},
		DetachItemFunc: func(ctx context.Context, itemID uuid.UUID) error {
			for id, ci := range m.members {
				if ci.InboxItemID == itemID {
					delete(m.members, id)
				}
			}
			m.items[itemID].ChunkID = nil
			return nil
		},
		DetachAllFunc: func(ctx context.Context, chunkID uuid.UUID) (int, error) {
			n := 0
			for id, ci := range m.members {
				if ci.ChunkID == chunkID {
					delete(m.members, id)
					m.items[ci.InboxItemID].ChunkID = nil
					n++
				}
			}
			return n, nil
		},
		ReorderFunc: func(ctx context.Context, chunkID uuid.UUID, ids []uuid.UUID) error {
			pos := make(map[uuid.UUID]int, len(ids))
			for i, id := range ids {
				pos[id] = i + 1
			}
			for _, ci := range m.members {
				if ci.ChunkID != chunkID {
					continue
				}
				p, ok := pos[ci.InboxItemID]
				if !ok {
					return fmt.Errorf("reorder: %w", domain.ErrConflict)
				}
				ci.SortOrder = p
			}
			return nil
		},
	}
}

func (m *memStore) itemRepo() *itemRepoMock {
	get := func(ctx context.Context, userID, itemID uuid.UUID) (*domain.InboxItem, error) {
		i, ok := m.items[itemID]
		if !ok || i.UserID != userID {
			return nil, domain.ErrNotFound
		}
		cp := *i
		return &cp, nil
	}
	return &itemRepoMock{GetByIDFunc: get, GetForUpdateFunc: get}
}
