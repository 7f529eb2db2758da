package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"videohub-backend/internal/domains/video/model"
)

// MemoryRepository keeps records in a map. Used by STORE_DRIVER=memory and by tests.
// Identifiers are ObjectIDs so ids look the same as with the document store.
type MemoryRepository struct {
	mu     sync.RWMutex
	videos map[string]*memoryEntry
	seq    uint64
	now    func() time.Time
}

type memoryEntry struct {
	video model.Video
	seq   uint64
}

var _ VideoRepository = (*MemoryRepository)(nil)

type MemoryOption func(*MemoryRepository)

// WithClock replaces time.Now as the source of createdAt/updatedAt
func WithClock(now func() time.Time) MemoryOption {
	return func(r *MemoryRepository) {
		r.now = now
	}
}

func NewMemoryRepository(opts ...MemoryOption) *MemoryRepository {
	r := &MemoryRepository{
		videos: make(map[string]*memoryEntry),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *MemoryRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := model.StoreTime(r.now())
	r.seq++

	copied := *video
	copied.ID = primitive.NewObjectID().Hex()
	copied.CreatedAt = now
	copied.UpdatedAt = now

	r.videos[copied.ID] = &memoryEntry{video: copied, seq: r.seq}

	result := copied
	return &result, nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := normalizeObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.videos[id]
	if !exists {
		return nil, model.NewVideoNotFoundError()
	}

	copied := entry.video
	return &copied, nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]*memoryEntry, 0, len(r.videos))
	for _, entry := range r.videos {
		entries = append(entries, entry)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].video.CreatedAt.Equal(entries[j].video.CreatedAt) {
			return entries[i].video.CreatedAt.After(entries[j].video.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	videos := make([]*model.Video, 0, len(entries))
	for _, entry := range entries {
		copied := entry.video
		videos = append(videos, &copied)
	}
	return videos, nil
}

func (r *MemoryRepository) Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	id, err := normalizeObjectID(id)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, exists := r.videos[id]
	if !exists {
		return nil, model.NewVideoNotFoundError()
	}

	entry.video.Apply(patch)
	entry.video.UpdatedAt = model.StoreTime(r.now())

	copied := entry.video
	return &copied, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	id, err := normalizeObjectID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.videos[id]; !exists {
		return model.NewVideoNotFoundError()
	}
	delete(r.videos, id)
	return nil
}

// Count returns the number of stored records
func (r *MemoryRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.videos)
}

// normalizeObjectID returns the canonical lower-case hex form used as map key
func normalizeObjectID(id string) (string, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return "", err
	}
	return oid.Hex(), nil
}
