package repository

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"videohub-backend/internal/domains/video/model"
)

// tickingClock advances one second on every reading
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTickingClock() *tickingClock {
	return &tickingClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

// repoFactory returns an empty repository reading time from now
type repoFactory func(t *testing.T, now func() time.Time) VideoRepository

func strPtr(s string) *string { return &s }

func sampleVideo(title string) *model.Video {
	return &model.Video{
		Title:     title,
		Thumbnail: "https://img.example.com/" + title + ".jpg",
		Link:      "https://videos.example.com/" + title,
	}
}

func codeOf(err error) string {
	var videoErr *model.VideoError
	if errors.As(err, &videoErr) {
		return videoErr.Code
	}
	return ""
}

// runRepositoryContract checks the behaviour every store must share.
// missingID is a well-formed id that names no record, badID a malformed one.
func runRepositoryContract(t *testing.T, newRepo repoFactory, missingID, badID string) {
	ctx := context.Background()

	t.Run("create assigns id and timestamps", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		created, err := repo.Create(ctx, sampleVideo("intro"))
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "intro", created.Title)
		assert.Equal(t, "https://img.example.com/intro.jpg", created.Thumbnail)
		assert.Equal(t, "https://videos.example.com/intro", created.Link)
		assert.False(t, created.CreatedAt.IsZero())
		assert.True(t, created.CreatedAt.Equal(created.UpdatedAt))
	})

	t.Run("get returns what create returned", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		created, err := repo.Create(ctx, sampleVideo("roundtrip"))
		require.NoError(t, err)

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ToResponse(), got.ToResponse())
	})

	t.Run("get missing id is not found", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		_, err := repo.GetByID(ctx, missingID)
		assert.Equal(t, model.ErrCodeVideoNotFound, codeOf(err))
		assert.True(t, model.IsNotFound(err))
	})

	t.Run("upper-case id names the same record", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		created, err := repo.Create(ctx, sampleVideo("shout"))
		require.NoError(t, err)
		upper := strings.ToUpper(created.ID)

		got, err := repo.GetByID(ctx, upper)
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)

		updated, err := repo.Update(ctx, upper, model.VideoPatch{Title: strPtr("SHOUT")})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "SHOUT", updated.Title)

		require.NoError(t, repo.Delete(ctx, upper))
		_, err = repo.GetByID(ctx, created.ID)
		assert.Equal(t, model.ErrCodeVideoNotFound, codeOf(err))
	})

	t.Run("malformed id is rejected", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		_, err := repo.GetByID(ctx, badID)
		assert.Equal(t, model.ErrCodeInvalidID, codeOf(err))

		_, err = repo.Update(ctx, badID, model.VideoPatch{Title: strPtr("x")})
		assert.Equal(t, model.ErrCodeInvalidID, codeOf(err))

		err = repo.Delete(ctx, badID)
		assert.Equal(t, model.ErrCodeInvalidID, codeOf(err))
	})

	t.Run("list is newest first", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		a, err := repo.Create(ctx, sampleVideo("a"))
		require.NoError(t, err)
		b, err := repo.Create(ctx, sampleVideo("b"))
		require.NoError(t, err)
		c, err := repo.Create(ctx, sampleVideo("c"))
		require.NoError(t, err)

		videos, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 3)
		assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{videos[0].ID, videos[1].ID, videos[2].ID})
	})

	t.Run("list ties on createdAt keep insertion order reversed", func(t *testing.T) {
		fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
		repo := newRepo(t, func() time.Time { return fixed })

		first, err := repo.Create(ctx, sampleVideo("first"))
		require.NoError(t, err)
		second, err := repo.Create(ctx, sampleVideo("second"))
		require.NoError(t, err)

		videos, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, videos, 2)
		assert.Equal(t, second.ID, videos[0].ID)
		assert.Equal(t, first.ID, videos[1].ID)
	})

	t.Run("list of empty store is empty, not nil", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		videos, err := repo.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, videos)
		assert.Empty(t, videos)
	})

	t.Run("update replaces fields and advances updatedAt", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		created, err := repo.Create(ctx, sampleVideo("old"))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.VideoPatch{
			Title:     strPtr("new"),
			Thumbnail: strPtr("new.jpg"),
			Link:      strPtr("https://videos.example.com/new"),
		})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "new", updated.Title)
		assert.Equal(t, "new.jpg", updated.Thumbnail)
		assert.Equal(t, "https://videos.example.com/new", updated.Link)
		assert.True(t, updated.CreatedAt.Equal(created.CreatedAt))
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

		got, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, updated.ToResponse(), got.ToResponse())
	})

	t.Run("update keeps omitted fields", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		created, err := repo.Create(ctx, sampleVideo("keep"))
		require.NoError(t, err)

		updated, err := repo.Update(ctx, created.ID, model.VideoPatch{Title: strPtr("renamed")})
		require.NoError(t, err)

		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, created.Thumbnail, updated.Thumbnail)
		assert.Equal(t, created.Link, updated.Link)
	})

	t.Run("update missing id is not found", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		_, err := repo.Update(ctx, missingID, model.VideoPatch{Title: strPtr("x")})
		assert.Equal(t, model.ErrCodeVideoNotFound, codeOf(err))
	})

	t.Run("delete removes the record", func(t *testing.T) {
		repo := newRepo(t, newTickingClock().Now)

		created, err := repo.Create(ctx, sampleVideo("gone"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.GetByID(ctx, created.ID)
		assert.Equal(t, model.ErrCodeVideoNotFound, codeOf(err))

		err = repo.Delete(ctx, created.ID)
		assert.Equal(t, model.ErrCodeVideoNotFound, codeOf(err))
	})
}
