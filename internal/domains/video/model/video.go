package model

import "time"

// Video is one catalog record.
// ID, CreatedAt and UpdatedAt are owned by the store: it generates the first
// two on insert and refreshes UpdatedAt on every update.
type Video struct {
	ID        string
	Title     string
	Thumbnail string
	Link      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// VideoResponse is the public shape of a record: the store identifier is exposed as "id"
type VideoResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (v *Video) ToResponse() *VideoResponse {
	return &VideoResponse{
		ID:        v.ID,
		Title:     v.Title,
		Thumbnail: v.Thumbnail,
		Link:      v.Link,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
	}
}

// Apply copies every field set on the patch onto v. Timestamps are left to the store.
func (v *Video) Apply(patch VideoPatch) {
	if patch.Title != nil {
		v.Title = *patch.Title
	}
	if patch.Thumbnail != nil {
		v.Thumbnail = *patch.Thumbnail
	}
	if patch.Link != nil {
		v.Link = *patch.Link
	}
}

// VideoPatch lists the mutable fields an update replaces; nil means "keep"
type VideoPatch struct {
	Title     *string
	Thumbnail *string
	Link      *string
}

// IsEmpty reports whether the patch changes nothing
func (p VideoPatch) IsEmpty() bool {
	return p.Title == nil && p.Thumbnail == nil && p.Link == nil
}

// StoreTime truncates t to the millisecond precision of the document store, in UTC.
// Every store uses it so a created record and the same record read back compare equal.
func StoreTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}
