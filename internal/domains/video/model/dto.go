package model

import (
	"bytes"
	"encoding/json"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateVideoRequest - POST /api/videos
type CreateVideoRequest struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	Link      string `json:"link"`
}

// Validate only checks presence: whitespace counts as content
func (r CreateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required),
		validation.Field(&r.Thumbnail, validation.Required),
		validation.Field(&r.Link, validation.Required),
	)
}

func (r CreateVideoRequest) ToVideo() *Video {
	return &Video{
		Title:     r.Title,
		Thumbnail: r.Thumbnail,
		Link:      r.Link,
	}
}

// UpdateVideoRequest - PUT /api/videos/:id
// An omitted field keeps its stored value. A field sent as null is listed in
// NullFields so it can be told apart from an omitted one.
type UpdateVideoRequest struct {
	Title     *string `json:"title"`
	Thumbnail *string `json:"thumbnail"`
	Link      *string `json:"link"`

	NullFields []string `json:"-"`
}

func (r *UpdateVideoRequest) UnmarshalJSON(data []byte) error {
	type plain UpdateVideoRequest

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = UpdateVideoRequest(p)

	for _, name := range []string{"title", "thumbnail", "link"} {
		if raw, ok := fields[name]; ok && bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			r.NullFields = append(r.NullFields, name)
		}
	}
	return nil
}

func (r UpdateVideoRequest) isNull(field string) bool {
	for _, name := range r.NullFields {
		if name == field {
			return true
		}
	}
	return false
}

// Validate enforces the stored-record schema on the supplied fields:
// a field may be omitted but never set to empty or null.
func (r UpdateVideoRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.When(r.isNull("title"), validation.NotNil), validation.NilOrNotEmpty),
		validation.Field(&r.Thumbnail, validation.When(r.isNull("thumbnail"), validation.NotNil), validation.NilOrNotEmpty),
		validation.Field(&r.Link, validation.When(r.isNull("link"), validation.NotNil), validation.NilOrNotEmpty),
	)
}

func (r UpdateVideoRequest) ToPatch() VideoPatch {
	return VideoPatch{
		Title:     r.Title,
		Thumbnail: r.Thumbnail,
		Link:      r.Link,
	}
}
