package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"videohub-backend/internal/domains/video/model"
	"videohub-backend/pkg/database"
)

// PostgresRepository stores videos in a relational table.
// The table mirrors the document: a generated UUID id, three non-empty text
// columns and the two timestamps. seq only breaks ties in the list order.
type PostgresRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ VideoRepository = (*PostgresRepository)(nil)

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{
		pool: pool,
		now:  time.Now,
	}
}

const videoColumns = `id::text, title, thumbnail, link, created_at, updated_at`

// EnsureSchema creates the videos table and its list index when missing.
// Both statements run in one transaction so a half-built schema never survives.
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			CREATE TABLE IF NOT EXISTS videos (
				id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
				seq        BIGINT GENERATED ALWAYS AS IDENTITY,
				title      TEXT NOT NULL CHECK (title <> ''),
				thumbnail  TEXT NOT NULL CHECK (thumbnail <> ''),
				link       TEXT NOT NULL CHECK (link <> ''),
				created_at TIMESTAMPTZ NOT NULL,
				updated_at TIMESTAMPTZ NOT NULL
			)
		`)
		if err != nil {
			return fmt.Errorf("failed to create videos table: %w", err)
		}

		_, err = tx.Exec(ctx, `
			CREATE INDEX IF NOT EXISTS idx_videos_created_at
			ON videos (created_at DESC, seq DESC)
		`)
		if err != nil {
			return fmt.Errorf("failed to create videos index: %w", err)
		}
		return nil
	})
}

func (r *PostgresRepository) Create(ctx context.Context, video *model.Video) (*model.Video, error) {
	now := model.StoreTime(r.now())

	query := `
		INSERT INTO videos (title, thumbnail, link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		RETURNING ` + videoColumns

	return scanVideo(r.pool.QueryRow(ctx, query, video.Title, video.Thumbnail, video.Link, now))
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`
	return scanVideo(r.pool.QueryRow(ctx, query, uid))
}

func (r *PostgresRepository) List(ctx context.Context) ([]*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos ORDER BY created_at DESC, seq DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := make([]*model.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id string, patch model.VideoPatch) (*model.Video, error) {
	uid, err := parseUUID(id)
	if err != nil {
		return nil, err
	}

	// NULL parameters keep the stored value
	query := `
		UPDATE videos SET
			title      = COALESCE($2::text, title),
			thumbnail  = COALESCE($3::text, thumbnail),
			link       = COALESCE($4::text, link),
			updated_at = $5
		WHERE id = $1
		RETURNING ` + videoColumns

	return scanVideo(r.pool.QueryRow(ctx, query,
		uid, patch.Title, patch.Thumbnail, patch.Link, model.StoreTime(r.now()),
	))
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	uid, err := parseUUID(id)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, uid)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return model.NewVideoNotFoundError()
	}
	return nil
}

// scanVideo reads one row in videoColumns order
func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(&v.ID, &v.Title, &v.Thumbnail, &v.Link, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.NewVideoNotFoundError()
	}
	if err != nil {
		return nil, err
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}

func parseUUID(id string) (uuid.UUID, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, model.NewInvalidIDError(id, "UUID")
	}
	return uid, nil
}
