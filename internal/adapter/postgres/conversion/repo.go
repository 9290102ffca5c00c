// Package conversion implements the conversion history repository using
// PostgreSQL. Inserts happen exactly once per successful pipeline run and
// rows are never updated, so the repository exposes only Create and
// per-user ordered reads.
package conversion

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/voicescribe-backend/internal/adapter/postgres"
	"github.com/heartmarshall/voicescribe-backend/internal/domain"
)

// sb builds queries with PostgreSQL-style $N placeholders.
var sb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides conversion history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new conversion repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts one history row and returns it with the DB-assigned
// id and created_at. Failure wraps domain.ErrRecord; the caller reports
// the whole conversion as failed even though the artifact is already
// durable in object storage.
func (r *Repo) Create(ctx context.Context, c *domain.Conversion) (*domain.Conversion, error) {
	query, args, err := sb.Insert("conversions").
		Columns("user_id", "text", "audio_url").
		Values(c.UserID, c.Text, c.AudioURL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert conversion: %w", err)
	}

	out := *c
	if err := r.db.QueryRow(ctx, query, args...).Scan(&out.ID, &out.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrRecord, postgres.MapError(err, "insert conversion"))
	}

	return &out, nil
}

// ListByUser returns the user's conversions ordered by created_at DESC.
// Failure wraps domain.ErrHistory.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Conversion, error) {
	query, args, err := sb.Select("id", "user_id", "text", "audio_url", "created_at").
		From("conversions").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list conversions: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrHistory, postgres.MapError(err, "list conversions"))
	}
	defer rows.Close()

	var conversions []domain.Conversion
	for rows.Next() {
		var c domain.Conversion
		if err := rows.Scan(&c.ID, &c.UserID, &c.Text, &c.AudioURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: scan conversion: %w", domain.ErrHistory, err)
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate conversions: %w", domain.ErrHistory, err)
	}

	if conversions == nil {
		conversions = []domain.Conversion{}
	}

	return conversions, nil
}
