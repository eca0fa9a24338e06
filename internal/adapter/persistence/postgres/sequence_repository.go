package postgres

import (
	"context"
	"errors"
	"fmt"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SequenceRepository issues result numbers from one row per sequence. The
// increment runs in its own statement, so a number handed out is never
// reused even when the caller's later writes fail.
type SequenceRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ISequenceGenerator = (*SequenceRepository)(nil)

func NewSequenceRepository(pool *pgxpool.Pool) *SequenceRepository {
	return &SequenceRepository{pool: pool}
}

// Configure creates the counter if it does not exist yet. An existing
// counter keeps its value, prefix and padding.
func (r *SequenceRepository) Configure(ctx context.Context, seq entities.Sequence) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO sequences (name, prefix, padding, last) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (name) DO NOTHING`,
		seq.Name, seq.Prefix, seq.Padding, seq.Last)
	if err != nil {
		return fmt.Errorf("configure sequence %q: %w", seq.Name, err)
	}
	return nil
}

func (r *SequenceRepository) Next(ctx context.Context, name string) (string, error) {
	seq := entities.Sequence{Name: name}
	err := r.pool.QueryRow(ctx,
		`UPDATE sequences SET last = last + 1 WHERE name = $1 RETURNING prefix, padding, last`,
		name).Scan(&seq.Prefix, &seq.Padding, &seq.Last)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("%q: %w", name, interfaces.ErrSequenceNotConfigured)
	}
	if err != nil {
		return "", fmt.Errorf("next %q: %w", name, err)
	}
	return seq.Format(seq.Last), nil
}
