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

const (
	categoryCols  = `id, name, description, created_at`
	testTypeCols  = `id, name, COALESCE(category_id, ''), price::float8, created_at, updated_at`
	parameterCols = `id, test_type_id, name, normal_range, unit`
)

// CatalogRepository keeps test parameters in their own table, ordered by
// position within the owning test type.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c entities.TestCategory) (entities.TestCategory, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO test_categories (`+categoryCols+`) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.Description, c.CreatedAt)
	if err != nil {
		return entities.TestCategory{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

func (r *CatalogRepository) GetCategory(ctx context.Context, id string) (entities.TestCategory, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+categoryCols+` FROM test_categories WHERE id = $1`, id)
	c, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.TestCategory{}, nil
	}
	return c, err
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]entities.TestCategory, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+categoryCols+` FROM test_categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.TestCategory{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CatalogRepository) CreateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO test_types (id, name, category_id, price, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			t.ID, t.Name, nullable(t.CategoryID), t.Price, t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert test type: %w", err)
		}
		return insertParameters(ctx, tx, t)
	})
	if err != nil {
		return entities.TestType{}, err
	}
	return t, nil
}

// UpdateTestType rewrites the header and replaces the parameter list. A
// missing test type returns the zero value.
func (r *CatalogRepository) UpdateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error) {
	found := false
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE test_types SET name = $2, category_id = $3, price = $4, updated_at = $5 WHERE id = $1`,
			t.ID, t.Name, nullable(t.CategoryID), t.Price, t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("update test type: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		found = true
		if _, err := tx.Exec(ctx, `DELETE FROM test_parameters WHERE test_type_id = $1`, t.ID); err != nil {
			return fmt.Errorf("clear parameters: %w", err)
		}
		return insertParameters(ctx, tx, t)
	})
	if err != nil || !found {
		return entities.TestType{}, err
	}
	return t, nil
}

func (r *CatalogRepository) GetTestType(ctx context.Context, id string) (entities.TestType, error) {
	types, err := r.GetTestTypes(ctx, []string{id})
	if err != nil {
		return entities.TestType{}, err
	}
	return types[id], nil
}

func (r *CatalogRepository) GetTestTypes(ctx context.Context, ids []string) (map[string]entities.TestType, error) {
	out := make(map[string]entities.TestType, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	list, err := r.queryTestTypes(ctx, `SELECT `+testTypeCols+` FROM test_types WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	for _, t := range list {
		out[t.ID] = t
	}
	return out, nil
}

func (r *CatalogRepository) ListTestTypes(ctx context.Context, categoryID string) ([]entities.TestType, error) {
	return r.queryTestTypes(ctx,
		`SELECT `+testTypeCols+` FROM test_types WHERE ($1 = '' OR category_id = $1) ORDER BY name`,
		categoryID)
}

func (r *CatalogRepository) DeleteTestType(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM test_types WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete test type: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// queryTestTypes runs a test type query and attaches the parameters of every
// returned row with one extra query.
func (r *CatalogRepository) queryTestTypes(ctx context.Context, sql string, args ...interface{}) ([]entities.TestType, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	out := []entities.TestType{}
	for rows.Next() {
		t, err := scanTestType(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return out, nil
	}

	ids := make([]string, len(out))
	for i, t := range out {
		ids[i] = t.ID
	}
	params, err := loadParameters(ctx, r.pool, ids)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Parameters = params[out[i].ID]
		if out[i].Parameters == nil {
			out[i].Parameters = []entities.TestParameter{}
		}
	}
	return out, nil
}

func insertParameters(ctx context.Context, q queryable, t entities.TestType) error {
	for i, p := range t.Parameters {
		_, err := q.Exec(ctx,
			`INSERT INTO test_parameters (id, test_type_id, name, normal_range, unit, position)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, t.ID, p.Name, p.NormalRange, p.Unit, i)
		if err != nil {
			return fmt.Errorf("insert parameter %q: %w", p.Name, err)
		}
	}
	return nil
}

func loadParameters(ctx context.Context, q queryable, testTypeIDs []string) (map[string][]entities.TestParameter, error) {
	rows, err := q.Query(ctx,
		`SELECT `+parameterCols+` FROM test_parameters WHERE test_type_id = ANY($1) ORDER BY test_type_id, position`,
		testTypeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[string][]entities.TestParameter{}
	for rows.Next() {
		var p entities.TestParameter
		if err := rows.Scan(&p.ID, &p.TestTypeID, &p.Name, &p.NormalRange, &p.Unit); err != nil {
			return nil, err
		}
		out[p.TestTypeID] = append(out[p.TestTypeID], p)
	}
	return out, rows.Err()
}

func scanCategory(row pgx.Row) (entities.TestCategory, error) {
	var c entities.TestCategory
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	return c, err
}

func scanTestType(row pgx.Row) (entities.TestType, error) {
	var t entities.TestType
	err := row.Scan(&t.ID, &t.Name, &t.CategoryID, &t.Price, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}
