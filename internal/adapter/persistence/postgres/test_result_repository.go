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
	resultCols     = `id, result_no, result_date, COALESCE(patient_id, ''), patient_name, age, gender, phone, email, test_ids, state, version, created_at, updated_at`
	resultLineCols = `id, result_id, parameter_id, test_type_id, parameter_name, value, normal_range, unit`
	billLineCols   = `id, result_id, test_type_id, test_name, amount::float8`
)

// TestResultRepository stores the result header in test_results and its
// lines in result_lines and bill_lines.
//
// Every write after creation runs in a transaction that first bumps the
// header version with `WHERE id = $1 AND version = $2`. The row lock taken
// there serializes concurrent writers on the same result, and an affected
// row count of zero means the caller read a version that is no longer
// current.
type TestResultRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.ITestResultRepository = (*TestResultRepository)(nil)

func NewTestResultRepository(pool *pgxpool.Pool) *TestResultRepository {
	return &TestResultRepository{pool: pool}
}

func (r *TestResultRepository) Create(ctx context.Context, res entities.TestResult) (entities.TestResult, error) {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		d := res.Demographics
		_, err := tx.Exec(ctx,
			`INSERT INTO test_results (id, result_no, result_date, patient_id, patient_name, age, gender, phone, email, test_ids, state, version, created_at, updated_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
			res.ID, res.ResultNo, res.ResultDate, nullable(res.PatientID), d.Name, d.Age, string(d.Gender), d.Phone, d.Email,
			testIDs(res.TestIDs), string(res.State), res.Version, res.CreatedAt, res.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert result: %w", err)
		}
		return insertLines(ctx, tx, res.ResultLines, res.BillLines)
	})
	if err != nil {
		return entities.TestResult{}, err
	}
	return res, nil
}

func (r *TestResultRepository) GetByID(ctx context.Context, id string) (entities.TestResult, error) {
	res, err := scanResult(r.pool.QueryRow(ctx, `SELECT `+resultCols+` FROM test_results WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.TestResult{}, nil
	}
	if err != nil {
		return entities.TestResult{}, err
	}
	list := []entities.TestResult{res}
	if err := attachLines(ctx, r.pool, list); err != nil {
		return entities.TestResult{}, err
	}
	return list[0], nil
}

func (r *TestResultRepository) List(ctx context.Context, f entities.ResultFilter) ([]entities.TestResult, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+resultCols+` FROM test_results
		 WHERE ($1 = '' OR state = $1) AND ($2 = '' OR patient_id = $2)
		 ORDER BY result_no DESC`,
		string(f.State), f.PatientID)
	if err != nil {
		return nil, err
	}
	out := []entities.TestResult{}
	for rows.Next() {
		res, err := scanResult(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		out = append(out, res)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := attachLines(ctx, r.pool, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *TestResultRepository) SaveSelection(ctx context.Context, res entities.TestResult, changes entities.LineChanges) error {
	return r.withVersion(ctx, res, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE test_results SET test_ids = $2 WHERE id = $1`, res.ID, testIDs(res.TestIDs)); err != nil {
			return fmt.Errorf("update selection: %w", err)
		}
		if err := deleteLines(ctx, tx, "result_lines", res.ID, changes.ResultLines.Remove); err != nil {
			return err
		}
		if err := deleteLines(ctx, tx, "bill_lines", res.ID, changes.BillLines.Remove); err != nil {
			return err
		}
		return insertLines(ctx, tx, changes.ResultLines.Add, changes.BillLines.Add)
	})
}

func (r *TestResultRepository) UpdateResultValues(ctx context.Context, res entities.TestResult, values map[string]string) error {
	return r.withVersion(ctx, res, func(tx pgx.Tx) error {
		for id, v := range values {
			tag, err := tx.Exec(ctx, `UPDATE result_lines SET value = $3 WHERE result_id = $1 AND id = $2`, res.ID, id, v)
			if err != nil {
				return fmt.Errorf("update result line %s: %w", id, err)
			}
			if tag.RowsAffected() == 0 {
				return interfaces.ErrConcurrentUpdate
			}
		}
		return nil
	})
}

func (r *TestResultRepository) UpdateBillLineAmount(ctx context.Context, res entities.TestResult, lineID string, amount float64) error {
	return r.withVersion(ctx, res, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE bill_lines SET amount = $3 WHERE result_id = $1 AND id = $2`, res.ID, lineID, amount)
		if err != nil {
			return fmt.Errorf("update bill line %s: %w", lineID, err)
		}
		if tag.RowsAffected() == 0 {
			return interfaces.ErrConcurrentUpdate
		}
		return nil
	})
}

func (r *TestResultRepository) UpdateDemographics(ctx context.Context, res entities.TestResult, d entities.Demographics) error {
	return r.withVersion(ctx, res, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE test_results SET patient_name = $2, age = $3, gender = $4, phone = $5, email = $6 WHERE id = $1`,
			res.ID, d.Name, d.Age, string(d.Gender), d.Phone, d.Email)
		if err != nil {
			return fmt.Errorf("update demographics: %w", err)
		}
		return nil
	})
}

func (r *TestResultRepository) UpdateState(ctx context.Context, res entities.TestResult, to entities.ResultState) error {
	return r.withVersion(ctx, res, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `UPDATE test_results SET state = $2 WHERE id = $1`, res.ID, string(to)); err != nil {
			return fmt.Errorf("update state: %w", err)
		}
		return nil
	})
}

func (r *TestResultRepository) ReferencesTestType(ctx context.Context, testTypeID string) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM test_results WHERE $1 = ANY(test_ids))`, testTypeID).Scan(&found)
	return found, err
}

// withVersion bumps and locks the header while its version still equals
// res.Version and runs fn in the same transaction. A unique violation raised by fn means another
// writer added the same line first.
func (r *TestResultRepository) withVersion(ctx context.Context, res entities.TestResult, fn func(tx pgx.Tx) error) error {
	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE test_results SET version = version + 1, updated_at = NOW() WHERE id = $1 AND version = $2`,
			res.ID, res.Version)
		if err != nil {
			return fmt.Errorf("lock result: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return interfaces.ErrConcurrentUpdate
		}
		return fn(tx)
	})
	if isUniqueViolation(err) {
		return interfaces.ErrConcurrentUpdate
	}
	return err
}

// deleteLines requires every id to still exist: a line removed by someone
// else in between means the caller worked from a stale read.
func deleteLines(ctx context.Context, tx pgx.Tx, table, resultID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tag, err := tx.Exec(ctx, `DELETE FROM `+table+` WHERE result_id = $1 AND id = ANY($2)`, resultID, ids)
	if err != nil {
		return fmt.Errorf("delete %s: %w", table, err)
	}
	if tag.RowsAffected() != int64(len(ids)) {
		return interfaces.ErrConcurrentUpdate
	}
	return nil
}

// insertLines queues every line insert in one batch. Lines are numbered by
// the position sequence in the order they are queued.
func insertLines(ctx context.Context, tx pgx.Tx, results []entities.ResultLine, bills []entities.BillLine) error {
	if len(results)+len(bills) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, l := range results {
		batch.Queue(
			`INSERT INTO result_lines (id, result_id, parameter_id, test_type_id, parameter_name, value, normal_range, unit)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			l.ID, l.ResultID, l.ParameterID, l.TestTypeID, l.ParameterName, l.Value, l.NormalRange, l.Unit)
	}
	for _, l := range bills {
		batch.Queue(
			`INSERT INTO bill_lines (id, result_id, test_type_id, test_name, amount) VALUES ($1, $2, $3, $4, $5)`,
			l.ID, l.ResultID, l.TestTypeID, l.TestName, l.Amount)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert lines: %w", err)
	}
	return nil
}

// attachLines loads the lines of every result in list with one query per
// line table.
func attachLines(ctx context.Context, q queryable, list []entities.TestResult) error {
	if len(list) == 0 {
		return nil
	}
	ids := make([]string, len(list))
	index := make(map[string]int, len(list))
	for i, res := range list {
		ids[i] = res.ID
		index[res.ID] = i
		list[i].ResultLines = []entities.ResultLine{}
		list[i].BillLines = []entities.BillLine{}
	}

	rows, err := q.Query(ctx, `SELECT `+resultLineCols+` FROM result_lines WHERE result_id = ANY($1) ORDER BY position`, ids)
	if err != nil {
		return err
	}
	for rows.Next() {
		var l entities.ResultLine
		if err := rows.Scan(&l.ID, &l.ResultID, &l.ParameterID, &l.TestTypeID, &l.ParameterName, &l.Value, &l.NormalRange, &l.Unit); err != nil {
			rows.Close()
			return err
		}
		i := index[l.ResultID]
		list[i].ResultLines = append(list[i].ResultLines, l)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = q.Query(ctx, `SELECT `+billLineCols+` FROM bill_lines WHERE result_id = ANY($1) ORDER BY position`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var l entities.BillLine
		if err := rows.Scan(&l.ID, &l.ResultID, &l.TestTypeID, &l.TestName, &l.Amount); err != nil {
			return err
		}
		i := index[l.ResultID]
		list[i].BillLines = append(list[i].BillLines, l)
	}
	return rows.Err()
}

func scanResult(row pgx.Row) (entities.TestResult, error) {
	var res entities.TestResult
	var gender, state string
	err := row.Scan(&res.ID, &res.ResultNo, &res.ResultDate, &res.PatientID,
		&res.Demographics.Name, &res.Demographics.Age, &gender, &res.Demographics.Phone, &res.Demographics.Email,
		&res.TestIDs, &state, &res.Version, &res.CreatedAt, &res.UpdatedAt)
	res.Demographics.Gender = entities.Gender(gender)
	res.State = entities.ResultState(state)
	return res, err
}

// testIDs keeps an empty selection from being written as NULL.
func testIDs(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
