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

const patientCols = `id, name, age, gender, phone, email, created_at, updated_at`

type PatientRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IPatientRepository = (*PatientRepository)(nil)

func NewPatientRepository(pool *pgxpool.Pool) *PatientRepository {
	return &PatientRepository{pool: pool}
}

func (r *PatientRepository) Create(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO patients (`+patientCols+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Age, string(p.Gender), p.Phone, p.Email, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return entities.Patient{}, fmt.Errorf("insert patient: %w", err)
	}
	return p, nil
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	p, err := scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.Patient{}, nil
	}
	return p, err
}

// Update returns the zero value when the patient does not exist.
func (r *PatientRepository) Update(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE patients SET name = $2, age = $3, gender = $4, phone = $5, email = $6, updated_at = $7
		 WHERE id = $1`,
		p.ID, p.Name, p.Age, string(p.Gender), p.Phone, p.Email, p.UpdatedAt)
	if err != nil {
		return entities.Patient{}, fmt.Errorf("update patient: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return entities.Patient{}, nil
	}
	return p, nil
}

func (r *PatientRepository) List(ctx context.Context) ([]entities.Patient, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patients ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPatient(row pgx.Row) (entities.Patient, error) {
	var p entities.Patient
	var gender string
	err := row.Scan(&p.ID, &p.Name, &p.Age, &gender, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt)
	p.Gender = entities.Gender(gender)
	return p, err
}
