package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const paymentCols = `id, result_id, result_no, amount::float8, date, status, provider_payload, provider_payload_raw`

type BillingPaymentRepository struct {
	pool *pgxpool.Pool
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository(pool *pgxpool.Pool) *BillingPaymentRepository {
	return &BillingPaymentRepository{pool: pool}
}

func (r *BillingPaymentRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	var payload []byte
	if p.ProviderPayload != nil {
		b, err := json.Marshal(p.ProviderPayload)
		if err != nil {
			return entities.BillingPayment{}, fmt.Errorf("encode provider payload: %w", err)
		}
		payload = b
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (id, result_id, result_no, amount, date, status, provider_payload, provider_payload_raw)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.ResultID, p.ResultNo, p.Amount, p.Date, string(p.Status), payload, string(p.ProviderPayloadRaw))
	if err != nil {
		return entities.BillingPayment{}, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	p, err := scanPayment(r.pool.QueryRow(ctx, `SELECT `+paymentCols+` FROM payments WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.BillingPayment{}, nil
	}
	return p, err
}

func (r *BillingPaymentRepository) ListByResultID(ctx context.Context, resultID string) ([]entities.BillingPayment, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+paymentCols+` FROM payments WHERE result_id = $1`, resultID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []entities.BillingPayment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func scanPayment(row pgx.Row) (entities.BillingPayment, error) {
	var p entities.BillingPayment
	var status, raw string
	var payload []byte
	if err := row.Scan(&p.ID, &p.ResultID, &p.ResultNo, &p.Amount, &p.Date, &status, &payload, &raw); err != nil {
		return entities.BillingPayment{}, err
	}
	p.Status = entities.PaymentStatus(status)
	if raw != "" {
		p.ProviderPayloadRaw = json.RawMessage(raw)
	}
	if len(payload) > 0 {
		if err := json.Unmarshal(payload, &p.ProviderPayload); err != nil {
			return entities.BillingPayment{}, fmt.Errorf("decode provider payload: %w", err)
		}
	}
	return p, nil
}
