package interfaces

import (
	"context"

	"lab_management/internal/domain/entities"
)

// IBillingPaymentRepository persists payments made against a result's bill.
// GetByID returns a zero payment when nothing is stored under id.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByResultID(ctx context.Context, resultID string) ([]entities.BillingPayment, error)
}
