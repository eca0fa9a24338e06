package memory

import (
	"context"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"
)

type BillingPaymentRepository struct {
	s *Store
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository(s *Store) *BillingPaymentRepository {
	return &BillingPaymentRepository{s: s}
}

func (r *BillingPaymentRepository) Create(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[p.ID]; ok {
		return entities.BillingPayment{}, ErrDuplicateID
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(_ context.Context, id string) (entities.BillingPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments[id], nil
}

func (r *BillingPaymentRepository) ListByResultID(_ context.Context, resultID string) ([]entities.BillingPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []entities.BillingPayment
	for _, p := range r.s.payments {
		if p.ResultID == resultID {
			out = append(out, p)
		}
	}
	return out, nil
}
