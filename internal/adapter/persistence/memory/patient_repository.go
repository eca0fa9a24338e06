package memory

import (
	"context"
	"sort"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"
)

type PatientRepository struct {
	s *Store
}

var _ interfaces.IPatientRepository = (*PatientRepository)(nil)

func NewPatientRepository(s *Store) *PatientRepository {
	return &PatientRepository{s: s}
}

func (r *PatientRepository) Create(_ context.Context, p entities.Patient) (entities.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.patients[p.ID]; ok {
		return entities.Patient{}, ErrDuplicateID
	}
	r.s.patients[p.ID] = p
	return p, nil
}

func (r *PatientRepository) GetByID(_ context.Context, id string) (entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.patients[id], nil
}

func (r *PatientRepository) Update(_ context.Context, p entities.Patient) (entities.Patient, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.patients[p.ID]; !ok {
		return entities.Patient{}, nil
	}
	r.s.patients[p.ID] = p
	return p, nil
}

func (r *PatientRepository) List(_ context.Context) ([]entities.Patient, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Patient, 0, len(r.s.patients))
	for _, p := range r.s.patients {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
