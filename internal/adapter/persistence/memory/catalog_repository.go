package memory

import (
	"context"
	"errors"
	"sort"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"
)

var ErrDuplicateID = errors.New("an item with this id already exists")

type CatalogRepository struct {
	s *Store
}

var _ interfaces.ICatalogRepository = (*CatalogRepository)(nil)

func NewCatalogRepository(s *Store) *CatalogRepository {
	return &CatalogRepository{s: s}
}

func (r *CatalogRepository) CreateCategory(_ context.Context, c entities.TestCategory) (entities.TestCategory, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.categories[c.ID]; ok {
		return entities.TestCategory{}, ErrDuplicateID
	}
	r.s.categories[c.ID] = c
	return c, nil
}

func (r *CatalogRepository) GetCategory(_ context.Context, id string) (entities.TestCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.categories[id], nil
}

func (r *CatalogRepository) ListCategories(_ context.Context) ([]entities.TestCategory, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.TestCategory, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogRepository) CreateTestType(_ context.Context, t entities.TestType) (entities.TestType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.testTypes[t.ID]; ok {
		return entities.TestType{}, ErrDuplicateID
	}
	r.s.testTypes[t.ID] = cloneTestType(t)
	return t, nil
}

func (r *CatalogRepository) UpdateTestType(_ context.Context, t entities.TestType) (entities.TestType, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.testTypes[t.ID]; !ok {
		return entities.TestType{}, nil
	}
	r.s.testTypes[t.ID] = cloneTestType(t)
	return t, nil
}

func (r *CatalogRepository) GetTestType(_ context.Context, id string) (entities.TestType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	t, ok := r.s.testTypes[id]
	if !ok {
		return entities.TestType{}, nil
	}
	return cloneTestType(t), nil
}

func (r *CatalogRepository) GetTestTypes(_ context.Context, ids []string) (map[string]entities.TestType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[string]entities.TestType, len(ids))
	for _, id := range ids {
		if t, ok := r.s.testTypes[id]; ok {
			out[id] = cloneTestType(t)
		}
	}
	return out, nil
}

func (r *CatalogRepository) ListTestTypes(_ context.Context, categoryID string) ([]entities.TestType, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.TestType, 0, len(r.s.testTypes))
	for _, t := range r.s.testTypes {
		if categoryID != "" && t.CategoryID != categoryID {
			continue
		}
		out = append(out, cloneTestType(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CatalogRepository) DeleteTestType(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.testTypes[id]; !ok {
		return false, nil
	}
	delete(r.s.testTypes, id)
	return true, nil
}
