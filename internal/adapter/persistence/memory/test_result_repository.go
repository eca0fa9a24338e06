package memory

import (
	"context"
	"fmt"
	"sort"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"
)

type TestResultRepository struct {
	s *Store
}

var _ interfaces.ITestResultRepository = (*TestResultRepository)(nil)

func NewTestResultRepository(s *Store) *TestResultRepository {
	return &TestResultRepository{s: s}
}

func (r *TestResultRepository) Create(_ context.Context, res entities.TestResult) (entities.TestResult, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.results[res.ID]; ok {
		return entities.TestResult{}, ErrDuplicateID
	}
	r.s.results[res.ID] = cloneResult(res)
	return res, nil
}

func (r *TestResultRepository) GetByID(_ context.Context, id string) (entities.TestResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	res, ok := r.s.results[id]
	if !ok {
		return entities.TestResult{}, nil
	}
	return cloneResult(res), nil
}

func (r *TestResultRepository) List(_ context.Context, f entities.ResultFilter) ([]entities.TestResult, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.TestResult, 0, len(r.s.results))
	for _, res := range r.s.results {
		if f.State != "" && res.State != f.State {
			continue
		}
		if f.PatientID != "" && res.PatientID != f.PatientID {
			continue
		}
		out = append(out, cloneResult(res))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResultNo > out[j].ResultNo })
	return out, nil
}

func (r *TestResultRepository) SaveSelection(_ context.Context, res entities.TestResult, changes entities.LineChanges) error {
	return r.mutate(res, func(stored *entities.TestResult) error {
		resultLines, err := replaceLines(stored.ResultLines, changes.ResultLines, func(l entities.ResultLine) string { return l.ID })
		if err != nil {
			return err
		}
		billLines, err := replaceLines(stored.BillLines, changes.BillLines, func(l entities.BillLine) string { return l.ID })
		if err != nil {
			return err
		}
		stored.TestIDs = append([]string(nil), res.TestIDs...)
		stored.ResultLines = resultLines
		stored.BillLines = billLines
		stored.UpdatedAt = res.UpdatedAt
		return nil
	})
}

func (r *TestResultRepository) UpdateResultValues(_ context.Context, res entities.TestResult, values map[string]string) error {
	return r.mutate(res, func(stored *entities.TestResult) error {
		lines := append([]entities.ResultLine(nil), stored.ResultLines...)
		found := 0
		for i := range lines {
			if v, ok := values[lines[i].ID]; ok {
				lines[i].Value = v
				found++
			}
		}
		if found != len(values) {
			return interfaces.ErrConcurrentUpdate
		}
		stored.ResultLines = lines
		return nil
	})
}

func (r *TestResultRepository) UpdateBillLineAmount(_ context.Context, res entities.TestResult, lineID string, amount float64) error {
	return r.mutate(res, func(stored *entities.TestResult) error {
		lines := append([]entities.BillLine(nil), stored.BillLines...)
		for i := range lines {
			if lines[i].ID == lineID {
				lines[i].Amount = amount
				stored.BillLines = lines
				return nil
			}
		}
		return interfaces.ErrConcurrentUpdate
	})
}

func (r *TestResultRepository) UpdateDemographics(_ context.Context, res entities.TestResult, d entities.Demographics) error {
	return r.mutate(res, func(stored *entities.TestResult) error {
		stored.Demographics = d
		return nil
	})
}

func (r *TestResultRepository) UpdateState(_ context.Context, res entities.TestResult, to entities.ResultState) error {
	return r.mutate(res, func(stored *entities.TestResult) error {
		stored.State = to
		return nil
	})
}

func (r *TestResultRepository) ReferencesTestType(_ context.Context, testTypeID string) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, res := range r.s.results {
		for _, id := range res.TestIDs {
			if id == testTypeID {
				return true, nil
			}
		}
	}
	return false, nil
}

// mutate applies fn to a copy of the stored result and keeps it only when fn
// succeeds and the stored version still matches res.Version.
func (r *TestResultRepository) mutate(res entities.TestResult, fn func(stored *entities.TestResult) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stored, ok := r.s.results[res.ID]
	if !ok || stored.Version != res.Version {
		return interfaces.ErrConcurrentUpdate
	}
	stored = cloneResult(stored)
	if err := fn(&stored); err != nil {
		return err
	}
	stored.Version++
	r.s.results[res.ID] = stored
	return nil
}

// replaceLines drops the lines named in c.Remove and appends c.Add. Removing
// a line that is not stored means another writer got there first.
func replaceLines[T any](lines []T, c entities.ChildChanges[T], id func(T) string) ([]T, error) {
	drop := make(map[string]struct{}, len(c.Remove))
	for _, lineID := range c.Remove {
		drop[lineID] = struct{}{}
	}
	out := make([]T, 0, len(lines)+len(c.Add))
	for _, l := range lines {
		if _, ok := drop[id(l)]; ok {
			delete(drop, id(l))
			continue
		}
		out = append(out, l)
	}
	if len(drop) > 0 {
		return nil, fmt.Errorf("%w: %d lines already removed", interfaces.ErrConcurrentUpdate, len(drop))
	}
	return append(out, c.Add...), nil
}
