// Package workflow holds the two pieces of result business logic that do not
// depend on storage: reconciling result and bill lines with the selected
// tests, and the result state machine.
package workflow

import (
	"fmt"

	"lab_management/internal/domain/entities"
)

const (
	CollectionResultLines = "result_line_ids"
	CollectionBillLines   = "bill_line_ids"
)

// ErrUnknownTest is returned when a selected test id is missing from the
// catalog handed to the synchronizer.
var ErrUnknownTest = entities.NewValidationError("selected test does not exist in the catalog")

// Catalog resolves selected test ids to their catalog entries (price and
// ordered parameters with range and unit).
type Catalog map[string]entities.TestType

func NewCatalog(types ...entities.TestType) Catalog {
	c := make(Catalog, len(types))
	for _, t := range types {
		c[t.ID] = t
	}
	return c
}

// LineDelta is the add/remove set for one child collection. Remove holds the
// lines being dropped, stored or not.
type LineDelta[T any] struct {
	Add    []T
	Remove []T
}

func (d LineDelta[T]) Empty() bool {
	return len(d.Add) == 0 && len(d.Remove) == 0
}

// Delta is the outcome of planning a synchronization.
//
// BillLinesSkipped is set when the result had no backing identifier: bill
// lines are only reconciled once the result has been stored.
type Delta struct {
	ResultLines      LineDelta[entities.ResultLine]
	BillLines        LineDelta[entities.BillLine]
	BillLinesSkipped bool
}

func (d Delta) Empty() bool {
	return d.ResultLines.Empty() && d.BillLines.Empty()
}

// Changes converts the delta into the store-facing replace operations. Lines
// without an id were never stored and are discarded instead of deleted.
func (d Delta) Changes() entities.LineChanges {
	var c entities.LineChanges
	c.ResultLines.Add = append(c.ResultLines.Add, d.ResultLines.Add...)
	for _, l := range d.ResultLines.Remove {
		if l.ID != "" {
			c.ResultLines.Remove = append(c.ResultLines.Remove, l.ID)
		}
	}
	c.BillLines.Add = append(c.BillLines.Add, d.BillLines.Add...)
	for _, l := range d.BillLines.Remove {
		if l.ID != "" {
			c.BillLines.Remove = append(c.BillLines.Remove, l.ID)
		}
	}
	return c
}

// Plan computes the minimal delta that makes r's result and bill lines match
// r.TestIDs. It never modifies r.
//
// Surviving lines are not part of the delta, so their entered values and
// overridden amounts are kept as they are.
func Plan(r entities.TestResult, catalog Catalog) (Delta, error) {
	tests, err := selectedTests(r.TestIDs, catalog)
	if err != nil {
		return Delta{}, err
	}
	if err := checkResultLines(r.ResultLines); err != nil {
		return Delta{}, err
	}

	var d Delta
	d.ResultLines = planResultLines(r, tests)

	if !r.Persisted() {
		d.BillLinesSkipped = true
		return d, nil
	}
	if err := checkBillLines(r.BillLines); err != nil {
		return Delta{}, err
	}
	d.BillLines = planBillLines(r, tests)
	return d, nil
}

// Apply replays the delta on r in memory: removed lines are dropped and added
// lines appended in selection order. Remaining lines keep their position.
func (d Delta) Apply(r *entities.TestResult) {
	if len(d.ResultLines.Remove) > 0 {
		drop := make(map[string]struct{}, len(d.ResultLines.Remove))
		for _, l := range d.ResultLines.Remove {
			drop[l.ParameterID] = struct{}{}
		}
		kept := make([]entities.ResultLine, 0, len(r.ResultLines))
		for _, l := range r.ResultLines {
			if _, ok := drop[l.ParameterID]; !ok {
				kept = append(kept, l)
			}
		}
		r.ResultLines = kept
	}
	r.ResultLines = append(r.ResultLines, d.ResultLines.Add...)

	if d.BillLinesSkipped {
		return
	}
	if len(d.BillLines.Remove) > 0 {
		drop := make(map[string]struct{}, len(d.BillLines.Remove))
		for _, l := range d.BillLines.Remove {
			drop[l.TestTypeID] = struct{}{}
		}
		kept := make([]entities.BillLine, 0, len(r.BillLines))
		for _, l := range r.BillLines {
			if _, ok := drop[l.TestTypeID]; !ok {
				kept = append(kept, l)
			}
		}
		r.BillLines = kept
	}
	r.BillLines = append(r.BillLines, d.BillLines.Add...)
}

// Synchronize plans and applies the delta on r. On error r is untouched.
func Synchronize(r *entities.TestResult, catalog Catalog) (Delta, error) {
	d, err := Plan(*r, catalog)
	if err != nil {
		return Delta{}, err
	}
	d.Apply(r)
	return d, nil
}

// selectedTests resolves test ids in selection order, dropping repeats.
func selectedTests(ids []string, catalog Catalog) ([]entities.TestType, error) {
	seen := make(map[string]struct{}, len(ids))
	tests := make([]entities.TestType, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		t, ok := catalog[id]
		if !ok {
			return nil, fmt.Errorf("test %q: %w", id, ErrUnknownTest)
		}
		tests = append(tests, t)
	}
	return tests, nil
}

func checkResultLines(lines []entities.ResultLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.ParameterID == "" {
			return &entities.AnomalyError{Collection: CollectionResultLines, Key: l.ID, Reason: "line references no parameter"}
		}
		if _, ok := seen[l.ParameterID]; ok {
			return &entities.AnomalyError{Collection: CollectionResultLines, Key: l.ParameterID, Reason: "several lines reference the same parameter"}
		}
		seen[l.ParameterID] = struct{}{}
	}
	return nil
}

func checkBillLines(lines []entities.BillLine) error {
	seen := make(map[string]struct{}, len(lines))
	for _, l := range lines {
		if l.TestTypeID == "" {
			return &entities.AnomalyError{Collection: CollectionBillLines, Key: l.ID, Reason: "line references no test"}
		}
		if _, ok := seen[l.TestTypeID]; ok {
			return &entities.AnomalyError{Collection: CollectionBillLines, Key: l.TestTypeID, Reason: "several lines reference the same test"}
		}
		seen[l.TestTypeID] = struct{}{}
	}
	return nil
}

func planResultLines(r entities.TestResult, tests []entities.TestType) LineDelta[entities.ResultLine] {
	wanted := make(map[string]struct{})
	var add []entities.ResultLine

	existing := make(map[string]struct{}, len(r.ResultLines))
	for _, l := range r.ResultLines {
		existing[l.ParameterID] = struct{}{}
	}

	for _, t := range tests {
		for _, p := range t.Parameters {
			if _, dup := wanted[p.ID]; dup {
				continue
			}
			wanted[p.ID] = struct{}{}
			if _, ok := existing[p.ID]; ok {
				continue
			}
			add = append(add, entities.ResultLine{
				ResultID:      r.ID,
				ParameterID:   p.ID,
				TestTypeID:    t.ID,
				ParameterName: p.Name,
				NormalRange:   p.NormalRange,
				Unit:          p.Unit,
			})
		}
	}

	var remove []entities.ResultLine
	for _, l := range r.ResultLines {
		if _, ok := wanted[l.ParameterID]; !ok {
			remove = append(remove, l)
		}
	}
	return LineDelta[entities.ResultLine]{Add: add, Remove: remove}
}

func planBillLines(r entities.TestResult, tests []entities.TestType) LineDelta[entities.BillLine] {
	existing := make(map[string]struct{}, len(r.BillLines))
	for _, l := range r.BillLines {
		existing[l.TestTypeID] = struct{}{}
	}

	wanted := make(map[string]struct{}, len(tests))
	var add []entities.BillLine
	for _, t := range tests {
		wanted[t.ID] = struct{}{}
		if _, ok := existing[t.ID]; ok {
			continue
		}
		add = append(add, entities.BillLine{
			ResultID:   r.ID,
			TestTypeID: t.ID,
			TestName:   t.Name,
			Amount:     t.Price,
		})
	}

	var remove []entities.BillLine
	for _, l := range r.BillLines {
		if _, ok := wanted[l.TestTypeID]; !ok {
			remove = append(remove, l)
		}
	}
	return LineDelta[entities.BillLine]{Add: add, Remove: remove}
}
