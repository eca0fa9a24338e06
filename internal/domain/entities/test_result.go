package entities

import (
	"math"
	"time"
)

// MaxAmount is the largest price or bill amount a store can hold.
const MaxAmount = 9999999999.99

// RoundCents rounds an amount half away from zero to two decimals, the
// precision prices and bill amounts are stored with.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// ResultState is the lifecycle state of a TestResult.
//
// Ordering: draft -> billed -> in_progress -> done. in_progress is optional
// (a billed result may be printed directly); cancel is reachable from every
// state except done.
type ResultState string

const (
	ResultStateDraft      ResultState = "draft"
	ResultStateBilled     ResultState = "billed"
	ResultStateInProgress ResultState = "in_progress"
	ResultStateDone       ResultState = "done"
	ResultStateCancel     ResultState = "cancel"
)

func (s ResultState) Valid() bool {
	switch s {
	case ResultStateDraft, ResultStateBilled, ResultStateInProgress, ResultStateDone, ResultStateCancel:
		return true
	}
	return false
}

// Finalized reports whether the selection, values and amounts of a result in
// this state are frozen.
func (s ResultState) Finalized() bool {
	return s == ResultStateDone || s == ResultStateCancel
}

// ResultLine holds the entered value for one test parameter. NormalRange and
// Unit are copied from the parameter when the line is created and are not
// re-synced afterwards.
//
// An empty ID marks a line that exists only in memory and was never stored.
type ResultLine struct {
	ID            string `json:"id,omitempty"`
	ResultID      string `json:"result_id,omitempty"`
	ParameterID   string `json:"parameter_id"`
	TestTypeID    string `json:"test_type_id"`
	ParameterName string `json:"parameter_name"`
	Value         string `json:"value"`
	NormalRange   string `json:"normal_range"`
	Unit          string `json:"unit"`
}

// BillLine is the billed amount for one selected test. Amount starts at the
// test price and is stored independently afterwards.
type BillLine struct {
	ID         string  `json:"id,omitempty"`
	ResultID   string  `json:"result_id,omitempty"`
	TestTypeID string  `json:"test_type_id"`
	TestName   string  `json:"test_name"`
	Amount     float64 `json:"amount"`
}

// TestResult is one lab order: a patient, the tests ordered for the visit,
// the values entered per parameter and the bill.
//
// Storage model:
//   - header: id, result_no, result_date, patient snapshot, test_ids, state
//   - children: result lines and bill lines keyed by (result id, line id)
//
// Version counts stored writes. Every write after creation is conditioned on
// the version that was read and increments it.
type TestResult struct {
	ID           string       `json:"id"`
	ResultNo     string       `json:"result_no"`
	ResultDate   time.Time    `json:"result_date"`
	PatientID    string       `json:"patient_id,omitempty"`
	Demographics Demographics `json:"demographics"`
	TestIDs      []string     `json:"test_ids"`
	ResultLines  []ResultLine `json:"result_lines"`
	BillLines    []BillLine   `json:"bill_lines"`
	State        ResultState  `json:"state"`
	Version      int64        `json:"version"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Persisted reports whether the result has a backing identifier.
func (r TestResult) Persisted() bool {
	return r.ID != ""
}

func (r TestResult) TotalAmount() float64 {
	total := 0.0
	for _, l := range r.BillLines {
		total += l.Amount
	}
	return total
}

func (r TestResult) ResultLineByID(id string) (ResultLine, bool) {
	for _, l := range r.ResultLines {
		if l.ID == id {
			return l, true
		}
	}
	return ResultLine{}, false
}

func (r TestResult) BillLineByID(id string) (BillLine, bool) {
	for _, l := range r.BillLines {
		if l.ID == id {
			return l, true
		}
	}
	return BillLine{}, false
}

// ChildChanges is one atomic replace on a child collection: Add holds new
// lines, Remove the ids of stored lines to delete.
type ChildChanges[T any] struct {
	Add    []T
	Remove []string
}

// LineChanges groups the child replaces produced by one synchronization.
type LineChanges struct {
	ResultLines ChildChanges[ResultLine]
	BillLines   ChildChanges[BillLine]
}

// ResultFilter narrows result listings. Zero fields match everything.
type ResultFilter struct {
	State     ResultState
	PatientID string
}
