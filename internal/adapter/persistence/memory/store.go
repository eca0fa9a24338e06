// Package memory keeps every repository in process memory. It backs
// STORE_BACKEND=memory and the use case scenario tests.
package memory

import (
	"sync"

	"lab_management/internal/domain/entities"
)

// Store holds all collections behind one lock, so a result header and its
// lines always change together.
type Store struct {
	mu         sync.RWMutex
	categories map[string]entities.TestCategory
	testTypes  map[string]entities.TestType
	patients   map[string]entities.Patient
	results    map[string]entities.TestResult
	payments   map[string]entities.BillingPayment
	sequences  map[string]entities.Sequence
}

func NewStore() *Store {
	return &Store{
		categories: map[string]entities.TestCategory{},
		testTypes:  map[string]entities.TestType{},
		patients:   map[string]entities.Patient{},
		results:    map[string]entities.TestResult{},
		payments:   map[string]entities.BillingPayment{},
		sequences:  map[string]entities.Sequence{},
	}
}

func cloneTestType(t entities.TestType) entities.TestType {
	t.Parameters = append([]entities.TestParameter(nil), t.Parameters...)
	return t
}

func cloneResult(r entities.TestResult) entities.TestResult {
	r.TestIDs = append([]string(nil), r.TestIDs...)
	r.ResultLines = append([]entities.ResultLine(nil), r.ResultLines...)
	r.BillLines = append([]entities.BillLine(nil), r.BillLines...)
	return r
}
