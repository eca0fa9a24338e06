package interfaces

import (
	"context"
	"errors"

	"lab_management/internal/domain/entities"
)

// ErrConcurrentUpdate is returned by conditional result writes when the
// stored version no longer matches the version the caller read.
var ErrConcurrentUpdate = errors.New("result was modified concurrently")

// ITestResultRepository persists the result aggregate: the header and its
// two line collections.
//
// Every mutator receives the result as the caller loaded it and only writes
// while the stored version still equals r.Version; otherwise it returns
// ErrConcurrentUpdate and writes nothing. A successful write stores
// r.Version+1.
type ITestResultRepository interface {
	// Create stores the header and all of its lines in one atomic write.
	Create(ctx context.Context, r entities.TestResult) (entities.TestResult, error)
	// GetByID returns the result with both line collections, or a zero
	// result when id is unknown.
	GetByID(ctx context.Context, id string) (entities.TestResult, error)
	List(ctx context.Context, f entities.ResultFilter) ([]entities.TestResult, error)

	// SaveSelection stores r.TestIDs and applies changes to the line
	// collections in one atomic write.
	SaveSelection(ctx context.Context, r entities.TestResult, changes entities.LineChanges) error
	UpdateResultValues(ctx context.Context, r entities.TestResult, values map[string]string) error
	UpdateBillLineAmount(ctx context.Context, r entities.TestResult, lineID string, amount float64) error
	UpdateDemographics(ctx context.Context, r entities.TestResult, d entities.Demographics) error
	UpdateState(ctx context.Context, r entities.TestResult, to entities.ResultState) error

	// ReferencesTestType reports whether any result still selects the test.
	ReferencesTestType(ctx context.Context, testTypeID string) (bool, error)
}
