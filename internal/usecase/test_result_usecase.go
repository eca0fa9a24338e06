package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"lab_management/internal/domain/entities"
	"lab_management/internal/domain/workflow"
	"lab_management/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const componentResult = "result.usecase"

var (
	ErrResultNotFound     = errors.New("test result not found")
	ErrResultLineNotFound = errors.New("result line not found")
	ErrBillLineNotFound   = errors.New("bill line not found")
	ErrResultConflict     = errors.New("result was changed by another request")

	ErrNegativeAmount     = entities.NewValidationError("bill amount cannot be negative")
	ErrAmountTooLarge     = entities.NewValidationError("bill amount is too large")
	ErrNoValues           = entities.NewValidationError("no result values given")
	ErrDemographicsLinked = entities.NewValidationError("patient details come from the linked patient record")
	ErrInvalidStateFilter = entities.NewValidationError("unknown result state")
)

// CreateResultInput is what a lab clerk fills in to open a result. When
// PatientID is set the demographics are taken from the patient record and
// Demographics is ignored.
type CreateResultInput struct {
	PatientID    string
	Demographics entities.Demographics
	TestIDs      []string
	ResultDate   time.Time
}

// ITestResultUseCase drives the result aggregate: test selection with line
// synchronization, value entry, bill overrides and state transitions.
type ITestResultUseCase interface {
	Create(ctx context.Context, in CreateResultInput) (entities.TestResult, error)
	// Preview returns draft synchronized against the catalog without storing
	// anything. A draft with an id is previewed against the stored lines.
	Preview(ctx context.Context, draft entities.TestResult) (entities.TestResult, error)
	UpdateTests(ctx context.Context, id string, testIDs []string) (entities.TestResult, error)
	RecordValues(ctx context.Context, id string, values map[string]string) (entities.TestResult, error)
	OverrideBillAmount(ctx context.Context, id, lineID string, amount float64) (entities.TestResult, error)
	UpdateDemographics(ctx context.Context, id string, d entities.Demographics) (entities.TestResult, error)
	ApplyAction(ctx context.Context, id string, action workflow.Action, caps workflow.Capabilities) (entities.TestResult, error)
	GetByID(ctx context.Context, id string) (entities.TestResult, error)
	List(ctx context.Context, f entities.ResultFilter) ([]entities.TestResult, error)
}

type TestResultUseCase struct {
	repo         interfaces.ITestResultRepository
	catalog      interfaces.ICatalogRepository
	patients     interfaces.IPatientRepository
	sequence     interfaces.ISequenceGenerator
	sequenceName string
	observer     interfaces.IResultObserver
}

var _ ITestResultUseCase = (*TestResultUseCase)(nil)

func NewTestResultUseCase(
	repo interfaces.ITestResultRepository,
	catalog interfaces.ICatalogRepository,
	patients interfaces.IPatientRepository,
	sequence interfaces.ISequenceGenerator,
	sequenceName string,
	observer interfaces.IResultObserver,
) *TestResultUseCase {
	if observer == nil {
		observer = nopObserver{}
	}
	return &TestResultUseCase{
		repo:         repo,
		catalog:      catalog,
		patients:     patients,
		sequence:     sequence,
		sequenceName: sequenceName,
		observer:     observer,
	}
}

func (u *TestResultUseCase) Create(ctx context.Context, in CreateResultInput) (entities.TestResult, error) {
	r := entities.TestResult{
		PatientID: strings.TrimSpace(in.PatientID),
		TestIDs:   uniqueIDs(in.TestIDs),
		State:     entities.ResultStateDraft,
	}

	if r.PatientID != "" {
		p, err := u.patients.GetByID(ctx, r.PatientID)
		if err != nil {
			return entities.TestResult{}, err
		}
		if p.ID == "" {
			return entities.TestResult{}, ErrPatientNotFound
		}
		r.Demographics = p.Demographics()
	} else {
		d, err := normalizeDemographics(in.Demographics)
		if err != nil {
			return entities.TestResult{}, err
		}
		r.Demographics = d
	}

	catalog, err := lookupTestTypes(ctx, u.catalog, r.TestIDs)
	if err != nil {
		return entities.TestResult{}, err
	}

	resultNo, err := u.nextResultNo(ctx)
	if err != nil {
		return entities.TestResult{}, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.ResultNo = resultNo
	r.ResultDate = in.ResultDate
	if r.ResultDate.IsZero() {
		r.ResultDate = now
	}
	r.CreatedAt = now
	r.UpdatedAt = now

	d, err := workflow.Plan(r, catalog)
	if err != nil {
		return entities.TestResult{}, err
	}
	assignLineIDs(&d)
	d.Apply(&r)

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Error().Err(err).Str("component", componentResult).Str("result_no", resultNo).Msg("create result failed")
		return entities.TestResult{}, err
	}
	u.observeDelta(d)
	log.Info().Str("component", componentResult).Str("result_id", created.ID).Str("result_no", created.ResultNo).
		Int("tests", len(created.TestIDs)).Int("result_lines", len(created.ResultLines)).Msg("result created")
	return created, nil
}

func (u *TestResultUseCase) Preview(ctx context.Context, draft entities.TestResult) (entities.TestResult, error) {
	r := draft
	r.TestIDs = uniqueIDs(draft.TestIDs)
	if id := strings.TrimSpace(draft.ID); id != "" {
		stored, err := u.GetByID(ctx, id)
		if err != nil {
			return entities.TestResult{}, err
		}
		if err := workflow.EnsureEditable(stored); err != nil {
			return entities.TestResult{}, err
		}
		stored.TestIDs = r.TestIDs
		r = stored
	}

	catalog, err := lookupTestTypes(ctx, u.catalog, r.TestIDs)
	if err != nil {
		return entities.TestResult{}, err
	}
	if _, err := workflow.Synchronize(&r, catalog); err != nil {
		return entities.TestResult{}, err
	}
	return r, nil
}

// UpdateTests changes the selection and stores the header together with the
// line delta in one atomic write. Saving the stored selection again writes
// nothing.
func (u *TestResultUseCase) UpdateTests(ctx context.Context, id string, testIDs []string) (entities.TestResult, error) {
	r, err := u.loadEditable(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}
	selected := slices.Clone(r.TestIDs)
	r.TestIDs = uniqueIDs(testIDs)

	catalog, err := lookupTestTypes(ctx, u.catalog, r.TestIDs)
	if err != nil {
		return entities.TestResult{}, err
	}
	d, err := workflow.Plan(r, catalog)
	if err != nil {
		log.Warn().Err(err).Str("component", componentResult).Str("result_id", r.ID).Msg("line synchronization rejected")
		return entities.TestResult{}, err
	}
	if d.Empty() && slices.Equal(selected, r.TestIDs) {
		log.Debug().Str("component", componentResult).Str("result_id", r.ID).Msg("test selection unchanged")
		return r, nil
	}
	assignLineIDs(&d)
	d.Apply(&r)
	r.UpdatedAt = time.Now().UTC()

	if err := u.repo.SaveSelection(ctx, r, d.Changes()); err != nil {
		return entities.TestResult{}, u.storeError(err, r.ID)
	}
	r.Version++
	u.observeDelta(d)
	log.Info().Str("component", componentResult).Str("result_id", r.ID).
		Int("result_lines_added", len(d.ResultLines.Add)).Int("result_lines_removed", len(d.ResultLines.Remove)).
		Int("bill_lines_added", len(d.BillLines.Add)).Int("bill_lines_removed", len(d.BillLines.Remove)).
		Msg("test selection saved")
	return r, nil
}

// RecordValues stores entered values keyed by result line id.
func (u *TestResultUseCase) RecordValues(ctx context.Context, id string, values map[string]string) (entities.TestResult, error) {
	if len(values) == 0 {
		return entities.TestResult{}, ErrNoValues
	}
	r, err := u.loadEditable(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}

	clean := make(map[string]string, len(values))
	for lineID, v := range values {
		if _, ok := r.ResultLineByID(lineID); !ok {
			return entities.TestResult{}, fmt.Errorf("line %q: %w", lineID, ErrResultLineNotFound)
		}
		clean[lineID] = strings.TrimSpace(v)
	}

	if err := u.repo.UpdateResultValues(ctx, r, clean); err != nil {
		return entities.TestResult{}, u.storeError(err, r.ID)
	}
	r.Version++
	for i := range r.ResultLines {
		if v, ok := clean[r.ResultLines[i].ID]; ok {
			r.ResultLines[i].Value = v
		}
	}
	return r, nil
}

// OverrideBillAmount replaces the billed amount of one line. Amounts are
// kept in cents, so the value is rounded to two decimals before it is stored.
func (u *TestResultUseCase) OverrideBillAmount(ctx context.Context, id, lineID string, amount float64) (entities.TestResult, error) {
	if amount < 0 {
		return entities.TestResult{}, ErrNegativeAmount
	}
	if amount > entities.MaxAmount {
		return entities.TestResult{}, ErrAmountTooLarge
	}
	amount = entities.RoundCents(amount)
	r, err := u.loadEditable(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}
	if _, ok := r.BillLineByID(lineID); !ok {
		return entities.TestResult{}, fmt.Errorf("line %q: %w", lineID, ErrBillLineNotFound)
	}

	if err := u.repo.UpdateBillLineAmount(ctx, r, lineID, amount); err != nil {
		return entities.TestResult{}, u.storeError(err, r.ID)
	}
	r.Version++
	for i := range r.BillLines {
		if r.BillLines[i].ID == lineID {
			r.BillLines[i].Amount = amount
		}
	}
	log.Info().Str("component", componentResult).Str("result_id", r.ID).Str("bill_line_id", lineID).Float64("amount", amount).Msg("bill amount overridden")
	return r, nil
}

func (u *TestResultUseCase) UpdateDemographics(ctx context.Context, id string, d entities.Demographics) (entities.TestResult, error) {
	r, err := u.loadEditable(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}
	if r.PatientID != "" {
		return entities.TestResult{}, ErrDemographicsLinked
	}
	d, err = normalizeDemographics(d)
	if err != nil {
		return entities.TestResult{}, err
	}

	if err := u.repo.UpdateDemographics(ctx, r, d); err != nil {
		return entities.TestResult{}, u.storeError(err, r.ID)
	}
	r.Version++
	r.Demographics = d
	return r, nil
}

// ApplyAction runs one state machine action. The new state is stored only if
// nobody changed the result since it was read.
func (u *TestResultUseCase) ApplyAction(ctx context.Context, id string, action workflow.Action, caps workflow.Capabilities) (entities.TestResult, error) {
	loaded, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}

	r := loaded
	if err := workflow.Transition(&r, action, caps); err != nil {
		u.observer.TransitionObserved(string(action), "rejected")
		log.Info().Err(err).Str("component", componentResult).Str("result_id", loaded.ID).
			Str("action", string(action)).Str("state", string(loaded.State)).Msg("transition rejected")
		return entities.TestResult{}, err
	}

	if err := u.repo.UpdateState(ctx, loaded, r.State); err != nil {
		if errors.Is(err, interfaces.ErrConcurrentUpdate) {
			u.observer.TransitionObserved(string(action), "conflict")
		}
		return entities.TestResult{}, u.storeError(err, loaded.ID)
	}
	r.Version++
	u.observer.TransitionObserved(string(action), "applied")
	log.Info().Str("component", componentResult).Str("result_id", r.ID).Str("action", string(action)).
		Str("from", string(loaded.State)).Str("to", string(r.State)).Msg("transition applied")
	return r, nil
}

func (u *TestResultUseCase) GetByID(ctx context.Context, id string) (entities.TestResult, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TestResult{}, ErrResultNotFound
	}
	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}
	if r.ID == "" {
		return entities.TestResult{}, ErrResultNotFound
	}
	return r, nil
}

func (u *TestResultUseCase) List(ctx context.Context, f entities.ResultFilter) ([]entities.TestResult, error) {
	f.PatientID = strings.TrimSpace(f.PatientID)
	if f.State != "" && !f.State.Valid() {
		return nil, ErrInvalidStateFilter
	}
	return u.repo.List(ctx, f)
}

func (u *TestResultUseCase) loadEditable(ctx context.Context, id string) (entities.TestResult, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.TestResult{}, err
	}
	if err := workflow.EnsureEditable(r); err != nil {
		return entities.TestResult{}, err
	}
	return r, nil
}

func (u *TestResultUseCase) nextResultNo(ctx context.Context) (string, error) {
	if u.sequence == nil {
		return "", entities.NewConfigurationError("result number sequence is not configured", nil)
	}
	no, err := u.sequence.Next(ctx, u.sequenceName)
	if err != nil {
		log.Error().Err(err).Str("component", componentResult).Str("sequence", u.sequenceName).Msg("result number not issued")
		return "", entities.NewConfigurationError(fmt.Sprintf("result number sequence %q unavailable", u.sequenceName), err)
	}
	if strings.TrimSpace(no) == "" {
		return "", entities.NewConfigurationError(fmt.Sprintf("result number sequence %q returned an empty number", u.sequenceName), nil)
	}
	return no, nil
}

func (u *TestResultUseCase) storeError(err error, resultID string) error {
	if errors.Is(err, interfaces.ErrConcurrentUpdate) {
		log.Warn().Str("component", componentResult).Str("result_id", resultID).Msg("concurrent result update")
		return fmt.Errorf("%w: %v", ErrResultConflict, err)
	}
	log.Error().Err(err).Str("component", componentResult).Str("result_id", resultID).Msg("result write failed")
	return err
}

func (u *TestResultUseCase) observeDelta(d workflow.Delta) {
	u.observer.LinesSynced(workflow.CollectionResultLines, "add", len(d.ResultLines.Add))
	u.observer.LinesSynced(workflow.CollectionResultLines, "remove", len(d.ResultLines.Remove))
	u.observer.LinesSynced(workflow.CollectionBillLines, "add", len(d.BillLines.Add))
	u.observer.LinesSynced(workflow.CollectionBillLines, "remove", len(d.BillLines.Remove))
}

// assignLineIDs gives every line the delta adds a storage id.
func assignLineIDs(d *workflow.Delta) {
	for i := range d.ResultLines.Add {
		d.ResultLines.Add[i].ID = uuid.NewString()
	}
	for i := range d.BillLines.Add {
		d.BillLines.Add[i].ID = uuid.NewString()
	}
}

// uniqueIDs trims ids and drops blanks and repeats, keeping first-seen order.
func uniqueIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func lookupTestTypes(ctx context.Context, repo interfaces.ICatalogRepository, ids []string) (workflow.Catalog, error) {
	if len(ids) == 0 {
		return workflow.Catalog{}, nil
	}
	found, err := repo.GetTestTypes(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, fmt.Errorf("test %q: %w", id, workflow.ErrUnknownTest)
		}
	}
	return workflow.Catalog(found), nil
}

type nopObserver struct{}

func (nopObserver) TransitionObserved(string, string) {}
func (nopObserver) LinesSynced(string, string, int)   {}
