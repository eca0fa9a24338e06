package usecase

import (
	"context"
	"errors"
	"testing"

	"lab_management/internal/domain/entities"
	"lab_management/internal/domain/workflow"
	"lab_management/internal/usecase/interfaces"
	mock_interfaces "lab_management/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	cbcType = entities.TestType{
		ID:    "cbc",
		Name:  "Complete Blood Count",
		Price: 25,
		Parameters: []entities.TestParameter{
			{ID: "hb", TestTypeID: "cbc", Name: "Hemoglobin", NormalRange: "13.0 - 17.0", Unit: "g/dL"},
			{ID: "wbc", TestTypeID: "cbc", Name: "WBC", NormalRange: "4.5 - 11.0", Unit: "10^3/uL"},
		},
	}
	lftType = entities.TestType{
		ID:         "lft",
		Name:       "Liver Function Test",
		Price:      40,
		Parameters: []entities.TestParameter{{ID: "alt", TestTypeID: "lft", Name: "ALT", NormalRange: "7 - 56", Unit: "U/L"}},
	}
	johnDoe = entities.Demographics{Name: "John Doe", Age: 40, Gender: entities.GenderMale}
)

type resultMocks struct {
	repo     *mock_interfaces.MockITestResultRepository
	catalog  *mock_interfaces.MockICatalogRepository
	patients *mock_interfaces.MockIPatientRepository
	sequence *mock_interfaces.MockISequenceGenerator
	observer *mock_interfaces.MockIResultObserver
}

func newResultUseCase(t *testing.T) (*TestResultUseCase, resultMocks) {
	ctrl := gomock.NewController(t)
	m := resultMocks{
		repo:     mock_interfaces.NewMockITestResultRepository(ctrl),
		catalog:  mock_interfaces.NewMockICatalogRepository(ctrl),
		patients: mock_interfaces.NewMockIPatientRepository(ctrl),
		sequence: mock_interfaces.NewMockISequenceGenerator(ctrl),
		observer: mock_interfaces.NewMockIResultObserver(ctrl),
	}
	m.observer.EXPECT().LinesSynced(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	uc := NewTestResultUseCase(m.repo, m.catalog, m.patients, m.sequence, "test.result", m.observer)
	return uc, m
}

func storedCBCResult(state entities.ResultState) entities.TestResult {
	return entities.TestResult{
		ID:           "res-1",
		ResultNo:     "LAB00001",
		Demographics: johnDoe,
		TestIDs:      []string{"cbc"},
		State:        state,
		Version:      3,
		ResultLines: []entities.ResultLine{
			{ID: "rl-hb", ResultID: "res-1", ParameterID: "hb", TestTypeID: "cbc", Value: "14.2"},
			{ID: "rl-wbc", ResultID: "res-1", ParameterID: "wbc", TestTypeID: "cbc"},
		},
		BillLines: []entities.BillLine{{ID: "bl-cbc", ResultID: "res-1", TestTypeID: "cbc", Amount: 25}},
	}
}

func TestTestResultUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sequence not configured", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"cbc"}).Return(map[string]entities.TestType{"cbc": cbcType}, nil)
		m.sequence.EXPECT().Next(gomock.Any(), "test.result").Return("", interfaces.ErrSequenceNotConfigured)

		_, err := uc.Create(ctx, CreateResultInput{Demographics: johnDoe, TestIDs: []string{"cbc"}})
		var ce *entities.ConfigurationError
		if !errors.As(err, &ce) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}
		if !errors.Is(err, interfaces.ErrSequenceNotConfigured) {
			t.Fatalf("expected cause to be kept, got %v", err)
		}
	})

	t.Run("unknown test consumes no number", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"nope"}).Return(map[string]entities.TestType{}, nil)

		_, err := uc.Create(ctx, CreateResultInput{Demographics: johnDoe, TestIDs: []string{"nope"}})
		if !errors.Is(err, workflow.ErrUnknownTest) {
			t.Fatalf("expected ErrUnknownTest, got %v", err)
		}
	})

	t.Run("invalid age", func(t *testing.T) {
		uc, _ := newResultUseCase(t)
		d := johnDoe
		d.Age = 151
		_, err := uc.Create(ctx, CreateResultInput{Demographics: d})
		if !errors.Is(err, ErrInvalidAgeRange) {
			t.Fatalf("expected ErrInvalidAgeRange, got %v", err)
		}
	})

	t.Run("creates draft with lines", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"cbc"}).Return(map[string]entities.TestType{"cbc": cbcType}, nil)
		m.sequence.EXPECT().Next(gomock.Any(), "test.result").Return("LAB00007", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.TestResult{})).DoAndReturn(
			func(_ context.Context, r entities.TestResult) (entities.TestResult, error) {
				if r.ID == "" || r.ResultNo != "LAB00007" || r.State != entities.ResultStateDraft {
					t.Fatalf("unexpected header: %+v", r)
				}
				if len(r.ResultLines) != 2 || len(r.BillLines) != 1 {
					t.Fatalf("expected 2 result lines and 1 bill line, got %d/%d", len(r.ResultLines), len(r.BillLines))
				}
				for _, l := range r.ResultLines {
					if l.ID == "" || l.ResultID != r.ID {
						t.Fatalf("line not ready for storage: %+v", l)
					}
				}
				if r.BillLines[0].Amount != 25 {
					t.Fatalf("expected bill amount 25, got %v", r.BillLines[0].Amount)
				}
				return r, nil
			})

		r, err := uc.Create(ctx, CreateResultInput{Demographics: johnDoe, TestIDs: []string{" cbc", "cbc"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.TotalAmount() != 25 {
			t.Fatalf("expected total 25, got %v", r.TotalAmount())
		}
		if len(r.TestIDs) != 1 {
			t.Fatalf("expected deduplicated selection, got %v", r.TestIDs)
		}
	})

	t.Run("linked patient", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.patients.EXPECT().GetByID(gomock.Any(), "pat-1").Return(entities.Patient{ID: "pat-1", Name: "Jane Roe", Age: 33, Gender: entities.GenderFemale}, nil)
		m.sequence.EXPECT().Next(gomock.Any(), "test.result").Return("LAB00008", nil)
		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.TestResult) (entities.TestResult, error) { return r, nil })

		r, err := uc.Create(ctx, CreateResultInput{PatientID: "pat-1", Demographics: johnDoe})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Demographics.Name != "Jane Roe" || r.PatientID != "pat-1" {
			t.Fatalf("expected demographics from patient, got %+v", r.Demographics)
		}
	})

	t.Run("unknown patient", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.patients.EXPECT().GetByID(gomock.Any(), "pat-x").Return(entities.Patient{}, nil)

		_, err := uc.Create(ctx, CreateResultInput{PatientID: "pat-x"})
		if !errors.Is(err, ErrPatientNotFound) {
			t.Fatalf("expected ErrPatientNotFound, got %v", err)
		}
	})
}

func TestTestResultUseCase_UpdateTests(t *testing.T) {
	ctx := context.Background()

	t.Run("finalized result", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDone), nil)

		_, err := uc.UpdateTests(ctx, "res-1", []string{"lft"})
		if !errors.Is(err, workflow.ErrResultFinalized) {
			t.Fatalf("expected ErrResultFinalized, got %v", err)
		}
	})

	t.Run("adds LFT keeping CBC values", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDraft), nil)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"cbc", "lft"}).Return(map[string]entities.TestType{"cbc": cbcType, "lft": lftType}, nil)
		m.repo.EXPECT().SaveSelection(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.TestResult, c entities.LineChanges) error {
				if len(c.ResultLines.Add) != 1 || c.ResultLines.Add[0].ParameterID != "alt" || c.ResultLines.Add[0].ID == "" {
					t.Fatalf("unexpected result line changes: %+v", c.ResultLines)
				}
				if len(c.ResultLines.Remove) != 0 || len(c.BillLines.Remove) != 0 {
					t.Fatalf("nothing should be removed: %+v", c)
				}
				if len(c.BillLines.Add) != 1 || c.BillLines.Add[0].Amount != 40 {
					t.Fatalf("unexpected bill changes: %+v", c.BillLines)
				}
				if r.Version != 3 {
					t.Fatalf("write must be conditioned on the version read, got %d", r.Version)
				}
				return nil
			})

		r, err := uc.UpdateTests(ctx, "res-1", []string{"cbc", "lft"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Version != 4 {
			t.Fatalf("expected version 4 after the write, got %d", r.Version)
		}
		if line, _ := r.ResultLineByID("rl-hb"); line.Value != "14.2" {
			t.Fatalf("entered value lost: %+v", line)
		}
		if r.TotalAmount() != 65 {
			t.Fatalf("expected total 65, got %v", r.TotalAmount())
		}
	})

	t.Run("unchanged selection writes nothing", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDraft), nil)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"cbc"}).Return(map[string]entities.TestType{"cbc": cbcType}, nil)
		m.repo.EXPECT().SaveSelection(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		r, err := uc.UpdateTests(ctx, "res-1", []string{" cbc ", "cbc"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Version != 3 || len(r.ResultLines) != 2 || r.TotalAmount() != 25 {
			t.Fatalf("expected the stored result back, got %+v", r)
		}
	})

	t.Run("concurrent change", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDraft), nil)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), gomock.Any()).Return(map[string]entities.TestType{"lft": lftType}, nil)
		m.repo.EXPECT().SaveSelection(gomock.Any(), gomock.Any(), gomock.Any()).Return(interfaces.ErrConcurrentUpdate)

		_, err := uc.UpdateTests(ctx, "res-1", []string{"lft"})
		if !errors.Is(err, ErrResultConflict) {
			t.Fatalf("expected ErrResultConflict, got %v", err)
		}
	})

	t.Run("duplicate stored lines", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		stored := storedCBCResult(entities.ResultStateDraft)
		stored.ResultLines[1].ParameterID = "hb"
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(stored, nil)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), gomock.Any()).Return(map[string]entities.TestType{"cbc": cbcType}, nil)

		_, err := uc.UpdateTests(ctx, "res-1", []string{"cbc"})
		var ae *entities.AnomalyError
		if !errors.As(err, &ae) {
			t.Fatalf("expected AnomalyError, got %v", err)
		}
	})
}

func TestTestResultUseCase_ApplyAction(t *testing.T) {
	ctx := context.Background()

	t.Run("non manager cancel", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateBilled), nil)
		m.observer.EXPECT().TransitionObserved("cancel_test", "rejected")

		_, err := uc.ApplyAction(ctx, "res-1", workflow.ActionCancelTest, workflow.NewCapabilities())
		if !errors.Is(err, workflow.ErrCancelNotManager) {
			t.Fatalf("expected ErrCancelNotManager, got %v", err)
		}
	})

	t.Run("bill draft", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDraft), nil)
		m.repo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), entities.ResultStateBilled).DoAndReturn(
			func(_ context.Context, r entities.TestResult, _ entities.ResultState) error {
				if r.State != entities.ResultStateDraft || r.Version != 3 {
					t.Fatalf("compare-and-set must use the result read, got %s v%d", r.State, r.Version)
				}
				return nil
			})
		m.observer.EXPECT().TransitionObserved("save_and_bill", "applied")

		r, err := uc.ApplyAction(ctx, "res-1", workflow.ActionSaveAndBill, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.State != entities.ResultStateBilled || r.Version != 4 {
			t.Fatalf("expected billed at version 4, got %s v%d", r.State, r.Version)
		}
	})

	t.Run("lost race", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateBilled), nil)
		m.repo.EXPECT().UpdateState(gomock.Any(), gomock.Any(), entities.ResultStateDone).Return(interfaces.ErrConcurrentUpdate)
		m.observer.EXPECT().TransitionObserved("print_result", "conflict")

		_, err := uc.ApplyAction(ctx, "res-1", workflow.ActionPrintResult, nil)
		if !errors.Is(err, ErrResultConflict) {
			t.Fatalf("expected ErrResultConflict, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-x").Return(entities.TestResult{}, nil)

		_, err := uc.ApplyAction(ctx, "res-x", workflow.ActionStartTest, nil)
		if !errors.Is(err, ErrResultNotFound) {
			t.Fatalf("expected ErrResultNotFound, got %v", err)
		}
	})
}

func TestTestResultUseCase_LineEdits(t *testing.T) {
	ctx := context.Background()

	t.Run("record values", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateBilled), nil)
		m.repo.EXPECT().UpdateResultValues(gomock.Any(), gomock.Any(), map[string]string{"rl-wbc": "6.1"}).Return(nil)

		r, err := uc.RecordValues(ctx, "res-1", map[string]string{"rl-wbc": " 6.1 "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if line, _ := r.ResultLineByID("rl-wbc"); line.Value != "6.1" {
			t.Fatalf("value not applied: %+v", line)
		}
	})

	t.Run("unknown line", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateBilled), nil)

		_, err := uc.RecordValues(ctx, "res-1", map[string]string{"rl-x": "1"})
		if !errors.Is(err, ErrResultLineNotFound) {
			t.Fatalf("expected ErrResultLineNotFound, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		uc, _ := newResultUseCase(t)
		_, err := uc.OverrideBillAmount(ctx, "res-1", "bl-cbc", -1)
		if !errors.Is(err, ErrNegativeAmount) {
			t.Fatalf("expected ErrNegativeAmount, got %v", err)
		}
	})

	t.Run("override amount", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDraft), nil)
		m.repo.EXPECT().UpdateBillLineAmount(gomock.Any(), gomock.Any(), "bl-cbc", 10.0).Return(nil)

		r, err := uc.OverrideBillAmount(ctx, "res-1", "bl-cbc", 10)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.TotalAmount() != 10 {
			t.Fatalf("expected total 10, got %v", r.TotalAmount())
		}
	})

	t.Run("amounts are stored in cents", func(t *testing.T) {
		cases := []struct {
			in   float64
			want float64
		}{
			{in: 19.999, want: 20},
			{in: 7.126, want: 7.13},
			{in: 12.5, want: 12.5},
		}
		for _, tc := range cases {
			uc, m := newResultUseCase(t)
			m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateBilled), nil)
			m.repo.EXPECT().UpdateBillLineAmount(gomock.Any(), gomock.Any(), "bl-cbc", tc.want).Return(nil)

			r, err := uc.OverrideBillAmount(ctx, "res-1", "bl-cbc", tc.in)
			if err != nil {
				t.Fatalf("unexpected error for %v: %v", tc.in, err)
			}
			if r.TotalAmount() != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, r.TotalAmount())
			}
		}
	})

	t.Run("amount beyond storable range", func(t *testing.T) {
		uc, _ := newResultUseCase(t)
		_, err := uc.OverrideBillAmount(ctx, "res-1", "bl-cbc", 1e12)
		if !errors.Is(err, ErrAmountTooLarge) {
			t.Fatalf("expected ErrAmountTooLarge, got %v", err)
		}
	})

	t.Run("demographics of linked result", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		stored := storedCBCResult(entities.ResultStateDraft)
		stored.PatientID = "pat-1"
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(stored, nil)

		_, err := uc.UpdateDemographics(ctx, "res-1", johnDoe)
		if !errors.Is(err, ErrDemographicsLinked) {
			t.Fatalf("expected ErrDemographicsLinked, got %v", err)
		}
	})

	t.Run("cancelled result is frozen", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateCancel), nil)

		_, err := uc.RecordValues(ctx, "res-1", map[string]string{"rl-hb": "1"})
		if !errors.Is(err, workflow.ErrResultFinalized) {
			t.Fatalf("expected ErrResultFinalized, got %v", err)
		}
	})
}

func TestTestResultUseCase_Preview(t *testing.T) {
	ctx := context.Background()

	t.Run("unsaved draft has no bill lines", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"cbc", "lft"}).Return(map[string]entities.TestType{"cbc": cbcType, "lft": lftType}, nil)

		r, err := uc.Preview(ctx, entities.TestResult{TestIDs: []string{"cbc", "lft"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.ResultLines) != 3 || len(r.BillLines) != 0 {
			t.Fatalf("expected 3 result lines and no bill lines, got %d/%d", len(r.ResultLines), len(r.BillLines))
		}
	})

	t.Run("stored result is not written", func(t *testing.T) {
		uc, m := newResultUseCase(t)
		m.repo.EXPECT().GetByID(gomock.Any(), "res-1").Return(storedCBCResult(entities.ResultStateDraft), nil)
		m.catalog.EXPECT().GetTestTypes(gomock.Any(), []string{"lft"}).Return(map[string]entities.TestType{"lft": lftType}, nil)

		r, err := uc.Preview(ctx, entities.TestResult{ID: "res-1", TestIDs: []string{"lft"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(r.ResultLines) != 1 || r.ResultLines[0].ParameterID != "alt" {
			t.Fatalf("unexpected preview lines: %+v", r.ResultLines)
		}
		if r.TotalAmount() != 40 {
			t.Fatalf("expected total 40, got %v", r.TotalAmount())
		}
	})
}

func TestTestResultUseCase_List(t *testing.T) {
	uc, m := newResultUseCase(t)

	_, err := uc.List(context.Background(), entities.ResultFilter{State: "archived"})
	if !errors.Is(err, ErrInvalidStateFilter) {
		t.Fatalf("expected ErrInvalidStateFilter, got %v", err)
	}

	m.repo.EXPECT().List(gomock.Any(), entities.ResultFilter{State: entities.ResultStateBilled}).Return([]entities.TestResult{storedCBCResult(entities.ResultStateBilled)}, nil)
	got, err := uc.List(context.Background(), entities.ResultFilter{State: entities.ResultStateBilled})
	if err != nil || len(got) != 1 {
		t.Fatalf("unexpected list result: %v %v", got, err)
	}
}
