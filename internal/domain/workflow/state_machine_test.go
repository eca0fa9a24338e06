package workflow

import (
	"errors"
	"testing"

	"lab_management/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	manager := NewCapabilities(CapabilityManager)
	nobody := NewCapabilities()
	withLines := []entities.ResultLine{{ID: "l1", ParameterID: "hb"}}

	cases := []struct {
		name    string
		result  entities.TestResult
		action  Action
		caps    Capabilities
		want    entities.ResultState
		wantErr error
	}{
		{name: "bill draft", result: entities.TestResult{State: entities.ResultStateDraft, TestIDs: []string{"cbc"}}, action: ActionSaveAndBill, want: entities.ResultStateBilled},
		{name: "bill without tests", result: entities.TestResult{State: entities.ResultStateDraft}, action: ActionSaveAndBill, wantErr: ErrNoTestsSelected},
		{name: "bill twice", result: entities.TestResult{State: entities.ResultStateBilled, TestIDs: []string{"cbc"}}, action: ActionSaveAndBill, wantErr: ErrBillNotDraft},
		{name: "start billed", result: entities.TestResult{State: entities.ResultStateBilled}, action: ActionStartTest, want: entities.ResultStateInProgress},
		{name: "start draft", result: entities.TestResult{State: entities.ResultStateDraft}, action: ActionStartTest, wantErr: ErrStartNotBilled},
		{name: "print billed", result: entities.TestResult{State: entities.ResultStateBilled, ResultLines: withLines}, action: ActionPrintResult, want: entities.ResultStateDone},
		{name: "print in progress", result: entities.TestResult{State: entities.ResultStateInProgress, ResultLines: withLines}, action: ActionPrintResult, want: entities.ResultStateDone},
		{name: "print without lines", result: entities.TestResult{State: entities.ResultStateBilled}, action: ActionPrintResult, wantErr: ErrNoResultLines},
		{name: "print draft", result: entities.TestResult{State: entities.ResultStateDraft, ResultLines: withLines}, action: ActionPrintResult, wantErr: ErrPrintNotBilled},
		{name: "manager cancels billed", result: entities.TestResult{State: entities.ResultStateBilled}, action: ActionCancelTest, caps: manager, want: entities.ResultStateCancel},
		{name: "non manager cancels", result: entities.TestResult{State: entities.ResultStateDraft}, action: ActionCancelTest, caps: nobody, wantErr: ErrCancelNotManager},
		{name: "manager cancels done", result: entities.TestResult{State: entities.ResultStateDone}, action: ActionCancelTest, caps: manager, wantErr: ErrCancelDone},
		{name: "non manager cancels done", result: entities.TestResult{State: entities.ResultStateDone}, action: ActionCancelTest, caps: nobody, wantErr: ErrCancelDone},
		{name: "reset cancelled", result: entities.TestResult{State: entities.ResultStateCancel}, action: ActionResetToDraft, want: entities.ResultStateDraft},
		{name: "reset in progress", result: entities.TestResult{State: entities.ResultStateInProgress}, action: ActionResetToDraft, want: entities.ResultStateDraft},
		{name: "reset done", result: entities.TestResult{State: entities.ResultStateDone}, action: ActionResetToDraft, wantErr: ErrResetDone},
		{name: "edit done", result: entities.TestResult{State: entities.ResultStateDone}, action: ActionEditResult, want: entities.ResultStateBilled},
		{name: "edit billed", result: entities.TestResult{State: entities.ResultStateBilled}, action: ActionEditResult, want: entities.ResultStateBilled},
		{name: "edit draft", result: entities.TestResult{State: entities.ResultStateDraft}, action: ActionEditResult, wantErr: ErrEditNotFinal},
		{name: "unknown action", result: entities.TestResult{State: entities.ResultStateDraft}, action: Action("archive"), wantErr: ErrUnknownAction},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.result
			before := r.State
			err := Transition(&r, tc.action, tc.caps)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var ve *entities.ValidationError
				assert.True(t, errors.As(err, &ve))
				assert.Equal(t, before, r.State, "state must not change on a rejected transition")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.State)
		})
	}
}

func TestTransition_UndefinedState(t *testing.T) {
	r := entities.TestResult{State: entities.ResultState("archived")}
	err := Transition(&r, ActionResetToDraft, nil)
	var ae *entities.AnomalyError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, entities.ResultState("archived"), r.State)
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" Print_Result ")
	require.NoError(t, err)
	assert.Equal(t, ActionPrintResult, a)

	_, err = ParseAction("delete")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestEnsureEditable(t *testing.T) {
	for _, s := range []entities.ResultState{entities.ResultStateDraft, entities.ResultStateBilled, entities.ResultStateInProgress} {
		assert.NoError(t, EnsureEditable(entities.TestResult{State: s}), s)
	}
	for _, s := range []entities.ResultState{entities.ResultStateDone, entities.ResultStateCancel} {
		assert.ErrorIs(t, EnsureEditable(entities.TestResult{State: s}), ErrResultFinalized, s)
	}
}
