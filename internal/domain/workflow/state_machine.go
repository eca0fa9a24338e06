package workflow

import (
	"strings"

	"lab_management/internal/domain/entities"
)

// Action is a user-triggered result transition.
type Action string

const (
	ActionSaveAndBill  Action = "save_and_bill"
	ActionStartTest    Action = "start_test"
	ActionPrintResult  Action = "print_result"
	ActionCancelTest   Action = "cancel_test"
	ActionResetToDraft Action = "reset_to_draft"
	ActionEditResult   Action = "edit_result"
)

// Capability is something a caller is allowed to do beyond the default.
type Capability string

const CapabilityManager Capability = "lab.manager"

type Capabilities map[Capability]struct{}

func NewCapabilities(caps ...Capability) Capabilities {
	c := make(Capabilities, len(caps))
	for _, cp := range caps {
		c[cp] = struct{}{}
	}
	return c
}

func (c Capabilities) Has(cp Capability) bool {
	_, ok := c[cp]
	return ok
}

var (
	ErrNoTestsSelected  = entities.NewValidationError("select at least one test")
	ErrNoResultLines    = entities.NewValidationError("enter result lines")
	ErrCancelDone       = entities.NewValidationError("cannot cancel a done test")
	ErrCancelNotManager = entities.NewValidationError("only a manager may cancel")
	ErrResetDone        = entities.NewValidationError("cannot reset a done test")
	ErrBillNotDraft     = entities.NewValidationError("only draft results can be billed")
	ErrStartNotBilled   = entities.NewValidationError("only billed results can be started")
	ErrPrintNotBilled   = entities.NewValidationError("only billed or in progress results can be printed")
	ErrEditNotFinal     = entities.NewValidationError("only done or billed results can be edited")
	ErrUnknownAction    = entities.NewValidationError("unknown action")
	ErrResultFinalized  = entities.NewValidationError("result is done or cancelled; edit it before changing it")
)

type transition struct {
	to    entities.ResultState
	guard func(r entities.TestResult, caps Capabilities) error
}

var transitions = map[Action]transition{
	ActionSaveAndBill: {
		to: entities.ResultStateBilled,
		guard: func(r entities.TestResult, _ Capabilities) error {
			if r.State != entities.ResultStateDraft {
				return ErrBillNotDraft
			}
			if len(r.TestIDs) == 0 {
				return ErrNoTestsSelected
			}
			return nil
		},
	},
	ActionStartTest: {
		to: entities.ResultStateInProgress,
		guard: func(r entities.TestResult, _ Capabilities) error {
			if r.State != entities.ResultStateBilled {
				return ErrStartNotBilled
			}
			return nil
		},
	},
	ActionPrintResult: {
		to: entities.ResultStateDone,
		guard: func(r entities.TestResult, _ Capabilities) error {
			if r.State != entities.ResultStateBilled && r.State != entities.ResultStateInProgress {
				return ErrPrintNotBilled
			}
			if len(r.ResultLines) == 0 {
				return ErrNoResultLines
			}
			return nil
		},
	},
	ActionCancelTest: {
		to: entities.ResultStateCancel,
		guard: func(r entities.TestResult, caps Capabilities) error {
			// done is checked first: it fails regardless of the caller.
			if r.State == entities.ResultStateDone {
				return ErrCancelDone
			}
			if !caps.Has(CapabilityManager) {
				return ErrCancelNotManager
			}
			return nil
		},
	},
	ActionResetToDraft: {
		to: entities.ResultStateDraft,
		guard: func(r entities.TestResult, _ Capabilities) error {
			if r.State == entities.ResultStateDone {
				return ErrResetDone
			}
			return nil
		},
	},
	ActionEditResult: {
		to: entities.ResultStateBilled,
		guard: func(r entities.TestResult, _ Capabilities) error {
			if r.State != entities.ResultStateDone && r.State != entities.ResultStateBilled {
				return ErrEditNotFinal
			}
			return nil
		},
	},
}

// ParseAction maps an action name to an Action.
func ParseAction(name string) (Action, error) {
	a := Action(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := transitions[a]; !ok {
		return "", ErrUnknownAction
	}
	return a, nil
}

// Next returns the state r moves to under action, without changing r.
func Next(r entities.TestResult, action Action, caps Capabilities) (entities.ResultState, error) {
	if !r.State.Valid() {
		return "", &entities.AnomalyError{Collection: "state", Key: string(r.State), Reason: "result is in an undefined state"}
	}
	t, ok := transitions[action]
	if !ok {
		return "", ErrUnknownAction
	}
	if err := t.guard(r, caps); err != nil {
		return "", err
	}
	return t.to, nil
}

// Transition applies action to r. r.State changes only when every guard
// passes.
func Transition(r *entities.TestResult, action Action, caps Capabilities) error {
	to, err := Next(*r, action, caps)
	if err != nil {
		return err
	}
	r.State = to
	return nil
}

// EnsureEditable rejects changes to the selection, values or amounts of a
// finalized result.
func EnsureEditable(r entities.TestResult) error {
	if r.State.Finalized() {
		return ErrResultFinalized
	}
	return nil
}
