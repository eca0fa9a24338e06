package response

import (
	"time"

	"lab_management/internal/domain/entities"
)

// TestResultResponse is a result with its derived bill total.
type TestResultResponse struct {
	ID          string                `json:"id"`
	ResultNo    string                `json:"result_no"`
	ResultDate  time.Time             `json:"result_date"`
	PatientID   string                `json:"patient_id,omitempty"`
	Patient     entities.Demographics `json:"patient"`
	TestIDs     []string              `json:"test_ids"`
	State       string                `json:"state"`
	ResultLines []entities.ResultLine `json:"result_lines"`
	BillLines   []entities.BillLine   `json:"bill_lines"`
	TotalAmount float64               `json:"total_amount"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func FromTestResult(r entities.TestResult) TestResultResponse {
	out := TestResultResponse{
		ID:          r.ID,
		ResultNo:    r.ResultNo,
		ResultDate:  r.ResultDate,
		PatientID:   r.PatientID,
		Patient:     r.Demographics,
		TestIDs:     r.TestIDs,
		State:       string(r.State),
		ResultLines: r.ResultLines,
		BillLines:   r.BillLines,
		TotalAmount: r.TotalAmount(),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if out.TestIDs == nil {
		out.TestIDs = []string{}
	}
	if out.ResultLines == nil {
		out.ResultLines = []entities.ResultLine{}
	}
	if out.BillLines == nil {
		out.BillLines = []entities.BillLine{}
	}
	return out
}

func FromTestResults(list []entities.TestResult) []TestResultResponse {
	out := make([]TestResultResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromTestResult(r))
	}
	return out
}
