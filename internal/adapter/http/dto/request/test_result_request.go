package request

import (
	"time"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase"
)

// CreateResultRequest opens a result either for a registered patient
// (patient_id) or for demographics typed in on the spot.
type CreateResultRequest struct {
	PatientID  string               `json:"patient_id"`
	Patient    *DemographicsRequest `json:"patient"`
	TestIDs    []string             `json:"test_ids"`
	ResultDate *time.Time           `json:"result_date"`
}

func (r CreateResultRequest) ToInput() usecase.CreateResultInput {
	in := usecase.CreateResultInput{
		PatientID: r.PatientID,
		TestIDs:   r.TestIDs,
	}
	if r.Patient != nil {
		in.Demographics = r.Patient.ToEntity()
	}
	if r.ResultDate != nil {
		in.ResultDate = *r.ResultDate
	}
	return in
}

// PreviewResultRequest shows the lines and bill a selection would produce.
// With an id, the stored result is previewed with the new selection.
type PreviewResultRequest struct {
	ID      string               `json:"id"`
	Patient *DemographicsRequest `json:"patient"`
	TestIDs []string             `json:"test_ids"`
}

func (r PreviewResultRequest) ToEntity() entities.TestResult {
	res := entities.TestResult{
		ID:      r.ID,
		TestIDs: r.TestIDs,
		State:   entities.ResultStateDraft,
	}
	if r.Patient != nil {
		res.Demographics = r.Patient.ToEntity()
	}
	return res
}

type UpdateTestsRequest struct {
	TestIDs []string `json:"test_ids" binding:"required"`
}

// RecordValuesRequest maps result line ids to the entered values.
type RecordValuesRequest struct {
	Values map[string]string `json:"values" binding:"required"`
}

type BillLineAmountRequest struct {
	Amount *float64 `json:"amount" binding:"required"`
}
