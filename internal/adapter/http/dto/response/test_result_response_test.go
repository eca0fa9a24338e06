package response

import (
	"testing"

	"lab_management/internal/domain/entities"
)

func TestFromTestResult(t *testing.T) {
	r := entities.TestResult{
		ID:       "res-1",
		ResultNo: "LAB00007",
		State:    entities.ResultStateBilled,
		TestIDs:  []string{"cbc", "lft"},
		BillLines: []entities.BillLine{
			{ID: "bl-1", TestTypeID: "cbc", Amount: 25},
			{ID: "bl-2", TestTypeID: "lft", Amount: 40},
		},
	}

	res := FromTestResult(r)
	if res.TotalAmount != 65 {
		t.Fatalf("expected total 65, got %v", res.TotalAmount)
	}
	if res.State != "billed" || res.ResultNo != "LAB00007" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.ResultLines == nil {
		t.Fatalf("result lines must render as an empty list")
	}
}

func TestFromTestResults_Empty(t *testing.T) {
	res := FromTestResults(nil)
	if res == nil || len(res) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", res)
	}
}
