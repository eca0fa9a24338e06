package entities

import "time"

// TestCategory groups catalog test types (haematology, biochemistry, ...).
type TestCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// TestParameter is one measurable quantity of a TestType.
//
// (Name, TestTypeID) is unique across the catalog.
type TestParameter struct {
	ID          string `json:"id"`
	TestTypeID  string `json:"test_type_id"`
	Name        string `json:"name"`
	NormalRange string `json:"normal_range"`
	Unit        string `json:"unit"`
}

// TestType is a catalog test offering. It owns its parameters: they are saved
// and deleted together with the test type, in the order they are listed.
//
// Price seeds the amount of new bill lines only; existing bill lines keep
// whatever amount they were created or overridden with.
type TestType struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	CategoryID string          `json:"category_id,omitempty"`
	Price      float64         `json:"price"`
	Parameters []TestParameter `json:"parameters"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

func (t TestType) ParameterIDs() []string {
	ids := make([]string, 0, len(t.Parameters))
	for _, p := range t.Parameters {
		ids = append(ids, p.ID)
	}
	return ids
}
