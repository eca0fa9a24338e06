package request

import (
	"strings"

	"lab_management/internal/domain/entities"
)

type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (r CategoryRequest) ToEntity() entities.TestCategory {
	return entities.TestCategory{
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
	}
}

// TestParameterRequest carries the parameter id back on updates so lines
// already pointing at the parameter stay attached.
type TestParameterRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name" binding:"required"`
	NormalRange string `json:"normal_range" binding:"required"`
	Unit        string `json:"unit"`
}

type TestTypeRequest struct {
	Name       string                 `json:"name" binding:"required"`
	CategoryID string                 `json:"category_id"`
	Price      float64                `json:"price"`
	Parameters []TestParameterRequest `json:"parameters" binding:"dive"`
}

func (r TestTypeRequest) ToEntity(id string) entities.TestType {
	params := make([]entities.TestParameter, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		params = append(params, entities.TestParameter{
			ID:          strings.TrimSpace(p.ID),
			TestTypeID:  id,
			Name:        p.Name,
			NormalRange: p.NormalRange,
			Unit:        p.Unit,
		})
	}
	return entities.TestType{
		ID:         id,
		Name:       r.Name,
		CategoryID: strings.TrimSpace(r.CategoryID),
		Price:      r.Price,
		Parameters: params,
	}
}
