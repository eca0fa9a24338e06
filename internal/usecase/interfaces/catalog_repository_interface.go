package interfaces

import (
	"context"

	"lab_management/internal/domain/entities"
)

// ICatalogRepository stores test categories and test types. A test type is
// stored together with its parameters.
//
// Getters return a zero entity when the id is unknown. GetTestTypes omits
// unknown ids from the returned map.
type ICatalogRepository interface {
	CreateCategory(ctx context.Context, c entities.TestCategory) (entities.TestCategory, error)
	GetCategory(ctx context.Context, id string) (entities.TestCategory, error)
	ListCategories(ctx context.Context) ([]entities.TestCategory, error)

	CreateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error)
	UpdateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error)
	GetTestType(ctx context.Context, id string) (entities.TestType, error)
	GetTestTypes(ctx context.Context, ids []string) (map[string]entities.TestType, error)
	ListTestTypes(ctx context.Context, categoryID string) ([]entities.TestType, error)
	DeleteTestType(ctx context.Context, id string) (bool, error)
}
