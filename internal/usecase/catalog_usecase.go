package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lab_management/internal/domain/entities"
	"lab_management/internal/domain/workflow"
	"lab_management/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrCategoryNotFound = errors.New("test category not found")
	ErrTestTypeNotFound = errors.New("test type not found")
	ErrTestTypeInUse    = entities.NewValidationError("test type is selected on existing results")

	ErrCategoryNameRequired  = entities.NewValidationError("category name is required")
	ErrTestTypeNameRequired  = entities.NewValidationError("test name is required")
	ErrNegativePrice         = entities.NewValidationError("test amount cannot be negative")
	ErrPriceTooLarge         = entities.NewValidationError("test amount is too large")
	ErrParameterNameRequired = entities.NewValidationError("parameter name is required")
	ErrNormalRangeRequired   = entities.NewValidationError("parameter normal range is required")
	ErrDuplicateParameter    = entities.NewValidationError("this parameter already exists for this test type")
)

// ICatalogUseCase manages the test catalog: categories, test types and the
// parameters they measure.
type ICatalogUseCase interface {
	CreateCategory(ctx context.Context, c entities.TestCategory) (entities.TestCategory, error)
	ListCategories(ctx context.Context) ([]entities.TestCategory, error)
	CreateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error)
	UpdateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error)
	GetTestType(ctx context.Context, id string) (entities.TestType, error)
	ListTestTypes(ctx context.Context, categoryID string) ([]entities.TestType, error)
	DeleteTestType(ctx context.Context, id string) error
	// LookupTestTypes resolves selected test ids to their price and
	// parameters. An unknown id is a validation error.
	LookupTestTypes(ctx context.Context, ids []string) (workflow.Catalog, error)
}

type CatalogUseCase struct {
	repo    interfaces.ICatalogRepository
	results interfaces.ITestResultRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.ICatalogRepository, results interfaces.ITestResultRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo, results: results}
}

func (u *CatalogUseCase) CreateCategory(ctx context.Context, c entities.TestCategory) (entities.TestCategory, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return entities.TestCategory{}, ErrCategoryNameRequired
	}
	c.ID = uuid.NewString()
	c.Description = strings.TrimSpace(c.Description)
	c.CreatedAt = time.Now().UTC()

	created, err := u.repo.CreateCategory(ctx, c)
	if err != nil {
		log.Error().Err(err).Str("component", "catalog.usecase").Str("category", c.Name).Msg("create category failed")
		return entities.TestCategory{}, err
	}
	return created, nil
}

func (u *CatalogUseCase) ListCategories(ctx context.Context) ([]entities.TestCategory, error) {
	return u.repo.ListCategories(ctx)
}

func (u *CatalogUseCase) CreateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error) {
	t.ID = uuid.NewString()
	if err := u.prepareTestType(ctx, &t, nil); err != nil {
		return entities.TestType{}, err
	}
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	created, err := u.repo.CreateTestType(ctx, t)
	if err != nil {
		log.Error().Err(err).Str("component", "catalog.usecase").Str("test", t.Name).Msg("create test type failed")
		return entities.TestType{}, err
	}
	log.Info().Str("component", "catalog.usecase").Str("test_type_id", created.ID).Int("parameters", len(created.Parameters)).Msg("test type created")
	return created, nil
}

// UpdateTestType replaces the name, category, price and parameter list of a
// test type. Parameters keep their id when the caller sends it back, so
// result lines already pointing at them stay attached.
func (u *CatalogUseCase) UpdateTestType(ctx context.Context, t entities.TestType) (entities.TestType, error) {
	t.ID = strings.TrimSpace(t.ID)
	current, err := u.GetTestType(ctx, t.ID)
	if err != nil {
		return entities.TestType{}, err
	}
	if err := u.prepareTestType(ctx, &t, current.Parameters); err != nil {
		return entities.TestType{}, err
	}
	t.CreatedAt = current.CreatedAt
	t.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.UpdateTestType(ctx, t)
	if err != nil {
		return entities.TestType{}, err
	}
	if updated.ID == "" {
		return entities.TestType{}, ErrTestTypeNotFound
	}
	return updated, nil
}

func (u *CatalogUseCase) GetTestType(ctx context.Context, id string) (entities.TestType, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.TestType{}, ErrTestTypeNotFound
	}
	t, err := u.repo.GetTestType(ctx, id)
	if err != nil {
		return entities.TestType{}, err
	}
	if t.ID == "" {
		return entities.TestType{}, ErrTestTypeNotFound
	}
	return t, nil
}

func (u *CatalogUseCase) ListTestTypes(ctx context.Context, categoryID string) ([]entities.TestType, error) {
	return u.repo.ListTestTypes(ctx, strings.TrimSpace(categoryID))
}

// DeleteTestType removes a test type and its parameters. Tests still
// selected on a result cannot be deleted.
func (u *CatalogUseCase) DeleteTestType(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if u.results != nil {
		used, err := u.results.ReferencesTestType(ctx, id)
		if err != nil {
			return err
		}
		if used {
			return ErrTestTypeInUse
		}
	}
	deleted, err := u.repo.DeleteTestType(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTestTypeNotFound
	}
	log.Info().Str("component", "catalog.usecase").Str("test_type_id", id).Msg("test type deleted")
	return nil
}

func (u *CatalogUseCase) LookupTestTypes(ctx context.Context, ids []string) (workflow.Catalog, error) {
	return lookupTestTypes(ctx, u.repo, uniqueIDs(ids))
}

// prepareTestType normalizes and validates t in place. Parameters whose id is
// in existing keep it; every other parameter gets a new id.
func (u *CatalogUseCase) prepareTestType(ctx context.Context, t *entities.TestType, existing []entities.TestParameter) error {
	t.Name = strings.TrimSpace(t.Name)
	t.CategoryID = strings.TrimSpace(t.CategoryID)
	if t.Name == "" {
		return ErrTestTypeNameRequired
	}
	if t.Price < 0 {
		return ErrNegativePrice
	}
	if t.Price > entities.MaxAmount {
		return ErrPriceTooLarge
	}
	t.Price = entities.RoundCents(t.Price)

	known := make(map[string]struct{}, len(existing))
	for _, p := range existing {
		known[p.ID] = struct{}{}
	}
	names := make(map[string]struct{}, len(t.Parameters))
	for i := range t.Parameters {
		p := &t.Parameters[i]
		p.Name = strings.TrimSpace(p.Name)
		p.NormalRange = strings.TrimSpace(p.NormalRange)
		p.Unit = strings.TrimSpace(p.Unit)
		if p.Name == "" {
			return ErrParameterNameRequired
		}
		if p.NormalRange == "" {
			return fmt.Errorf("parameter %q: %w", p.Name, ErrNormalRangeRequired)
		}
		if _, dup := names[p.Name]; dup {
			return fmt.Errorf("parameter %q: %w", p.Name, ErrDuplicateParameter)
		}
		names[p.Name] = struct{}{}
		if _, ok := known[p.ID]; !ok {
			p.ID = uuid.NewString()
		}
		p.TestTypeID = t.ID
	}

	if t.CategoryID != "" {
		c, err := u.repo.GetCategory(ctx, t.CategoryID)
		if err != nil {
			return err
		}
		if c.ID == "" {
			return ErrCategoryNotFound
		}
	}
	return nil
}
