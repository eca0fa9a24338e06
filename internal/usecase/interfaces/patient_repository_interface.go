package interfaces

import (
	"context"

	"lab_management/internal/domain/entities"
)

type IPatientRepository interface {
	Create(ctx context.Context, p entities.Patient) (entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	Update(ctx context.Context, p entities.Patient) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
}
