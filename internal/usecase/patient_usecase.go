package usecase

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"time"

	"lab_management/internal/domain/entities"
	"lab_management/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrPatientNotFound = errors.New("patient not found")

	ErrPatientNameRequired = entities.NewValidationError("patient name is required")
	ErrInvalidAgeRange     = entities.NewValidationError("invalid age range")
	ErrInvalidGender       = entities.NewValidationError("gender must be male or female")
	ErrInvalidEmail        = entities.NewValidationError("invalid email address")
)

type IPatientUseCase interface {
	Register(ctx context.Context, p entities.Patient) (entities.Patient, error)
	GetByID(ctx context.Context, id string) (entities.Patient, error)
	Update(ctx context.Context, p entities.Patient) (entities.Patient, error)
	List(ctx context.Context) ([]entities.Patient, error)
}

type PatientUseCase struct {
	repo interfaces.IPatientRepository
}

var _ IPatientUseCase = (*PatientUseCase)(nil)

func NewPatientUseCase(repo interfaces.IPatientRepository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

func (u *PatientUseCase) Register(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	d, err := normalizeDemographics(p.Demographics())
	if err != nil {
		return entities.Patient{}, err
	}
	p = patientWith(p, d)
	p.ID = uuid.NewString()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Error().Err(err).Str("component", "patient.usecase").Msg("register patient failed")
		return entities.Patient{}, err
	}
	log.Info().Str("component", "patient.usecase").Str("patient_id", created.ID).Msg("patient registered")
	return created, nil
}

func (u *PatientUseCase) GetByID(ctx context.Context, id string) (entities.Patient, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Patient{}, ErrPatientNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Patient{}, err
	}
	if p.ID == "" {
		return entities.Patient{}, ErrPatientNotFound
	}
	return p, nil
}

// Update changes the patient record only. Results created earlier keep the
// demographics they were created with.
func (u *PatientUseCase) Update(ctx context.Context, p entities.Patient) (entities.Patient, error) {
	current, err := u.GetByID(ctx, p.ID)
	if err != nil {
		return entities.Patient{}, err
	}
	d, err := normalizeDemographics(p.Demographics())
	if err != nil {
		return entities.Patient{}, err
	}
	current = patientWith(current, d)
	current.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, current)
	if err != nil {
		return entities.Patient{}, err
	}
	if updated.ID == "" {
		return entities.Patient{}, ErrPatientNotFound
	}
	return updated, nil
}

func (u *PatientUseCase) List(ctx context.Context) ([]entities.Patient, error) {
	return u.repo.List(ctx)
}

func patientWith(p entities.Patient, d entities.Demographics) entities.Patient {
	p.Name = d.Name
	p.Age = d.Age
	p.Gender = d.Gender
	p.Phone = d.Phone
	p.Email = d.Email
	return p
}

// normalizeDemographics trims d and checks the rules shared by patients and
// results: name present, age in range, known gender, well-formed email.
func normalizeDemographics(d entities.Demographics) (entities.Demographics, error) {
	d.Name = strings.TrimSpace(d.Name)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.Gender = entities.Gender(strings.ToLower(strings.TrimSpace(string(d.Gender))))

	if d.Name == "" {
		return entities.Demographics{}, ErrPatientNameRequired
	}
	if d.Age < entities.MinPatientAge || d.Age > entities.MaxPatientAge {
		return entities.Demographics{}, ErrInvalidAgeRange
	}
	if d.Gender != "" && !d.Gender.Valid() {
		return entities.Demographics{}, ErrInvalidGender
	}
	if d.Email != "" {
		addr, err := mail.ParseAddress(d.Email)
		if err != nil || addr.Address != d.Email {
			return entities.Demographics{}, ErrInvalidEmail
		}
	}
	return d, nil
}
