package request

import "lab_management/internal/domain/entities"

// PatientRequest is used both to register a patient and to update one. Age
// is a pointer so a missing age is told apart from a newborn.
type PatientRequest struct {
	Name   string `json:"name" binding:"required"`
	Age    *int   `json:"age" binding:"required"`
	Gender string `json:"gender" binding:"required"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

func (r PatientRequest) ToEntity(id string) entities.Patient {
	p := entities.Patient{
		ID:     id,
		Name:   r.Name,
		Gender: entities.Gender(r.Gender),
		Phone:  r.Phone,
		Email:  r.Email,
	}
	if r.Age != nil {
		p.Age = *r.Age
	}
	return p
}

// DemographicsRequest is the patient snapshot typed in on a result.
type DemographicsRequest struct {
	PatientName string `json:"patient_name"`
	Age         *int   `json:"age"`
	Gender      string `json:"gender"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
}

// ToEntity maps a missing age to -1 so the age range check rejects it.
func (r DemographicsRequest) ToEntity() entities.Demographics {
	d := entities.Demographics{
		Name:   r.PatientName,
		Age:    -1,
		Gender: entities.Gender(r.Gender),
		Phone:  r.Phone,
		Email:  r.Email,
	}
	if r.Age != nil {
		d.Age = *r.Age
	}
	return d
}
