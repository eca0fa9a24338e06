package entities

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

const (
	MinPatientAge = 0
	MaxPatientAge = 150
)

// Demographics is the patient snapshot carried by a result. It is either
// typed in on the result or mirrored from a registered Patient.
type Demographics struct {
	Name   string `json:"patient_name"`
	Age    int    `json:"age"`
	Gender Gender `json:"gender"`
	Phone  string `json:"phone,omitempty"`
	Email  string `json:"email,omitempty"`
}

// Patient is a registered patient.
type Patient struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Gender    Gender    `json:"gender"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p Patient) Demographics() Demographics {
	return Demographics{
		Name:   p.Name,
		Age:    p.Age,
		Gender: p.Gender,
		Phone:  p.Phone,
		Email:  p.Email,
	}
}
