package patient

import "time"

type UpsertPatientDTO struct {
	DateOfBirth      *time.Time `json:"date_of_birth"`
	Gender           *string    `json:"gender"`
	BloodType        *string    `json:"blood_type"`
	MedicalHistory   *string    `json:"medical_history"`
	EmergencyContact *string    `json:"emergency_contact"`
}
