package doctor

type UpsertDoctorDTO struct {
	Specialty       *string `json:"specialty"`
	Bio             *string `json:"bio"`
	YearsExperience *int    `json:"years_experience"`
	FeeCents        *int64  `json:"fee_cents"`
}
