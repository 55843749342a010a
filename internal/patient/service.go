package patient

import (
	"errors"

	"github.com/google/uuid"
)

var ErrPatientNotFound = errors.New("patient profile not found")

type Service interface {
	Upsert(userID uuid.UUID, dto UpsertPatientDTO) (*Patient, error)
	GetByUser(userID uuid.UUID) (*Patient, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Upsert(userID uuid.UUID, dto UpsertPatientDTO) (*Patient, error) {
	p, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if p == nil {
		p = &Patient{UserID: userID}
		applyPatientDTO(p, dto)
		if err := s.repo.Create(p); err != nil {
			return nil, err
		}
		return p, nil
	}

	applyPatientDTO(p, dto)
	if err := s.repo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByUser(userID uuid.UUID) (*Patient, error) {
	p, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPatientNotFound
	}
	return p, nil
}

func applyPatientDTO(p *Patient, dto UpsertPatientDTO) {
	if dto.DateOfBirth != nil {
		p.DateOfBirth = dto.DateOfBirth
	}
	if dto.Gender != nil {
		p.Gender = *dto.Gender
	}
	if dto.BloodType != nil {
		p.BloodType = *dto.BloodType
	}
	if dto.MedicalHistory != nil {
		p.MedicalHistory = *dto.MedicalHistory
	}
	if dto.EmergencyContact != nil {
		p.EmergencyContact = *dto.EmergencyContact
	}
}
