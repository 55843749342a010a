package doctor

import (
	"errors"

	"github.com/google/uuid"
)

var ErrDoctorNotFound = errors.New("doctor profile not found")

type Service interface {
	Upsert(userID uuid.UUID, dto UpsertDoctorDTO) (*Doctor, error)
	GetByID(id uuid.UUID) (*Doctor, error)
	GetByUser(userID uuid.UUID) (*Doctor, error)
	List(specialty string) ([]*Doctor, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Upsert(userID uuid.UUID, dto UpsertDoctorDTO) (*Doctor, error) {
	d, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if d == nil {
		d = &Doctor{UserID: userID}
		applyDoctorDTO(d, dto)
		if err := s.repo.Create(d); err != nil {
			return nil, err
		}
		return d, nil
	}

	applyDoctorDTO(d, dto)
	if err := s.repo.Update(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) GetByID(id uuid.UUID) (*Doctor, error) {
	d, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

func (s *service) GetByUser(userID uuid.UUID) (*Doctor, error) {
	d, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, ErrDoctorNotFound
	}
	return d, nil
}

func (s *service) List(specialty string) ([]*Doctor, error) {
	return s.repo.List(specialty)
}

func applyDoctorDTO(d *Doctor, dto UpsertDoctorDTO) {
	if dto.Specialty != nil {
		d.Specialty = *dto.Specialty
	}
	if dto.Bio != nil {
		d.Bio = *dto.Bio
	}
	if dto.YearsExperience != nil {
		d.YearsExperience = *dto.YearsExperience
	}
	if dto.FeeCents != nil {
		d.FeeCents = *dto.FeeCents
	}
}
