package goal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mal4crypt/genova-health/internal/config"
)

var (
	ErrGoalNotFound    = errors.New("goal not found")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrInvalidCategory = errors.New("invalid goal category")
	ErrInvalidTarget   = errors.New("target value must be positive")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*FitnessGoal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*FitnessGoal, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*FitnessGoal, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo   Repository
	engine *Engine
}

func NewService(repo Repository, engine *Engine) Service {
	return &service{repo: repo, engine: engine}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*FitnessGoal, error) {
	log := config.WithContext(ctx)

	if !dto.Category.IsValid() {
		return nil, ErrInvalidCategory
	}
	if dto.TargetValue <= 0 {
		return nil, ErrInvalidTarget
	}

	startDate := time.Now()
	if dto.StartDate != nil {
		startDate = *dto.StartDate
	}

	g := &FitnessGoal{
		UserID:      userID,
		Title:       dto.Title,
		Description: dto.Description,
		Category:    dto.Category,
		TargetValue: dto.TargetValue,
		StartDate:   startDate,
		EndDate:     dto.EndDate,
		Status:      GoalStatusActive,
	}

	if err := s.repo.Create(g); err != nil {
		log.WithError(err).Error("Failed to create goal")
		return nil, err
	}

	// Pick up metrics that were recorded before the goal existed.
	if err := s.engine.RefreshGoal(ctx, g); err != nil {
		log.WithError(err).Warnf("Failed to compute initial progress for goal %s", g.ID)
	}

	log.WithField("goal_id", g.ID).Info("Goal created successfully")
	return g, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]*FitnessGoal, error) {
	return s.repo.FindAllByUserID(userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*FitnessGoal, error) {
	log := config.WithContext(ctx)

	g, err := s.findOwned(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Title != nil {
		g.Title = *dto.Title
	}
	if dto.Description != nil {
		g.Description = *dto.Description
	}
	if dto.TargetValue != nil {
		if *dto.TargetValue <= 0 {
			return nil, ErrInvalidTarget
		}
		g.TargetValue = *dto.TargetValue
	}
	if dto.EndDate != nil {
		g.EndDate = dto.EndDate
	}

	// An edited target or end date changes the completion predicate, so the
	// derived state is recomputed rather than carried over.
	if err := s.engine.RefreshGoal(ctx, g); err != nil {
		log.WithError(err).Error("Failed to refresh goal after update")
		return nil, err
	}

	return g, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if _, err := s.findOwned(id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

func (s *service) findOwned(id, userID uuid.UUID) (*FitnessGoal, error) {
	g, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGoalNotFound
	}
	if g.UserID != userID {
		return nil, ErrUnauthorized
	}
	return g, nil
}
