package chat

import (
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"gorm.io/gorm"
)

type Container struct {
	Repo    Repository
	Service Service
	Hub     *Hub
	Handler *Handler
}

func NewContainer(db *gorm.DB, appointmentRepo appointment.Repository, doctorRepo doctor.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, appointmentRepo, doctorRepo)
	hub := NewHub()
	handler := NewHandler(service, hub)

	return &Container{
		Repo:    repo,
		Service: service,
		Hub:     hub,
		Handler: handler,
	}
}
