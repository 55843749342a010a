package rating

import (
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, appointmentRepo appointment.Repository, doctorRepo doctor.Repository) *Container {
	repo := NewRepository(db)
	service := NewService(repo, appointmentRepo, doctorRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
