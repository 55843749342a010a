package payment

import (
	"os"

	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/stripe/stripe-go/v81"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(db *gorm.DB, appointmentRepo appointment.Repository, doctorRepo doctor.Repository) *Container {
	stripe.Key = os.Getenv("STRIPE_SECRET_KEY")

	repo := NewRepository(db)
	service := NewService(repo, appointmentRepo, doctorRepo)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
