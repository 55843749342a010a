package appointment

import (
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/gcalendar"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, doctorService doctor.Service, calendarManager gcalendar.CalendarManager) *Container {
	repo := NewRepository(db)
	service := NewService(repo, doctorService, calendarManager)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
