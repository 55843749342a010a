package container

import (
	"context"
	"log"
	"os"

	"github.com/mal4crypt/genova-health/internal/achievement"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/assistant"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/chat"
	"github.com/mal4crypt/genova-health/internal/config"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/gcalendar"
	"github.com/mal4crypt/genova-health/internal/goal"
	"github.com/mal4crypt/genova-health/internal/metric"
	"github.com/mal4crypt/genova-health/internal/patient"
	"github.com/mal4crypt/genova-health/internal/payment"
	"github.com/mal4crypt/genova-health/internal/rating"
	"github.com/mal4crypt/genova-health/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	PatientContainer     *patient.Container
	DoctorContainer      *doctor.Container
	CalendarContainer    *gcalendar.GoogleCalendarContainer
	AppointmentContainer *appointment.Container
	AchievementContainer *achievement.Container
	GoalContainer        *goal.Container
	MetricContainer      *metric.Container
	RatingContainer      *rating.Container
	PaymentContainer     *payment.Container
	ChatContainer        *chat.Container
	AssistantContainer   *assistant.Container
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&patient.Patient{},
		&doctor.Doctor{},
		&appointment.Appointment{},
		&achievement.Achievement{},
		&goal.FitnessGoal{},
		&metric.HealthMetric{},
		&rating.Rating{},
		&payment.Payment{},
		&chat.ChatMessage{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	patientContainer := patient.NewContainer(config.DB)
	doctorContainer := doctor.NewContainer(config.DB)
	calendarContainer := gcalendar.NewGoogleCalendarContainer(userContainer.Repo)

	appointmentContainer := appointment.NewContainer(
		config.DB,
		doctorContainer.Service,
		calendarContainer.CalendarManager,
	)

	achievementContainer := achievement.NewContainer(config.DB)

	// The metric repository feeds the progress engine, which in turn is
	// triggered by metric ingestion.
	metricRepo := metric.NewRepository(config.DB)
	goalContainer := goal.NewContainer(config.DB, metricRepo, achievementContainer.Service)
	metricContainer := metric.NewContainer(config.DB, goalContainer.Engine)

	ratingContainer := rating.NewContainer(config.DB, appointmentContainer.Repo, doctorContainer.Repo)
	paymentContainer := payment.NewContainer(config.DB, appointmentContainer.Repo, doctorContainer.Repo)
	chatContainer := chat.NewContainer(config.DB, appointmentContainer.Repo, doctorContainer.Repo)
	assistantContainer := assistant.NewContainer(goalContainer.Repo, metricContainer.Repo)

	return &Container{
		UserContainer:        userContainer,
		PatientContainer:     patientContainer,
		DoctorContainer:      doctorContainer,
		CalendarContainer:    calendarContainer,
		AppointmentContainer: appointmentContainer,
		AchievementContainer: achievementContainer,
		GoalContainer:        goalContainer,
		MetricContainer:      metricContainer,
		RatingContainer:      ratingContainer,
		PaymentContainer:     paymentContainer,
		ChatContainer:        chatContainer,
		AssistantContainer:   assistantContainer,
	}
}
