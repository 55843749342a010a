package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/mal4crypt/genova-health/internal/achievement"
	"github.com/mal4crypt/genova-health/internal/appointment"
	"github.com/mal4crypt/genova-health/internal/assistant"
	"github.com/mal4crypt/genova-health/internal/auth"
	"github.com/mal4crypt/genova-health/internal/chat"
	"github.com/mal4crypt/genova-health/internal/doctor"
	"github.com/mal4crypt/genova-health/internal/goal"
	"github.com/mal4crypt/genova-health/internal/metric"
	"github.com/mal4crypt/genova-health/internal/middlewares"
	"github.com/mal4crypt/genova-health/internal/patient"
	"github.com/mal4crypt/genova-health/internal/payment"
	"github.com/mal4crypt/genova-health/internal/rating"
	"github.com/mal4crypt/genova-health/internal/user"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	PatientHandler     *patient.Handler
	DoctorHandler      *doctor.Handler
	AppointmentHandler *appointment.Handler
	PaymentHandler     *payment.Handler
	RatingHandler      *rating.Handler
	MetricHandler      *metric.Handler
	GoalHandler        *goal.Handler
	AchievementHandler *achievement.Handler
	ChatHandler        *chat.Handler
	AssistantHandler   *assistant.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", cfg.UserHandler.GoogleLogin)
		r.Post("/refresh", cfg.UserHandler.RefreshToken)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/patients", patient.Routes(cfg.PatientHandler))
		r.Mount("/doctors", doctor.Routes(cfg.DoctorHandler))
		r.Mount("/appointments", appointment.Routes(cfg.AppointmentHandler))
		r.Mount("/payments", payment.Routes(cfg.PaymentHandler))
		r.Mount("/ratings", rating.Routes(cfg.RatingHandler))
		r.Mount("/metrics", metric.Routes(cfg.MetricHandler))
		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/achievements", achievement.Routes(cfg.AchievementHandler))
		r.Mount("/chat", chat.Routes(cfg.ChatHandler))
		r.Mount("/assistant", assistant.Routes(cfg.AssistantHandler))
	})
	return r
}
