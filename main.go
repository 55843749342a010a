package main

import (
	"context"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/mal4crypt/genova-health/internal/container"
	"github.com/mal4crypt/genova-health/internal/router"
	"github.com/sirupsen/logrus"
)

func main() {
	c := container.New()

	handler := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		PatientHandler:     c.PatientContainer.Handler,
		DoctorHandler:      c.DoctorContainer.Handler,
		AppointmentHandler: c.AppointmentContainer.Handler,
		PaymentHandler:     c.PaymentContainer.Handler,
		RatingHandler:      c.RatingContainer.Handler,
		MetricHandler:      c.MetricContainer.Handler,
		GoalHandler:        c.GoalContainer.Handler,
		AchievementHandler: c.AchievementContainer.Handler,
		ChatHandler:        c.ChatContainer.Handler,
		AssistantHandler:   c.AssistantContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := httpadapter.NewV2(handler)
		lambda.Start(func(ctx context.Context, req events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error) {
			return adapter.ProxyWithContext(ctx, req)
		})
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logrus.WithField("port", port).Info("Starting HTTP server")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.WithError(err).Fatal("HTTP server stopped")
	}
}
