package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/sirupsen/logrus"

	"github.com/careerclarity/careerclarity-api/internal/config"
	"github.com/careerclarity/careerclarity-api/internal/container"
	"github.com/careerclarity/careerclarity-api/internal/router"
)

func main() {
	c := container.New()
	defer c.Close()

	handler := router.New(router.RouterConfig{
		StudentHandler:      c.StudentContainer.Handler,
		InstituteHandler:    c.InstituteContainer.Handler,
		AdminHandler:        c.AdminContainer.Handler,
		AssessmentHandler:   c.AssessmentContainer.Handler,
		CareerHandler:       c.CareerContainer.Handler,
		CollegeHandler:      c.CollegeContainer.Handler,
		BookingHandler:      c.BookingContainer.Handler,
		NotificationHandler: c.NotificationContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(handler).ProxyWithContext)
		return
	}

	port := config.GetString("PORT")
	logrus.WithField("port", port).Info("starting http server")
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
