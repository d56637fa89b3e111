package routers

import (
	"referral-service/internal/app/config"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *controllers.AuthController,
	registrationController *controllers.RegistrationController,
	userController *controllers.UserController,
	hospitalController *controllers.HospitalController,
	approvalController *controllers.ApprovalController,
	referralController *controllers.ReferralController,
	appointmentController *controllers.AppointmentController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{internalConfig.App.FrontendDomain},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Location"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimitWindow := time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds) * time.Second
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, rateLimitWindow)
	router.Use(rateLimiter)

	router.Use(middlewares.BodyLimit)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.Authenticate)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/register", func(r chi.Router) {
			attachRegistrationRoutes(r, registrationController)
		})

		r.Route("/users", func(r chi.Router) {
			attachUserRoutes(r, middlewares, userController)
		})

		r.Route("/hospitals", func(r chi.Router) {
			attachHospitalRoutes(r, middlewares, hospitalController)
		})

		r.Route("/approvals", func(r chi.Router) {
			attachApprovalRoutes(r, middlewares, approvalController)
		})

		r.Route("/referrals", func(r chi.Router) {
			attachReferralRoutes(r, middlewares, referralController)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, middlewares, appointmentController)
		})
	})
}
