package routers

import (
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.With(middlewares.RequireRoles()).Post("/logout", authController.Logout)
}
