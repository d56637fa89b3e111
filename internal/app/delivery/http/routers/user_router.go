package routers

import (
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/models"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, middlewares *middlewares.Middlewares, userController *controllers.UserController) {
	router.With(middlewares.RequireRoles()).Get("/profile", userController.GetProfile)
	router.With(middlewares.RequireRoles()).Put("/profile", userController.UpdateProfile)

	// User administration is super admin territory.
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin)).Get("/", userController.ListUsers)

	router.With(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleHospitalAdmin)).Get("/doctors", userController.ListDoctors)
	router.With(middlewares.RequireRoles()).Get("/patients", userController.ListPatients)
}
