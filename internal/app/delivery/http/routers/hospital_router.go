package routers

import (
	"fmt"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, middlewares *middlewares.Middlewares, hospitalController *controllers.HospitalController) {
	// The registration wizard's hospital selector loads before login.
	router.Get("/approved", hospitalController.ListApproved)

	hospitalIDPath := fmt.Sprintf("/{%s}", constvars.URLParamHospitalID)

	router.With(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleHospitalAdmin)).Get("/", hospitalController.ListHospitals)
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleHospitalAdmin)).Get(hospitalIDPath, hospitalController.GetHospital)

	// Hospitals submit themselves before anyone at the hospital has an
	// account; the record sits in pending until a super admin approves it.
	router.Post("/", hospitalController.CreateHospital)
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin)).Put(hospitalIDPath, hospitalController.UpdateHospital)
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin)).Delete(hospitalIDPath, hospitalController.DeleteHospital)
}
