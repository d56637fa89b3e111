package routers

import (
	"fmt"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReferralRoutes(router chi.Router, middlewares *middlewares.Middlewares, referralController *controllers.ReferralController) {
	referralIDPath := fmt.Sprintf("/{%s}", constvars.URLParamReferralID)

	// Any authenticated user can read; the usecase narrows results to what
	// the caller may see.
	router.With(middlewares.RequireRoles()).Get("/", referralController.ListReferrals)
	router.With(middlewares.RequireRoles()).Get(referralIDPath, referralController.GetReferral)

	router.With(middlewares.RequireRoles(models.RoleDoctor)).Post("/", referralController.CreateReferral)
	router.With(middlewares.RequireRoles(models.RoleHospitalAdmin, models.RoleSuperAdmin)).Put(referralIDPath, referralController.UpdateReferral)
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin)).Delete(referralIDPath, referralController.DeleteReferral)
}
