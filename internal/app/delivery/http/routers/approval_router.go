package routers

import (
	"fmt"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachApprovalRoutes(router chi.Router, middlewares *middlewares.Middlewares, approvalController *controllers.ApprovalController) {
	superAdminOnly := middlewares.RequireRoles(models.RoleSuperAdmin)

	router.With(superAdminOnly).Get("/users", approvalController.ListPendingUsers)
	router.With(superAdminOnly).Get("/hospitals", approvalController.ListPendingHospitals)
	router.With(superAdminOnly).Get("/stats", approvalController.Stats)

	// Hospital admins approve doctors who registered under their hospital.
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleHospitalAdmin)).Get("/doctors", approvalController.ListPendingDoctors)

	userIDPath := fmt.Sprintf("/users/{%s}", constvars.URLParamUserID)
	hospitalIDPath := fmt.Sprintf("/hospitals/{%s}", constvars.URLParamHospitalID)

	router.With(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleHospitalAdmin)).Post(userIDPath+"/approve", approvalController.ApproveUser)
	router.With(middlewares.RequireRoles(models.RoleSuperAdmin, models.RoleHospitalAdmin)).Post(userIDPath+"/reject", approvalController.RejectUser)

	router.With(superAdminOnly).Post(hospitalIDPath+"/approve", approvalController.ApproveHospital)
	router.With(superAdminOnly).Post(hospitalIDPath+"/reject", approvalController.RejectHospital)
}
