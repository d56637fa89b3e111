package routers

import (
	"fmt"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	appointmentIDPath := fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID)

	router.With(middlewares.RequireRoles(models.RoleDoctor, models.RolePatient)).Get("/", appointmentController.ListAppointments)
	router.With(middlewares.RequireRoles(models.RoleDoctor, models.RolePatient)).Get(appointmentIDPath, appointmentController.GetAppointment)

	// Booking is the patient side of the flow.
	router.With(middlewares.RequireRoles(models.RolePatient)).Post("/", appointmentController.BookAppointment)
	router.With(middlewares.RequireRoles(models.RoleDoctor)).Put(appointmentIDPath, appointmentController.UpdateAppointment)
	router.With(middlewares.RequireRoles(models.RolePatient)).Delete(appointmentIDPath, appointmentController.CancelAppointment)
}
