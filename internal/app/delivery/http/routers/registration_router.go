package routers

import (
	"fmt"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Registration runs before any session exists, so every route here is
// public. Draft ownership is the draft ID itself.
func attachRegistrationRoutes(router chi.Router, registrationController *controllers.RegistrationController) {
	router.Post("/", registrationController.Begin)
	router.Post(fmt.Sprintf("/{%s}/steps/{%s}", constvars.URLParamDraftID, constvars.URLParamStep), registrationController.SubmitStep)
}
