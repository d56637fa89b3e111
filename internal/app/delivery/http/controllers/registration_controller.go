package controllers

import (
	"context"
	"net/http"
	"referral-service/internal/app/services/core/registration"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/exceptions"
	"referral-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type RegistrationController struct {
	Log                 *zap.Logger
	RegistrationUsecase registration.RegistrationUsecase
}

func NewRegistrationController(logger *zap.Logger, registrationUsecase registration.RegistrationUsecase) *RegistrationController {
	return &RegistrationController{
		Log:                 logger,
		RegistrationUsecase: registrationUsecase,
	}
}

// Begin opens a registration draft for the selected role.
func (ctrl *RegistrationController) Begin(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.BeginRegistration)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeBeginRegistrationRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRoleNotSelected(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Send it to be processed by usecase
	result, err := ctrl.RegistrationUsecase.Begin(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegistrationDraftStarted, result)
}

// SubmitStep submits one wizard step's values for a draft. Field errors come
// back with a 400 and the draft stays where it was.
func (ctrl *RegistrationController) SubmitStep(w http.ResponseWriter, r *http.Request) {
	draftID := chi.URLParam(r, constvars.URLParamDraftID)
	if draftID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamDraftID))
		return
	}
	step, err := strconv.Atoi(chi.URLParam(r, constvars.URLParamStep))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDraftStepOutOfRange(err))
		return
	}

	// Bind body to request
	request := new(requests.SubmitStep)
	err = json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeSubmitStepRequest(request)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Send it to be processed by usecase
	result, err := ctrl.RegistrationUsecase.SubmitStep(ctx, draftID, step, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	if len(result.FieldErrors) > 0 {
		utils.BuildValidationErrorResponse(w, result)
		return
	}
	if result.Completed {
		utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegistrationSuccess, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RegistrationStepAccepted, result)
}
