package controllers

import (
	"context"
	"net/http"
	"referral-service/internal/app/services/core/hospitals"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/exceptions"
	"referral-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HospitalController struct {
	Log             *zap.Logger
	HospitalUsecase hospitals.HospitalUsecase
}

func NewHospitalController(logger *zap.Logger, hospitalUsecase hospitals.HospitalUsecase) *HospitalController {
	return &HospitalController{
		Log:             logger,
		HospitalUsecase: hospitalUsecase,
	}
}

// ListApproved backs the wizard's hospital selector. Public: registration
// happens before any session exists.
func (ctrl *HospitalController) ListApproved(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HospitalUsecase.ListApproved(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalListSuccess, result)
}

func (ctrl *HospitalController) ListHospitals(w http.ResponseWriter, r *http.Request) {
	pagination := requests.ParsePagination(r)
	status := r.URL.Query().Get(constvars.URLQueryParamStatus)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.HospitalUsecase.ListHospitals(ctx, status, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.HospitalListSuccess, paginationResponse, result)
}

func (ctrl *HospitalController) GetHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	if hospitalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamHospitalID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HospitalUsecase.GetHospital(ctx, hospitalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalGetSuccess, result)
}

func (ctrl *HospitalController) CreateHospital(w http.ResponseWriter, r *http.Request) {
	// Bind body to request
	request := new(requests.CreateHospital)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateHospitalRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HospitalUsecase.CreateHospital(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.HospitalCreatedSuccess, result)
}

func (ctrl *HospitalController) UpdateHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	if hospitalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamHospitalID))
		return
	}

	// Bind body to request
	request := new(requests.UpdateHospital)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.HospitalUsecase.UpdateHospital(ctx, hospitalID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalUpdatedSuccess, result)
}

func (ctrl *HospitalController) DeleteHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	if hospitalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamHospitalID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.HospitalUsecase.DeleteHospital(ctx, hospitalID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalDeletedSuccess, nil)
}
