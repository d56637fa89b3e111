package controllers

import (
	"context"
	"net/http"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/services/core/referrals"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/exceptions"
	"referral-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReferralController struct {
	Log             *zap.Logger
	ReferralUsecase referrals.ReferralUsecase
}

func NewReferralController(logger *zap.Logger, referralUsecase referrals.ReferralUsecase) *ReferralController {
	return &ReferralController{
		Log:             logger,
		ReferralUsecase: referralUsecase,
	}
}

func (ctrl *ReferralController) CreateReferral(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	// Bind body to request
	request := new(requests.CreateReferral)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	// Sanitize request
	utils.SanitizeCreateReferralRequest(request)

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReferralUsecase.CreateReferral(ctx, session, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ReferralCreatedSuccess, result)
}

func (ctrl *ReferralController) ListReferrals(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	pagination := requests.ParsePagination(r)
	status := r.URL.Query().Get(constvars.URLQueryParamStatus)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.ReferralUsecase.ListReferrals(ctx, session, status, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ReferralListSuccess, paginationResponse, result)
}

func (ctrl *ReferralController) GetReferral(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	referralID := chi.URLParam(r, constvars.URLParamReferralID)
	if referralID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamReferralID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReferralUsecase.GetReferral(ctx, session, referralID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReferralGetSuccess, result)
}

func (ctrl *ReferralController) UpdateReferral(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	referralID := chi.URLParam(r, constvars.URLParamReferralID)
	if referralID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamReferralID))
		return
	}

	// Bind body to request
	request := new(requests.UpdateReferral)
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

	result, err := ctrl.ReferralUsecase.UpdateReferral(ctx, session, referralID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReferralUpdatedSuccess, result)
}

func (ctrl *ReferralController) DeleteReferral(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	referralID := chi.URLParam(r, constvars.URLParamReferralID)
	if referralID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamReferralID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := ctrl.ReferralUsecase.DeleteReferral(ctx, session, referralID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReferralDeletedSuccess, nil)
}
