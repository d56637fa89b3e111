package controllers

import (
	"context"
	"net/http"
	"referral-service/internal/app/delivery/http/middlewares"
	"referral-service/internal/app/services/core/approvals"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/exceptions"
	"referral-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ApprovalController struct {
	Log             *zap.Logger
	ApprovalUsecase approvals.ApprovalUsecase
}

func NewApprovalController(logger *zap.Logger, approvalUsecase approvals.ApprovalUsecase) *ApprovalController {
	return &ApprovalController{
		Log:             logger,
		ApprovalUsecase: approvalUsecase,
	}
}

func (ctrl *ApprovalController) ListPendingUsers(w http.ResponseWriter, r *http.Request) {
	pagination := requests.ParsePagination(r)
	role := r.URL.Query().Get(constvars.URLQueryParamRole)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.ApprovalUsecase.ListPendingUsers(ctx, role, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PendingListSuccess, paginationResponse, result)
}

func (ctrl *ApprovalController) ListPendingDoctors(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	pagination := requests.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.ApprovalUsecase.ListPendingDoctors(ctx, session, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PendingListSuccess, paginationResponse, result)
}

func (ctrl *ApprovalController) ListPendingHospitals(w http.ResponseWriter, r *http.Request) {
	pagination := requests.ParsePagination(r)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, total, err := ctrl.ApprovalUsecase.ListPendingHospitals(ctx, pagination)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	paginationResponse := utils.BuildPaginationResponse(total, pagination.Page, pagination.PageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.PendingListSuccess, paginationResponse, result)
}

func (ctrl *ApprovalController) ApproveUser(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	userID := chi.URLParam(r, constvars.URLParamUserID)
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamUserID))
		return
	}

	request := new(requests.ApproveRecord)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.ApprovalUsecase.ApproveUser(ctx, session, userID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserApprovedSuccess, nil)
}

func (ctrl *ApprovalController) RejectUser(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())
	userID := chi.URLParam(r, constvars.URLParamUserID)
	if userID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamUserID))
		return
	}

	request := new(requests.RejectRecord)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.ApprovalUsecase.RejectUser(ctx, session, userID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UserRejectedSuccess, nil)
}

func (ctrl *ApprovalController) ApproveHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	if hospitalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamHospitalID))
		return
	}

	request := new(requests.ApproveRecord)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.ApprovalUsecase.ApproveHospital(ctx, hospitalID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalApprovedSuccess, nil)
}

func (ctrl *ApprovalController) RejectHospital(w http.ResponseWriter, r *http.Request) {
	hospitalID := chi.URLParam(r, constvars.URLParamHospitalID)
	if hospitalID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamMissing(nil, constvars.URLParamHospitalID))
		return
	}

	request := new(requests.RejectRecord)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ctrl.ApprovalUsecase.RejectHospital(ctx, hospitalID, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalRejectedSuccess, nil)
}

func (ctrl *ApprovalController) Stats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ApprovalUsecase.Stats(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ApprovalStatsSuccess, result)
}
