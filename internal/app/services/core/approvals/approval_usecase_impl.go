package approvals

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/core/hospitals"
	"referral-service/internal/app/services/core/users"
	"referral-service/internal/app/services/shared/notifications"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type approvalUsecase struct {
	UserRepository      users.UserRepository
	HospitalRepository  hospitals.HospitalRepository
	NotificationService notifications.NotificationService
	Log                 *zap.Logger
}

func NewApprovalUsecase(
	userMongoRepository users.UserRepository,
	hospitalMongoRepository hospitals.HospitalRepository,
	notificationService notifications.NotificationService,
	logger *zap.Logger,
) ApprovalUsecase {
	return &approvalUsecase{
		UserRepository:      userMongoRepository,
		HospitalRepository:  hospitalMongoRepository,
		NotificationService: notificationService,
		Log:                 logger,
	}
}

func (uc *approvalUsecase) ListPendingUsers(ctx context.Context, role string, pagination requests.Pagination) ([]responses.User, int, error) {
	userModels, total, err := uc.UserRepository.FindByRoleAndStatus(ctx, role, constvars.ApprovalStatusPending, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildPendingUserList(userModels), total, nil
}

// ListPendingDoctors scopes hospital admins to doctors who registered under
// their own hospital; super admins see all pending doctors.
func (uc *approvalUsecase) ListPendingDoctors(ctx context.Context, session *models.Session, pagination requests.Pagination) ([]responses.User, int, error) {
	if session.Role == constvars.RoleTypeHospitalAdmin {
		admin, err := uc.UserRepository.FindByID(ctx, session.UserID)
		if err != nil {
			return nil, 0, err
		}
		if admin == nil {
			return nil, 0, exceptions.ErrUserNotExist(nil)
		}
		userModels, total, err := uc.UserRepository.FindByHospitalAndStatus(ctx, admin.HospitalID, constvars.RoleTypeDoctor, constvars.ApprovalStatusPending, pagination.Page, pagination.PageSize)
		if err != nil {
			return nil, 0, err
		}
		return buildPendingUserList(userModels), total, nil
	}

	userModels, total, err := uc.UserRepository.FindByRoleAndStatus(ctx, constvars.RoleTypeDoctor, constvars.ApprovalStatusPending, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}
	return buildPendingUserList(userModels), total, nil
}

func (uc *approvalUsecase) ListPendingHospitals(ctx context.Context, pagination requests.Pagination) ([]responses.Hospital, int, error) {
	hospitalModels, total, err := uc.HospitalRepository.FindByStatus(ctx, constvars.HospitalStatusPending, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	hospitalList := make([]responses.Hospital, 0, len(hospitalModels))
	for _, hospital := range hospitalModels {
		hospitalList = append(hospitalList, responses.Hospital{
			ID:   hospital.ID,
			Name: hospital.Name,
			Address: responses.HospitalAddress{
				Street:  hospital.Address.Street,
				City:    hospital.Address.City,
				State:   hospital.Address.State,
				ZipCode: hospital.Address.ZipCode,
			},
			Phone:  hospital.Phone,
			Email:  hospital.Email,
			Status: hospital.Status,
		})
	}
	return hospitalList, total, nil
}

func (uc *approvalUsecase) ApproveUser(ctx context.Context, session *models.Session, userID string, request *requests.ApproveRecord) error {
	user, err := uc.findActionable(ctx, session, userID)
	if err != nil {
		return err
	}

	user.ApprovalStatus = constvars.ApprovalStatusApproved
	user.ApprovalMessage = request.Message
	user.RejectionReason = ""
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	uc.notify(ctx, constvars.NotificationTypeUserApproved, user.Email, map[string]string{
		"firstName": user.FirstName,
		"message":   request.Message,
	})
	return nil
}

func (uc *approvalUsecase) RejectUser(ctx context.Context, session *models.Session, userID string, request *requests.RejectRecord) error {
	user, err := uc.findActionable(ctx, session, userID)
	if err != nil {
		return err
	}

	user.ApprovalStatus = constvars.ApprovalStatusRejected
	user.RejectionReason = request.Reason
	user.ApprovalMessage = ""
	user.UpdatedAt = time.Now()

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return err
	}

	uc.notify(ctx, constvars.NotificationTypeUserRejected, user.Email, map[string]string{
		"firstName": user.FirstName,
		"reason":    request.Reason,
	})
	return nil
}

func (uc *approvalUsecase) ApproveHospital(ctx context.Context, hospitalID string, request *requests.ApproveRecord) error {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return exceptions.ErrHospitalNotExist(nil)
	}

	hospital.Status = constvars.HospitalStatusApproved
	hospital.ApprovalMessage = request.Message
	hospital.RejectionReason = ""
	hospital.UpdatedAt = time.Now()

	if err := uc.HospitalRepository.UpdateHospital(ctx, hospital); err != nil {
		return err
	}

	if hospital.Email != "" {
		uc.notify(ctx, constvars.NotificationTypeHospitalApproved, hospital.Email, map[string]string{
			"hospitalName": hospital.Name,
			"message":      request.Message,
		})
	}
	return nil
}

func (uc *approvalUsecase) RejectHospital(ctx context.Context, hospitalID string, request *requests.RejectRecord) error {
	hospital, err := uc.HospitalRepository.FindByID(ctx, hospitalID)
	if err != nil {
		return err
	}
	if hospital == nil {
		return exceptions.ErrHospitalNotExist(nil)
	}

	hospital.Status = constvars.HospitalStatusRejected
	hospital.RejectionReason = request.Reason
	hospital.ApprovalMessage = ""
	hospital.UpdatedAt = time.Now()

	if err := uc.HospitalRepository.UpdateHospital(ctx, hospital); err != nil {
		return err
	}

	if hospital.Email != "" {
		uc.notify(ctx, constvars.NotificationTypeHospitalRejected, hospital.Email, map[string]string{
			"hospitalName": hospital.Name,
			"reason":       request.Reason,
		})
	}
	return nil
}

func (uc *approvalUsecase) Stats(ctx context.Context) (*responses.ApprovalStats, error) {
	pendingUsers, err := uc.UserRepository.CountByStatus(ctx, constvars.ApprovalStatusPending)
	if err != nil {
		return nil, err
	}
	pendingDoctors, err := uc.UserRepository.CountByRoleAndStatus(ctx, constvars.RoleTypeDoctor, constvars.ApprovalStatusPending)
	if err != nil {
		return nil, err
	}
	pendingHospitals, err := uc.HospitalRepository.CountByStatus(ctx, constvars.HospitalStatusPending)
	if err != nil {
		return nil, err
	}
	approvedUsers, err := uc.UserRepository.CountByStatus(ctx, constvars.ApprovalStatusApproved)
	if err != nil {
		return nil, err
	}
	rejectedUsers, err := uc.UserRepository.CountByStatus(ctx, constvars.ApprovalStatusRejected)
	if err != nil {
		return nil, err
	}

	return &responses.ApprovalStats{
		PendingUsers:     pendingUsers,
		PendingDoctors:   pendingDoctors,
		PendingHospitals: pendingHospitals,
		ApprovedUsers:    approvedUsers,
		RejectedUsers:    rejectedUsers,
	}, nil
}

// findActionable loads the target of an approve or reject. A hospital admin
// may only act on pending doctors of their own hospital; targets outside that
// scope read as not found, matching the scoping of ListPendingDoctors.
func (uc *approvalUsecase) findActionable(ctx context.Context, session *models.Session, userID string) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if session.Role == constvars.RoleTypeHospitalAdmin {
		admin, err := uc.UserRepository.FindByID(ctx, session.UserID)
		if err != nil {
			return nil, err
		}
		if admin == nil {
			return nil, exceptions.ErrUserNotExist(nil)
		}
		if user.Role != constvars.RoleTypeDoctor ||
			user.ApprovalStatus != constvars.ApprovalStatusPending ||
			user.HospitalID != admin.HospitalID {
			return nil, exceptions.ErrUserNotExist(nil)
		}
	}
	return user, nil
}

// The decision is already persisted when notification is attempted; a queue
// failure must not roll it back.
func (uc *approvalUsecase) notify(ctx context.Context, notificationType, recipient string, data map[string]string) {
	err := uc.NotificationService.Publish(ctx, &notifications.NotificationMessage{
		Type:      notificationType,
		Recipient: recipient,
		Data:      data,
	})
	if err != nil {
		uc.Log.Warn("approval notification publish failed", zap.Error(err))
	}
}

func buildPendingUserList(userModels []models.User) []responses.User {
	userList := make([]responses.User, 0, len(userModels))
	for _, user := range userModels {
		userList = append(userList, responses.User{
			ID:             user.ID,
			Role:           user.Role,
			FirstName:      user.FirstName,
			LastName:       user.LastName,
			Email:          user.Email,
			Phone:          user.Phone,
			ApprovalStatus: user.ApprovalStatus,
			HospitalID:     user.HospitalID,
			Specialization: user.Specialization,
			Department:     user.Department,
			CreatedAt:      user.CreatedAt.Format(time.RFC3339),
		})
	}
	return userList
}
