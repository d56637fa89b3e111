package appointments

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/core/users"
	"referral-service/internal/app/services/shared/notifications"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"referral-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	UserRepository        users.UserRepository
	NotificationService   notifications.NotificationService
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentMongoRepository AppointmentRepository,
	userMongoRepository users.UserRepository,
	notificationService notifications.NotificationService,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentMongoRepository,
		UserRepository:        userMongoRepository,
		NotificationService:   notificationService,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, session *models.Session, request *requests.BookAppointment) (*responses.Appointment, error) {
	doctor, err := uc.UserRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || doctor.Role != constvars.RoleTypeDoctor || doctor.ApprovalStatus != constvars.ApprovalStatusApproved {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientID:  session.UserID,
		DoctorID:   request.DoctorID,
		HospitalID: doctor.HospitalID,
		Date:       request.Date,
		Time:       request.Time,
		Reason:     request.Reason,
		Status:     constvars.AppointmentStatusPending,
	}
	appointment.CreatedAt = now
	appointment.UpdatedAt = now

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	err = uc.NotificationService.Publish(ctx, &notifications.NotificationMessage{
		Type:      constvars.NotificationTypeAppointment,
		Recipient: doctor.Email,
		Data: map[string]string{
			"appointmentId": appointmentID,
			"date":          appointment.Date,
			"time":          appointment.Time,
		},
	})
	if err != nil {
		uc.Log.Warn("appointment notification publish failed",
			zap.String("appointment_id", appointmentID),
			zap.Error(err),
		)
	}

	response := buildAppointmentResponse(appointment)
	return &response, nil
}

func (uc *appointmentUsecase) GetAppointment(ctx context.Context, session *models.Session, appointmentID string) (*responses.Appointment, error) {
	appointment, err := uc.findVisible(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}
	response := buildAppointmentResponse(appointment)
	return &response, nil
}

// ListAppointments scopes the listing to the caller: patients see bookings
// they made, doctors the ones on their calendar, super admins everything.
func (uc *appointmentUsecase) ListAppointments(ctx context.Context, session *models.Session, status string, pagination requests.Pagination) ([]responses.Appointment, int, error) {
	filter := visibilityFilter(session)
	filter.Status = status

	appointmentModels, total, err := uc.AppointmentRepository.FindByFilter(ctx, filter, pagination.Page, pagination.PageSize)
	if err != nil {
		return nil, 0, err
	}

	appointmentList := make([]responses.Appointment, 0, len(appointmentModels))
	for _, appointment := range appointmentModels {
		appointmentList = append(appointmentList, buildAppointmentResponse(&appointment))
	}
	return appointmentList, total, nil
}

func (uc *appointmentUsecase) UpdateAppointment(ctx context.Context, session *models.Session, appointmentID string, request *requests.UpdateAppointment) (*responses.Appointment, error) {
	appointment, err := uc.findVisible(ctx, session, appointmentID)
	if err != nil {
		return nil, err
	}

	appointment.Status = request.Status
	if request.Notes != "" {
		appointment.Notes = request.Notes
	}
	appointment.UpdatedAt = time.Now()

	if err := uc.AppointmentRepository.UpdateAppointment(ctx, appointment); err != nil {
		return nil, err
	}

	response := buildAppointmentResponse(appointment)
	return &response, nil
}

// CancelAppointment drops a booking the doctor has not confirmed yet. Once
// confirmed, the record stays and only flips to cancelled.
func (uc *appointmentUsecase) CancelAppointment(ctx context.Context, session *models.Session, appointmentID string) error {
	appointment, err := uc.findVisible(ctx, session, appointmentID)
	if err != nil {
		return err
	}

	if appointment.Status == constvars.AppointmentStatusPending {
		return uc.AppointmentRepository.DeleteByID(ctx, appointment.ID)
	}

	appointment.Status = constvars.AppointmentStatusCancelled
	appointment.UpdatedAt = time.Now()
	return uc.AppointmentRepository.UpdateAppointment(ctx, appointment)
}

// findVisible loads an appointment and applies the caller's visibility.
// Out-of-scope appointments read as not found, not forbidden.
func (uc *appointmentUsecase) findVisible(ctx context.Context, session *models.Session, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}

	filter := visibilityFilter(session)
	if filter.PatientID != "" && appointment.PatientID != filter.PatientID {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	if filter.DoctorID != "" && appointment.DoctorID != filter.DoctorID {
		return nil, exceptions.ErrAppointmentNotExist(nil)
	}
	return appointment, nil
}

func visibilityFilter(session *models.Session) AppointmentFilter {
	switch session.Role {
	case constvars.RoleTypePatient:
		return AppointmentFilter{PatientID: session.UserID}
	case constvars.RoleTypeDoctor:
		return AppointmentFilter{DoctorID: session.UserID}
	}
	// super_admin
	return AppointmentFilter{}
}

func buildAppointmentResponse(appointment *models.Appointment) responses.Appointment {
	return responses.Appointment{
		ID:         appointment.ID,
		PatientID:  appointment.PatientID,
		DoctorID:   appointment.DoctorID,
		HospitalID: appointment.HospitalID,
		Date:       appointment.Date,
		Time:       appointment.Time,
		Reason:     appointment.Reason,
		Notes:      appointment.Notes,
		Status:     appointment.Status,
		CreatedAt:  appointment.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  appointment.UpdatedAt.Format(time.RFC3339),
	}
}
