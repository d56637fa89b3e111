package appointments

import (
	"context"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/shared/notifications"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (string, error) {
	args := m.Called(ctx, appointmentModel)
	return args.String(0), args.Error(1)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByFilter(ctx context.Context, filter AppointmentFilter, page, pageSize int) ([]models.Appointment, int, error) {
	args := m.Called(ctx, filter, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Appointment), args.Int(1), args.Error(2)
}

func (m *MockAppointmentRepository) UpdateAppointment(ctx context.Context, appointment *models.Appointment) error {
	args := m.Called(ctx, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) DeleteByID(ctx context.Context, appointmentID string) error {
	args := m.Called(ctx, appointmentID)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, userModel *models.User) (string, error) {
	args := m.Called(ctx, userModel)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByRoleAndStatus(ctx context.Context, role, status string, page, pageSize int) ([]models.User, int, error) {
	args := m.Called(ctx, role, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) FindByHospitalAndStatus(ctx context.Context, hospitalID, role, status string, page, pageSize int) ([]models.User, int, error) {
	args := m.Called(ctx, hospitalID, role, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountByRoleAndStatus(ctx context.Context, role, status string) (int, error) {
	args := m.Called(ctx, role, status)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteByID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Publish(ctx context.Context, message *notifications.NotificationMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func patientSession() *models.Session {
	return &models.Session{
		UserID: "patient-1",
		Role:   constvars.RoleTypePatient,
		Email:  "patient@example.com",
	}
}

func approvedDoctor() *models.User {
	return &models.User{
		ID:             "doctor-1",
		Role:           constvars.RoleTypeDoctor,
		Email:          "doctor@example.com",
		HospitalID:     "hospital-1",
		ApprovalStatus: constvars.ApprovalStatusApproved,
	}
}

func TestBookAppointment(t *testing.T) {
	t.Run("booking an approved doctor creates a pending appointment", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		mockUsers := new(MockUserRepository)
		mockNotifications := new(MockNotificationService)
		usecase := NewAppointmentUsecase(mockAppointments, mockUsers, mockNotifications, zap.NewNop())

		mockUsers.On("FindByID", mock.Anything, "doctor-1").Return(approvedDoctor(), nil)
		mockAppointments.On("CreateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.PatientID == "patient-1" &&
				a.DoctorID == "doctor-1" &&
				a.HospitalID == "hospital-1" &&
				a.Status == constvars.AppointmentStatusPending
		})).Return("appointment-1", nil)
		mockNotifications.On("Publish", mock.Anything, mock.MatchedBy(func(msg *notifications.NotificationMessage) bool {
			return msg.Type == constvars.NotificationTypeAppointment && msg.Recipient == "doctor@example.com"
		})).Return(nil)

		result, err := usecase.BookAppointment(context.Background(), patientSession(), &requests.BookAppointment{
			DoctorID: "doctor-1",
			Date:     "2026-09-15",
			Time:     "10:30",
			Reason:   "follow-up",
		})

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", result.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, result.Status)
		mockAppointments.AssertExpectations(t)
		mockNotifications.AssertExpectations(t)
	})

	t.Run("an unapproved doctor cannot be booked", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		mockUsers := new(MockUserRepository)
		mockNotifications := new(MockNotificationService)
		usecase := NewAppointmentUsecase(mockAppointments, mockUsers, mockNotifications, zap.NewNop())

		doctor := approvedDoctor()
		doctor.ApprovalStatus = constvars.ApprovalStatusPending
		mockUsers.On("FindByID", mock.Anything, "doctor-1").Return(doctor, nil)

		result, err := usecase.BookAppointment(context.Background(), patientSession(), &requests.BookAppointment{
			DoctorID: "doctor-1",
			Date:     "2026-09-15",
			Time:     "10:30",
			Reason:   "follow-up",
		})

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
		mockAppointments.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("a full notification buffer does not fail the booking", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		mockUsers := new(MockUserRepository)
		mockNotifications := new(MockNotificationService)
		usecase := NewAppointmentUsecase(mockAppointments, mockUsers, mockNotifications, zap.NewNop())

		mockUsers.On("FindByID", mock.Anything, "doctor-1").Return(approvedDoctor(), nil)
		mockAppointments.On("CreateAppointment", mock.Anything, mock.Anything).Return("appointment-1", nil)
		mockNotifications.On("Publish", mock.Anything, mock.Anything).Return(exceptions.ErrNotificationQueueFull(nil))

		result, err := usecase.BookAppointment(context.Background(), patientSession(), &requests.BookAppointment{
			DoctorID: "doctor-1",
			Date:     "2026-09-15",
			Time:     "10:30",
			Reason:   "follow-up",
		})

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", result.ID)
	})
}

func TestAppointmentVisibility(t *testing.T) {
	stored := &models.Appointment{
		ID:        "appointment-1",
		PatientID: "patient-1",
		DoctorID:  "doctor-1",
		Status:    constvars.AppointmentStatusConfirmed,
	}

	t.Run("a patient sees their own appointment", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		usecase := NewAppointmentUsecase(mockAppointments, new(MockUserRepository), new(MockNotificationService), zap.NewNop())

		mockAppointments.On("FindByID", mock.Anything, "appointment-1").Return(stored, nil)

		result, err := usecase.GetAppointment(context.Background(), patientSession(), "appointment-1")

		assert.NoError(t, err)
		assert.Equal(t, "appointment-1", result.ID)
	})

	t.Run("another patient's appointment reads as not found", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		usecase := NewAppointmentUsecase(mockAppointments, new(MockUserRepository), new(MockNotificationService), zap.NewNop())

		mockAppointments.On("FindByID", mock.Anything, "appointment-1").Return(stored, nil)

		session := patientSession()
		session.UserID = "patient-2"
		result, err := usecase.GetAppointment(context.Background(), session, "appointment-1")

		assert.Nil(t, result)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("a doctor lists only their own calendar", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		usecase := NewAppointmentUsecase(mockAppointments, new(MockUserRepository), new(MockNotificationService), zap.NewNop())

		mockAppointments.On("FindByFilter", mock.Anything, AppointmentFilter{DoctorID: "doctor-1"}, 1, 10).
			Return([]models.Appointment{*stored}, 1, nil)

		session := &models.Session{UserID: "doctor-1", Role: constvars.RoleTypeDoctor}
		result, total, err := usecase.ListAppointments(context.Background(), session, "", requests.Pagination{Page: 1, PageSize: 10})

		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, result, 1)
	})
}

func TestCancelAppointment(t *testing.T) {
	t.Run("a pending booking is removed outright", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		usecase := NewAppointmentUsecase(mockAppointments, new(MockUserRepository), new(MockNotificationService), zap.NewNop())

		mockAppointments.On("FindByID", mock.Anything, "appointment-1").Return(&models.Appointment{
			ID:        "appointment-1",
			PatientID: "patient-1",
			Status:    constvars.AppointmentStatusPending,
		}, nil)
		mockAppointments.On("DeleteByID", mock.Anything, "appointment-1").Return(nil)

		err := usecase.CancelAppointment(context.Background(), patientSession(), "appointment-1")

		assert.NoError(t, err)
		mockAppointments.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("a confirmed booking flips to cancelled", func(t *testing.T) {
		mockAppointments := new(MockAppointmentRepository)
		usecase := NewAppointmentUsecase(mockAppointments, new(MockUserRepository), new(MockNotificationService), zap.NewNop())

		mockAppointments.On("FindByID", mock.Anything, "appointment-1").Return(&models.Appointment{
			ID:        "appointment-1",
			PatientID: "patient-1",
			Status:    constvars.AppointmentStatusConfirmed,
		}, nil)
		mockAppointments.On("UpdateAppointment", mock.Anything, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.Status == constvars.AppointmentStatusCancelled
		})).Return(nil)

		err := usecase.CancelAppointment(context.Background(), patientSession(), "appointment-1")

		assert.NoError(t, err)
		mockAppointments.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})
}
