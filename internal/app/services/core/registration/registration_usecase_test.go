package registration

import (
	"context"
	"referral-service/internal/app/config"
	"referral-service/internal/app/models"
	"referral-service/internal/app/services/shared/notifications"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/exceptions"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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
	return args.Get(0).([]models.User), args.Int(1), args.Error(2)
}

func (m *MockUserRepository) FindByHospitalAndStatus(ctx context.Context, hospitalID, role, status string, page, pageSize int) ([]models.User, int, error) {
	args := m.Called(ctx, hospitalID, role, status, page, pageSize)
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

type MockHospitalRepository struct {
	mock.Mock
}

func (m *MockHospitalRepository) CreateHospital(ctx context.Context, hospitalModel *models.Hospital) (string, error) {
	args := m.Called(ctx, hospitalModel)
	return args.String(0), args.Error(1)
}

func (m *MockHospitalRepository) FindByID(ctx context.Context, hospitalID string) (*models.Hospital, error) {
	args := m.Called(ctx, hospitalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Hospital), args.Error(1)
}

func (m *MockHospitalRepository) FindByStatus(ctx context.Context, status string, page, pageSize int) ([]models.Hospital, int, error) {
	args := m.Called(ctx, status, page, pageSize)
	return args.Get(0).([]models.Hospital), args.Int(1), args.Error(2)
}

func (m *MockHospitalRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *MockHospitalRepository) UpdateHospital(ctx context.Context, hospital *models.Hospital) error {
	args := m.Called(ctx, hospital)
	return args.Error(0)
}

func (m *MockHospitalRepository) DeleteByID(ctx context.Context, hospitalID string) error {
	args := m.Called(ctx, hospitalID)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) CreateSession(ctx context.Context, sessionID string, session *models.Session, exp time.Duration) error {
	args := m.Called(ctx, sessionID, session, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockRedisRepository) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockRedisRepository) SaveDraft(ctx context.Context, draft *models.RegistrationDraft, exp time.Duration) error {
	args := m.Called(ctx, draft, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) GetDraft(ctx context.Context, draftID string) (*models.RegistrationDraft, error) {
	args := m.Called(ctx, draftID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RegistrationDraft), args.Error(1)
}

func (m *MockRedisRepository) DeleteDraft(ctx context.Context, draftID string) error {
	args := m.Called(ctx, draftID)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Publish(ctx context.Context, message *notifications.NotificationMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

type usecaseMocks struct {
	users         *MockUserRepository
	hospitals     *MockHospitalRepository
	redis         *MockRedisRepository
	notifications *MockNotificationService
}

func newTestUsecase() (RegistrationUsecase, *usecaseMocks) {
	mocks := &usecaseMocks{
		users:         new(MockUserRepository),
		hospitals:     new(MockHospitalRepository),
		redis:         new(MockRedisRepository),
		notifications: new(MockNotificationService),
	}
	internalConfig := &config.InternalConfig{
		App: config.App{RegistrationDraftTTLInMinute: 60},
	}
	uc := NewRegistrationUsecase(
		mocks.users,
		mocks.hospitals,
		mocks.redis,
		mocks.notifications,
		internalConfig,
		zap.NewNop(),
	)
	return uc, mocks
}

func doctorDraft(nextStep int) *models.RegistrationDraft {
	return &models.RegistrationDraft{
		ID:       "draft-1",
		Role:     constvars.RoleTypeDoctor,
		NextStep: nextStep,
		Fields: map[string]string{
			FieldRole:           constvars.RoleTypeDoctor,
			FieldFirstName:      "Greg",
			FieldLastName:       "House",
			FieldEmail:          "greg@example.com",
			FieldPhone:          "08123456789",
			FieldDateOfBirth:    "1970-06-11",
			FieldGender:         "male",
			FieldAddress:        "221B Baker St",
			FieldHospitalID:     "507f1f77bcf86cd799439011",
			FieldSpecialization: "Diagnostics",
			FieldLicenseNumber:  "MD-12345",
			FieldExperience:     "20",
			FieldQualification:  "MD",
		},
	}
}

func TestRegistrationUsecase_Begin(t *testing.T) {
	t.Run("creates a draft for a valid role", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.redis.On("SaveDraft", mock.Anything, mock.AnythingOfType("*models.RegistrationDraft"), time.Hour).Return(nil)

		result, err := uc.Begin(context.Background(), &requests.BeginRegistration{Role: "patient"})

		assert.NoError(t, err)
		assert.NotEmpty(t, result.DraftID)
		assert.Equal(t, "patient", result.Role)
		assert.Equal(t, StepPersonalInfo, result.NextStep)
		assert.Equal(t, []int{StepProfessionalInfo}, result.OptionalSteps)
		mocks.redis.AssertExpectations(t)
	})

	t.Run("rejects an unknown role", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.Begin(context.Background(), &requests.BeginRegistration{Role: "astronaut"})

		assert.Error(t, err)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestRegistrationUsecase_SubmitStep(t *testing.T) {
	t.Run("expired draft reads as gone", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		mocks.redis.On("GetDraft", mock.Anything, "missing").Return(nil, nil)

		_, err := uc.SubmitStep(context.Background(), "missing", StepPersonalInfo, &requests.SubmitStep{Fields: map[string]string{}})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusGone, customErr.StatusCode)
	})

	t.Run("step out of range", func(t *testing.T) {
		uc, _ := newTestUsecase()

		_, err := uc.SubmitStep(context.Background(), "draft-1", 4, &requests.SubmitStep{Fields: map[string]string{}})
		assert.Error(t, err)

		_, err = uc.SubmitStep(context.Background(), "draft-1", -1, &requests.SubmitStep{Fields: map[string]string{}})
		assert.Error(t, err)
	})

	t.Run("skipping ahead is blocked", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := doctorDraft(StepPersonalInfo)
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)

		_, err := uc.SubmitStep(context.Background(), "draft-1", StepPassword, &requests.SubmitStep{Fields: map[string]string{}})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("field errors stop advancement", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := &models.RegistrationDraft{
			ID:       "draft-1",
			Role:     constvars.RoleTypePatient,
			NextStep: StepPersonalInfo,
			Fields:   map[string]string{FieldRole: constvars.RoleTypePatient},
		}
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)

		result, err := uc.SubmitStep(context.Background(), "draft-1", StepPersonalInfo, &requests.SubmitStep{
			Fields: map[string]string{
				FieldLastName:    "Doe",
				FieldEmail:       "jane@example.com",
				FieldPhone:       "0812",
				FieldDateOfBirth: "1990-01-01",
				FieldGender:      "female",
				FieldAddress:     "1 Main St",
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, StepPersonalInfo, result.NextStep)
		assert.Len(t, result.FieldErrors, 1)
		assert.Equal(t, FieldFirstName, result.FieldErrors[0].Field)
		assert.Equal(t, "First name is required", result.FieldErrors[0].Message)
		mocks.redis.AssertNotCalled(t, "SaveDraft", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("a passing step advances the draft", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := &models.RegistrationDraft{
			ID:       "draft-1",
			Role:     constvars.RoleTypePatient,
			NextStep: StepPersonalInfo,
			Fields:   map[string]string{FieldRole: constvars.RoleTypePatient},
		}
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)
		mocks.redis.On("SaveDraft", mock.Anything, mock.AnythingOfType("*models.RegistrationDraft"), time.Hour).Return(nil)

		result, err := uc.SubmitStep(context.Background(), "draft-1", StepPersonalInfo, &requests.SubmitStep{
			Fields: map[string]string{
				FieldFirstName:   "Jane",
				FieldLastName:    "Doe",
				FieldEmail:       "jane@example.com",
				FieldPhone:       "0812",
				FieldDateOfBirth: "1990-01-01",
				FieldGender:      "female",
				FieldAddress:     "1 Main St",
			},
		})

		assert.NoError(t, err)
		assert.Empty(t, result.FieldErrors)
		assert.Equal(t, StepProfessionalInfo, result.NextStep)
		assert.False(t, result.Completed)
	})

	t.Run("re-submitting a passed step keeps the position", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := doctorDraft(StepPassword)
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)
		mocks.redis.On("SaveDraft", mock.Anything, mock.AnythingOfType("*models.RegistrationDraft"), time.Hour).Return(nil)

		result, err := uc.SubmitStep(context.Background(), "draft-1", StepPersonalInfo, &requests.SubmitStep{
			Fields: map[string]string{FieldFirstName: "Gregory"},
		})

		assert.NoError(t, err)
		assert.Equal(t, StepPassword, result.NextStep)
	})

	t.Run("changing the role resets the draft", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := doctorDraft(StepPassword)
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)
		mocks.redis.On("SaveDraft", mock.Anything, mock.MatchedBy(func(d *models.RegistrationDraft) bool {
			return d.Role == constvars.RoleTypePatient &&
				d.NextStep == StepPersonalInfo &&
				len(d.Fields) == 1 &&
				d.Fields[FieldRole] == constvars.RoleTypePatient
		}), time.Hour).Return(nil)

		result, err := uc.SubmitStep(context.Background(), "draft-1", StepRole, &requests.SubmitStep{
			Fields: map[string]string{FieldRole: constvars.RoleTypePatient},
		})

		assert.NoError(t, err)
		assert.Equal(t, StepPersonalInfo, result.NextStep)
		mocks.redis.AssertExpectations(t)
	})

	t.Run("password step completes a valid doctor draft", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := doctorDraft(StepPassword)
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)
		mocks.users.On("FindByEmail", mock.Anything, "greg@example.com").Return(nil, nil)
		mocks.hospitals.On("FindByID", mock.Anything, "507f1f77bcf86cd799439011").Return(&models.Hospital{
			ID:     "507f1f77bcf86cd799439011",
			Name:   "General Hospital",
			Status: constvars.HospitalStatusApproved,
		}, nil)
		mocks.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.Role == constvars.RoleTypeDoctor &&
				u.ApprovalStatus == constvars.ApprovalStatusPending &&
				u.Email == "greg@example.com" &&
				u.Password != "supersecret1"
		})).Return("user-1", nil)
		mocks.notifications.On("Publish", mock.Anything, mock.MatchedBy(func(msg *notifications.NotificationMessage) bool {
			return msg.Type == constvars.NotificationTypeRegistration && msg.Recipient == "greg@example.com"
		})).Return(nil)
		mocks.redis.On("DeleteDraft", mock.Anything, "draft-1").Return(nil)

		result, err := uc.SubmitStep(context.Background(), "draft-1", StepPassword, &requests.SubmitStep{
			Fields: map[string]string{
				FieldPassword:        "supersecret1",
				FieldConfirmPassword: "supersecret1",
			},
		})

		assert.NoError(t, err)
		assert.True(t, result.Completed)
		assert.Empty(t, result.FieldErrors)
		mocks.users.AssertExpectations(t)
		mocks.notifications.AssertExpectations(t)
		mocks.redis.AssertExpectations(t)
	})

	t.Run("patients are approved immediately", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := &models.RegistrationDraft{
			ID:       "draft-2",
			Role:     constvars.RoleTypePatient,
			NextStep: StepPassword,
			Fields: map[string]string{
				FieldRole:        constvars.RoleTypePatient,
				FieldFirstName:   "Jane",
				FieldLastName:    "Doe",
				FieldEmail:       "jane@example.com",
				FieldPhone:       "0812",
				FieldDateOfBirth: "1990-01-01",
				FieldGender:      "female",
				FieldAddress:     "1 Main St",
			},
		}
		mocks.redis.On("GetDraft", mock.Anything, "draft-2").Return(draft, nil)
		mocks.users.On("FindByEmail", mock.Anything, "jane@example.com").Return(nil, nil)
		mocks.users.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *models.User) bool {
			return u.ApprovalStatus == constvars.ApprovalStatusApproved
		})).Return("user-2", nil)
		mocks.notifications.On("Publish", mock.Anything, mock.Anything).Return(nil)
		mocks.redis.On("DeleteDraft", mock.Anything, "draft-2").Return(nil)

		result, err := uc.SubmitStep(context.Background(), "draft-2", StepPassword, &requests.SubmitStep{
			Fields: map[string]string{
				FieldPassword:        "supersecret1",
				FieldConfirmPassword: "supersecret1",
			},
		})

		assert.NoError(t, err)
		assert.True(t, result.Completed)
	})

	t.Run("duplicate email blocks completion", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := doctorDraft(StepPassword)
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)
		mocks.users.On("FindByEmail", mock.Anything, "greg@example.com").Return(&models.User{ID: "existing"}, nil)

		_, err := uc.SubmitStep(context.Background(), "draft-1", StepPassword, &requests.SubmitStep{
			Fields: map[string]string{
				FieldPassword:        "supersecret1",
				FieldConfirmPassword: "supersecret1",
			},
		})

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		mocks.users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	})

	t.Run("mismatched passwords come back as a field error", func(t *testing.T) {
		uc, mocks := newTestUsecase()
		draft := doctorDraft(StepPassword)
		mocks.redis.On("GetDraft", mock.Anything, "draft-1").Return(draft, nil)

		result, err := uc.SubmitStep(context.Background(), "draft-1", StepPassword, &requests.SubmitStep{
			Fields: map[string]string{
				FieldPassword:        "supersecret1",
				FieldConfirmPassword: "different99",
			},
		})

		assert.NoError(t, err)
		assert.False(t, result.Completed)
		assert.Len(t, result.FieldErrors, 1)
		assert.Equal(t, "Passwords must match", result.FieldErrors[0].Message)
	})
}
