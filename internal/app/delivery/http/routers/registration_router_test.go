package routers

import (
	"bytes"
	"context"
	"net/http/httptest"
	"referral-service/internal/app/delivery/http/controllers"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/dto/requests"
	"referral-service/internal/pkg/dto/responses"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockRegistrationUsecase struct {
	mock.Mock
}

func (m *MockRegistrationUsecase) Begin(ctx context.Context, request *requests.BeginRegistration) (*responses.BeginRegistration, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.BeginRegistration), args.Error(1)
}

func (m *MockRegistrationUsecase) SubmitStep(ctx context.Context, draftID string, step int, request *requests.SubmitStep) (*responses.SubmitStep, error) {
	args := m.Called(ctx, draftID, step, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.SubmitStep), args.Error(1)
}

func newRegistrationRouter(mockUsecase *MockRegistrationUsecase) *chi.Mux {
	registrationController := controllers.NewRegistrationController(zap.NewNop(), mockUsecase)
	router := chi.NewRouter()
	attachRegistrationRoutes(router, registrationController)
	return router
}

func TestRegistrationRoutes(t *testing.T) {
	t.Run("begin returns the new draft", func(t *testing.T) {
		mockUsecase := new(MockRegistrationUsecase)
		mockUsecase.On("Begin", mock.Anything, mock.MatchedBy(func(r *requests.BeginRegistration) bool {
			return r.Role == "doctor"
		})).Return(&responses.BeginRegistration{
			DraftID:  "draft-1",
			Role:     "doctor",
			NextStep: 1,
		}, nil)
		router := newRegistrationRouter(mockUsecase)

		body, _ := json.Marshal(requests.BeginRegistration{Role: "Doctor"})
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusCreated, rec.Code)

		var response responses.ResponseDTO
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.True(t, response.Success)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("begin without a role is a 400", func(t *testing.T) {
		mockUsecase := new(MockRegistrationUsecase)
		router := newRegistrationRouter(mockUsecase)

		body, _ := json.Marshal(requests.BeginRegistration{})
		req := httptest.NewRequest("POST", "/", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "Begin", mock.Anything, mock.Anything)
	})

	t.Run("a passing step advances", func(t *testing.T) {
		mockUsecase := new(MockRegistrationUsecase)
		mockUsecase.On("SubmitStep", mock.Anything, "draft-1", 1, mock.Anything).Return(&responses.SubmitStep{
			DraftID:  "draft-1",
			Step:     1,
			NextStep: 2,
		}, nil)
		router := newRegistrationRouter(mockUsecase)

		body, _ := json.Marshal(requests.SubmitStep{Fields: map[string]string{"firstName": "Jane"}})
		req := httptest.NewRequest("POST", "/draft-1/steps/1", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("field errors come back as a 400 with the fields named", func(t *testing.T) {
		mockUsecase := new(MockRegistrationUsecase)
		mockUsecase.On("SubmitStep", mock.Anything, "draft-1", 1, mock.Anything).Return(&responses.SubmitStep{
			DraftID:  "draft-1",
			Step:     1,
			NextStep: 1,
			FieldErrors: []responses.FieldError{
				{Field: "firstName", Message: "First name is required"},
			},
		}, nil)
		router := newRegistrationRouter(mockUsecase)

		body, _ := json.Marshal(requests.SubmitStep{Fields: map[string]string{}})
		req := httptest.NewRequest("POST", "/draft-1/steps/1", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "First name is required")
	})

	t.Run("a non-numeric step is rejected before the usecase", func(t *testing.T) {
		mockUsecase := new(MockRegistrationUsecase)
		router := newRegistrationRouter(mockUsecase)

		body, _ := json.Marshal(requests.SubmitStep{Fields: map[string]string{}})
		req := httptest.NewRequest("POST", "/draft-1/steps/abc", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusBadRequest, rec.Code)
		mockUsecase.AssertNotCalled(t, "SubmitStep", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("completion returns 201", func(t *testing.T) {
		mockUsecase := new(MockRegistrationUsecase)
		mockUsecase.On("SubmitStep", mock.Anything, "draft-1", 3, mock.Anything).Return(&responses.SubmitStep{
			DraftID:   "draft-1",
			Step:      3,
			NextStep:  4,
			Completed: true,
		}, nil)
		router := newRegistrationRouter(mockUsecase)

		body, _ := json.Marshal(requests.SubmitStep{Fields: map[string]string{"password": "supersecret1", "confirmPassword": "supersecret1"}})
		req := httptest.NewRequest("POST", "/draft-1/steps/3", bytes.NewBuffer(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.RegistrationSuccess)
	})
}
