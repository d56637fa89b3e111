package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"referral-service/internal/app/config"
	"referral-service/internal/app/models"
	"referral-service/internal/pkg/constvars"
	"referral-service/internal/pkg/utils"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

const testJWTSecret = "test-secret"

func newGuardedRouter(mockRedis *MockRedisRepository, allowedRoles ...models.Role) *chi.Mux {
	internalConfig := &config.InternalConfig{
		JWT: config.JWT{Secret: testJWTSecret},
	}
	m := NewMiddlewares(mockRedis, internalConfig, zap.NewNop())

	router := chi.NewRouter()
	router.Use(m.Authenticate)
	router.With(m.RequireRoles(allowedRoles...)).Get("/protected", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return router
}

func bearerToken(t *testing.T, sessionID string) string {
	t.Helper()
	token, err := utils.GenerateJWT(sessionID, testJWTSecret, time.Hour)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestRequireRoles(t *testing.T) {
	t.Run("no token redirects to login", func(t *testing.T) {
		router := newGuardedRouter(new(MockRedisRepository))

		req := httptest.NewRequest("GET", "/protected", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteLogin, rec.Header().Get(constvars.HeaderLocation))
	})

	t.Run("garbage token redirects to login", func(t *testing.T) {
		router := newGuardedRouter(new(MockRedisRepository))

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteLogin, rec.Header().Get(constvars.HeaderLocation))
	})

	t.Run("dead session redirects to login", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(nil, nil)
		router := newGuardedRouter(mockRedis)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "session-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteLogin, rec.Header().Get(constvars.HeaderLocation))
	})

	t.Run("approved session passes an unrestricted route", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			UserID:         "user-1",
			Role:           constvars.RoleTypePatient,
			ApprovalStatus: constvars.ApprovalStatusApproved,
		}, nil)
		router := newGuardedRouter(mockRedis)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "session-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("role mismatch redirects to dashboard", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			UserID:         "user-1",
			Role:           constvars.RoleTypePatient,
			ApprovalStatus: constvars.ApprovalStatusApproved,
		}, nil)
		router := newGuardedRouter(mockRedis, models.RoleSuperAdmin)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "session-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusSeeOther, rec.Code)
		assert.Equal(t, constvars.RouteDashboard, rec.Header().Get(constvars.HeaderLocation))
	})

	t.Run("allowed role reaches the handler", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			UserID:         "admin-1",
			Role:           constvars.RoleTypeSuperAdmin,
			ApprovalStatus: constvars.ApprovalStatusApproved,
		}, nil)
		router := newGuardedRouter(mockRedis, models.RoleSuperAdmin)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "session-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
	})

	t.Run("pending account gets the approval-status view", func(t *testing.T) {
		mockRedis := new(MockRedisRepository)
		mockRedis.On("GetSession", mock.Anything, "session-1").Return(&models.Session{
			UserID:         "doc-1",
			Role:           constvars.RoleTypeDoctor,
			ApprovalStatus: constvars.ApprovalStatusPending,
		}, nil)
		router := newGuardedRouter(mockRedis)

		req := httptest.NewRequest("GET", "/protected", nil)
		req.Header.Set(constvars.HeaderAuthorization, bearerToken(t, "session-1"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, constvars.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), constvars.ApprovalStatusPending)
	})
}
