package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/community-api/internal/api/middleware"
	"github.com/vietanh2810/community-api/internal/domain"
)

type mockUserService struct{ mock.Mock }

func (m *mockUserService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockUserService) ChangeRole(ctx context.Context, actor domain.User, userID uint, role domain.Role) (domain.User, error) {
	args := m.Called(ctx, actor, userID, role)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

type mockEventService struct{ mock.Mock }

func (m *mockEventService) CreateEvent(ctx context.Context, event domain.Event, creator domain.User) (domain.Event, error) {
	args := m.Called(ctx, event, creator)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) GetEvent(ctx context.Context, id uint) (domain.EventDetails, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.EventDetails), args.Error(1)
}

func (m *mockEventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *mockEventService) DeleteEvent(ctx context.Context, id uint, actor domain.User) error {
	return m.Called(ctx, id, actor).Error(0)
}

func (m *mockEventService) CompleteEvent(ctx context.Context, id uint, actor domain.User) (domain.Event, error) {
	args := m.Called(ctx, id, actor)
	return args.Get(0).(domain.Event), args.Error(1)
}

func (m *mockEventService) GetRegistrations(ctx context.Context, id uint, actor domain.User) ([]domain.Registration, error) {
	args := m.Called(ctx, id, actor)
	return args.Get(0).([]domain.Registration), args.Error(1)
}

type mockRegistrationService struct{ mock.Mock }

func (m *mockRegistrationService) Register(ctx context.Context, req domain.RegistrationRequest) (domain.Registration, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Registration), args.Error(1)
}

func (m *mockRegistrationService) Cancel(ctx context.Context, eventID, userID uint) error {
	return m.Called(ctx, eventID, userID).Error(0)
}

type mockShortCodeService struct{ mock.Mock }

func (m *mockShortCodeService) Resolve(ctx context.Context, code string) (domain.Event, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Event), args.Error(1)
}

type mockPaymentService struct{ mock.Mock }

func (m *mockPaymentService) Confirm(ctx context.Context, req domain.PaymentConfirmation, userID *uint) (domain.PaymentReceipt, error) {
	args := m.Called(ctx, req, userID)
	return args.Get(0).(domain.PaymentReceipt), args.Error(1)
}

type mockPointsService struct{ mock.Mock }

func (m *mockPointsService) Adjust(ctx context.Context, actor domain.User, userID uint, amount int, description string) (int, error) {
	args := m.Called(ctx, actor, userID, amount, description)
	return args.Int(0), args.Error(1)
}

func (m *mockPointsService) History(ctx context.Context, userID uint) ([]domain.PointsLedgerEntry, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.PointsLedgerEntry), args.Error(1)
}

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestRouter authenticates every request as userID, or leaves it anonymous when userID is 0.
func newTestRouter(userID uint) *gin.Engine {
	r := gin.New()
	r.Use(func(ctx *gin.Context) {
		if userID != 0 {
			middleware.SetUserID(ctx, userID)
		}
		ctx.Next()
	})

	return r
}

func doJSON(t *testing.T, r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "handler-test")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func uintPtr(v uint) *uint { return &v }
