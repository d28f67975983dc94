package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yasinhessnawi1/sharecloud/internal/appframework"
	"github.com/yasinhessnawi1/sharecloud/internal/constants"
	"github.com/yasinhessnawi1/sharecloud/internal/models"
)

// MockAppService is a mock implementation of AppServiceInterface
type MockAppService struct {
	mock.Mock
}

func (m *MockAppService) ListApps(ctx context.Context, filter string) ([]string, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppService) GetAppStatus(ctx context.Context, appID string) (*models.AppStatus, error) {
	args := m.Called(ctx, appID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AppStatus), args.Error(1)
}

func (m *MockAppService) EnableApp(ctx context.Context, appID string) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}

func (m *MockAppService) EnableAppForGroups(ctx context.Context, appID string, groups []string) error {
	args := m.Called(ctx, appID, groups)
	return args.Error(0)
}

func (m *MockAppService) DisableApp(ctx context.Context, appID string) error {
	args := m.Called(ctx, appID)
	return args.Error(0)
}

func (m *MockAppService) GetEnabledAppsForUser(ctx context.Context, user *models.User) ([]string, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockHealthChecker is a mock implementation of HealthCheckerInterface
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// ocsEnvelope mirrors the JSON rendering of an OCS response
type ocsEnvelope struct {
	OCS struct {
		Meta struct {
			Status     string `json:"status"`
			StatusCode int    `json:"statuscode"`
			Message    string `json:"message"`
		} `json:"meta"`
		Data json.RawMessage `json:"data"`
	} `json:"ocs"`
}

func newResponder() *appframework.OCSController {
	return appframework.NewOCSController("provisioning_api", appframework.DefaultCORSPolicy(), constants.OCSFormatJSON)
}

// withURLParams attaches chi route parameters to req
func withURLParams(req *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) ocsEnvelope {
	t.Helper()
	var env ocsEnvelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env), rr.Body.String())
	return env
}
