package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/dto"
	adminservice "github.com/boostpanel/boostpanel/internal/service/adminservice"
	adminsession "github.com/boostpanel/boostpanel/internal/service/adminsession"
	orderservice "github.com/boostpanel/boostpanel/internal/service/orderservice"
	"github.com/boostpanel/boostpanel/pkg/auth"
)

const (
	adminID  = int64(100)
	adminKey = "super-secret-admin-key"
)

func NewMock(t *testing.T) (*AdminHandler, *MockService, *MockSessions) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	sessions := NewMockSessions(ctrl)

	hashService := &auth.HashService{}
	keyHash, err := hashService.HashKey(adminKey)
	assert.NoError(t, err)

	handler := New(service, sessions, auth.NewJWTService("test-secret"), hashService, keyHash)
	defer ctrl.Finish()
	return handler, service, sessions
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), auth.ActorIDKey, adminID))
}

func withOrderID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("orderID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestLoginHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful login",
			body: `{"actor_id":100,"key":"super-secret-admin-key"}`,
			prepareMock: func() {
				service.EXPECT().Authorized(adminID).Return(true)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Wrong key",
			body: `{"actor_id":100,"key":"guessed-key"}`,
			prepareMock: func() {
				service.EXPECT().Authorized(adminID).Return(true)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name: "Actor not on the privileged list",
			body: `{"actor_id":200,"key":"super-secret-admin-key"}`,
			prepareMock: func() {
				service.EXPECT().Authorized(int64(200)).Return(false)
			},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Invalid credentials",
		},
		{
			name:          "Invalid request payload",
			body:          `{broken`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request payload",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AdminLoginResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.NotEmpty(t, body.Token)
			}
		})
	}
}

func TestGetOrdersHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("All orders", func(t *testing.T) {
		service.EXPECT().
			ListAll(gomock.Any(), adminID, listLimit).
			Return([]domain.Order{{ID: 7, Status: domain.OrderStatusPending}}, nil)

		r := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/orders", http.NoBody))
		w := httptest.NewRecorder()

		handler.GetOrders(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Pending only", func(t *testing.T) {
		service.EXPECT().
			ListPending(gomock.Any(), adminID).
			Return([]domain.Order{{ID: 7, Status: domain.OrderStatusPending}}, nil)

		r := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/orders?pending=true", http.NoBody))
		w := httptest.NewRecorder()

		handler.GetOrders(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Actor not privileged", func(t *testing.T) {
		service.EXPECT().
			ListAll(gomock.Any(), adminID, listLimit).
			Return(nil, adminservice.ErrUnauthorized)

		r := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/orders", http.NoBody))
		w := httptest.NewRecorder()

		handler.GetOrders(w, r)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestCancelOrderHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		orderID      string
		prepareMock  func()
		expectedCode int
	}{
		{
			name:    "Successful cancel",
			orderID: "7",
			prepareMock: func() {
				service.EXPECT().
					ForceCancel(gomock.Any(), adminID, int64(7)).
					Return(&domain.Order{ID: 7, Status: domain.OrderStatusCancelled}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "Invalid order id",
			orderID:      "abc",
			prepareMock:  func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:    "Unknown order",
			orderID: "7",
			prepareMock: func() {
				service.EXPECT().
					ForceCancel(gomock.Any(), adminID, int64(7)).
					Return(nil, orderservice.ErrOrderNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:    "Order already terminal",
			orderID: "7",
			prepareMock: func() {
				service.EXPECT().
					ForceCancel(gomock.Any(), adminID, int64(7)).
					Return(nil, orderservice.ErrInvalidTransition)
			},
			expectedCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/admin/orders/7/cancel", http.NoBody)
			r = asAdmin(withOrderID(r, tt.orderID))
			w := httptest.NewRecorder()

			handler.CancelOrder(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAdjustHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	tests := []struct {
		name         string
		body         string
		prepareMock  func()
		expectedCode int
	}{
		{
			name: "Successful credit",
			body: `{"account_id":1,"delta":25,"note":"compensation"}`,
			prepareMock: func() {
				service.EXPECT().
					ManualAdjust(gomock.Any(), adminID, int64(1), int64(25), "compensation").
					Return(&domain.LedgerEntry{Delta: 25, Reason: domain.ReasonAdminCredit, Note: "compensation"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Zero delta",
			body: `{"account_id":1,"delta":0}`,
			prepareMock: func() {
				service.EXPECT().
					ManualAdjust(gomock.Any(), adminID, int64(1), int64(0), "").
					Return(nil, adminservice.ErrInvalidDelta)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name: "Internal server error",
			body: `{"account_id":1,"delta":25}`,
			prepareMock: func() {
				service.EXPECT().
					ManualAdjust(gomock.Any(), adminID, int64(1), int64(25), "").
					Return(nil, errors.New("error"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/adjust", bytes.NewBufferString(tt.body)))
			w := httptest.NewRecorder()

			handler.Adjust(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}

func TestAddChannelHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Successful add", func(t *testing.T) {
		service.EXPECT().
			AddChannel(gomock.Any(), adminID, &domain.Channel{ID: "-100500", Name: "Crypto News", Username: "cryptonews", RewardPoints: 10}).
			Return(&domain.Channel{ID: "-100500", Name: "Crypto News", Username: "cryptonews", RewardPoints: 10, Active: true}, nil)

		body := `{"id":"-100500","name":"Crypto News","username":"cryptonews","reward_points":10}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/channels", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()

		handler.AddChannel(w, r)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		body := `{"username":"cryptonews"}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/channels", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()

		handler.AddChannel(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Channel id and name are required")
	})
}

func TestBroadcastHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	t.Run("Successful broadcast", func(t *testing.T) {
		service.EXPECT().
			Broadcast(gomock.Any(), adminID, "maintenance tonight").
			Return(&adminservice.BroadcastReport{Total: 3, Sent: 2, Failed: 1}, nil)

		body := `{"body":"maintenance tonight"}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/broadcast", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()

		handler.Broadcast(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var report dto.BroadcastResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&report)
		assert.Equal(t, 3, report.Total)
		assert.Equal(t, 2, report.Sent)
		assert.Equal(t, 1, report.Failed)
	})

	t.Run("Empty message body", func(t *testing.T) {
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/broadcast", bytes.NewBufferString(`{"body":""}`)))
		w := httptest.NewRecorder()

		handler.Broadcast(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Message body is required")
	})
}

func TestSessionHandlers(t *testing.T) {
	handler, _, sessions := NewMock(t)

	t.Run("Current state", func(t *testing.T) {
		sessions.EXPECT().Current(adminID).Return(adminsession.AwaitingBroadcastBody)

		r := asAdmin(httptest.NewRequest(http.MethodGet, "/api/admin/session", http.NoBody))
		w := httptest.NewRecorder()

		handler.GetSession(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.SessionStateResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, string(adminsession.AwaitingBroadcastBody), body.State)
	})

	t.Run("Accepted event", func(t *testing.T) {
		sessions.EXPECT().
			Step(adminID, adminsession.EventBroadcast).
			Return(adminsession.AwaitingBroadcastBody, true)

		body := `{"event":"broadcast"}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/session", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()

		handler.SessionEvent(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.SessionStateResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.True(t, resp.Accepted)
	})

	t.Run("Out-of-band event resets to idle", func(t *testing.T) {
		sessions.EXPECT().
			Step(adminID, adminsession.EventInput).
			Return(adminsession.Idle, false)

		body := `{"event":"input"}`
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/session", bytes.NewBufferString(body)))
		w := httptest.NewRecorder()

		handler.SessionEvent(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.SessionStateResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&resp)
		assert.Equal(t, string(adminsession.Idle), resp.State)
		assert.False(t, resp.Accepted)
	})

	t.Run("Missing event", func(t *testing.T) {
		r := asAdmin(httptest.NewRequest(http.MethodPost, "/api/admin/session", bytes.NewBufferString(`{}`)))
		w := httptest.NewRecorder()

		handler.SessionEvent(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
