package accounts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/dto"
	accountservice "github.com/boostpanel/boostpanel/internal/service/accountservice"
)

func NewMock(t *testing.T) (*AccountHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withAccountID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("accountID", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	handler, service := NewMock(t)

	account := &domain.Account{
		ID:           1,
		Username:     "newuser",
		ReferralCode: "79927398713",
		JoinedAt:     time.Now(),
	}

	tests := []struct {
		name          string
		body          string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name: "Successful registration",
			body: `{"id":1,"username":"newuser","referral_code":"79927398713"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), int64(1), "newuser", "", "", "79927398713").
					Return(account, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid request payload",
			body:          `{broken`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request payload",
		},
		{
			name:          "Missing account id",
			body:          `{"username":"newuser"}`,
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Account id is required",
		},
		{
			name: "Internal server error",
			body: `{"id":1,"username":"newuser"}`,
			prepareMock: func() {
				service.EXPECT().
					Register(gomock.Any(), int64(1), "newuser", "", "", "").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/accounts/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(1), body.ID)
				assert.Equal(t, "79927398713", body.ReferralCode)
			}
		})
	}
}

func TestGetBalanceHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful balance retrieval",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(&domain.Account{ID: 1, Username: "someone", Balance: 120}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Invalid account id",
			accountID:     "abc",
			prepareMock:   func() {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid account id",
		},
		{
			name:      "Unknown account",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(nil, accountservice.ErrAccountNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Internal server error",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					Get(gomock.Any(), int64(1)).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/accounts/1", http.NoBody)
			r = withAccountID(r, tt.accountID)
			w := httptest.NewRecorder()

			handler.GetBalance(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.AccountResponseDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Equal(t, int64(120), body.Balance)
			}
		})
	}
}

func TestGetStatementHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedCode  int
		expectedError string
		expectedLen   int
	}{
		{
			name: "Successful statement retrieval",
			prepareMock: func() {
				service.EXPECT().
					Statement(gomock.Any(), int64(1)).
					Return([]domain.LedgerEntry{
						{Delta: 10, Reason: domain.ReasonChannelReward, Note: "channel:-100500", CreatedAt: time.Now()},
						{Delta: -50, Reason: domain.ReasonOrderDebit, Note: "followers x1000", CreatedAt: time.Now()},
					}, nil)
			},
			expectedCode: http.StatusOK,
			expectedLen:  2,
		},
		{
			name: "No entries",
			prepareMock: func() {
				service.EXPECT().
					Statement(gomock.Any(), int64(1)).
					Return([]domain.LedgerEntry{}, nil)
			},
			expectedCode:  http.StatusNoContent,
			expectedError: "No data available",
		},
		{
			name: "Internal server error",
			prepareMock: func() {
				service.EXPECT().
					Statement(gomock.Any(), int64(1)).
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/accounts/1/statement", http.NoBody)
			r = withAccountID(r, "1")
			w := httptest.NewRecorder()

			handler.GetStatement(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body []dto.StatementEntryDTO
				_ = json.NewDecoder(w.Body).Decode(&body)
				assert.Len(t, body, tt.expectedLen)
			}
		})
	}
}
