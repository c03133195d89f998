package rewards

import (
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
	rewardservice "github.com/boostpanel/boostpanel/internal/service/rewardservice"
)

func NewMock(t *testing.T) (*RewardHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func withParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetChannelsHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful channel listing", func(t *testing.T) {
		service.EXPECT().Channels(gomock.Any()).Return([]domain.Channel{
			{ID: "-100500", Name: "Crypto News", Username: "cryptonews", RewardPoints: 10, Active: true},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/channels", http.NoBody)
		w := httptest.NewRecorder()

		handler.GetChannels(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ChannelResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Len(t, body, 1)
		assert.Equal(t, int64(10), body[0].RewardPoints)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().Channels(gomock.Any()).Return(nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodGet, "/api/channels", http.NoBody)
		w := httptest.NewRecorder()

		handler.GetChannels(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestClaimChannelHandler(t *testing.T) {
	handler, service := NewMock(t)

	tests := []struct {
		name          string
		accountID     string
		prepareMock   func()
		expectedCode  int
		expectedError string
	}{
		{
			name:      "Successful claim",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					GrantChannelReward(gomock.Any(), int64(1), "-100500").
					Return(&domain.SubscriptionGrant{AccountID: 1, ChannelID: "-100500", Points: 10}, nil)
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
			name:      "Already granted",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					GrantChannelReward(gomock.Any(), int64(1), "-100500").
					Return(nil, rewardservice.ErrAlreadyGranted)
			},
			expectedCode: http.StatusConflict,
		},
		{
			name:      "Unknown channel",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					GrantChannelReward(gomock.Any(), int64(1), "-100500").
					Return(nil, rewardservice.ErrChannelNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:      "Membership not confirmed",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					GrantChannelReward(gomock.Any(), int64(1), "-100500").
					Return(nil, rewardservice.ErrNotEligible)
			},
			expectedCode: http.StatusUnprocessableEntity,
		},
		{
			name:      "Internal server error",
			accountID: "1",
			prepareMock: func() {
				service.EXPECT().
					GrantChannelReward(gomock.Any(), int64(1), "-100500").
					Return(nil, errors.New("error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/rewards/-100500", http.NoBody)
			r = withParams(r, map[string]string{"accountID": tt.accountID, "channelID": "-100500"})
			w := httptest.NewRecorder()

			handler.ClaimChannel(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
		})
	}
}

func TestClaimAllHandler(t *testing.T) {
	handler, service := NewMock(t)

	t.Run("Successful sweep", func(t *testing.T) {
		service.EXPECT().
			GrantAllChannelRewards(gomock.Any(), int64(1)).
			Return(int64(30), []string{"Crypto News", "Daily Memes"}, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/rewards", http.NoBody)
		r = withParams(r, map[string]string{"accountID": "1"})
		w := httptest.NewRecorder()

		handler.ClaimAll(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ClaimResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Equal(t, int64(30), body.Earned)
		assert.Equal(t, []string{"Crypto News", "Daily Memes"}, body.Channels)
	})

	t.Run("Nothing to claim", func(t *testing.T) {
		service.EXPECT().
			GrantAllChannelRewards(gomock.Any(), int64(1)).
			Return(int64(0), nil, nil)

		r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/rewards", http.NoBody)
		r = withParams(r, map[string]string{"accountID": "1"})
		w := httptest.NewRecorder()

		handler.ClaimAll(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ClaimResponseDTO
		_ = json.NewDecoder(w.Body).Decode(&body)
		assert.Zero(t, body.Earned)
	})

	t.Run("Internal server error", func(t *testing.T) {
		service.EXPECT().
			GrantAllChannelRewards(gomock.Any(), int64(1)).
			Return(int64(0), nil, errors.New("error"))

		r := httptest.NewRequest(http.MethodPost, "/api/accounts/1/rewards", http.NoBody)
		r = withParams(r, map[string]string{"accountID": "1"})
		w := httptest.NewRecorder()

		handler.ClaimAll(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
