package orderservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/pg"
	"github.com/boostpanel/boostpanel/internal/service/ledgerservice"
)

type mocks struct {
	repo      *MockRepo
	accounts  *MockAccountRepo
	ledger    *MockLedger
	txManager *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		repo:      NewMockRepo(ctrl),
		accounts:  NewMockAccountRepo(ctrl),
		ledger:    NewMockLedger(ctrl),
		txManager: pg.NewMockTXManager(ctrl),
	}
	rates := map[string]int64{"followers": 50, "likes": 30, "views": 20}
	service := New(m.repo, m.accounts, m.ledger, m.txManager, rates, 5, 100, 10000)
	defer ctrl.Finish()
	return service, m
}

func passthroughTx(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestQuote(t *testing.T) {
	service, _ := NewMock(t)

	tests := []struct {
		name          string
		serviceKind   string
		quantity      int
		expectedCost  int64
		expectedError error
	}{
		{name: "Followers at 1000", serviceKind: "followers", quantity: 1000, expectedCost: 50},
		{name: "Likes at 500", serviceKind: "likes", quantity: 500, expectedCost: 15},
		{name: "Cost never rounds below one point", serviceKind: "views", quantity: 100, expectedCost: 2},
		{name: "Unknown service", serviceKind: "comments", quantity: 1000, expectedError: ErrUnknownServiceKind},
		{name: "Quantity below minimum", serviceKind: "likes", quantity: 99, expectedError: ErrInvalidQuantity},
		{name: "Quantity above maximum", serviceKind: "likes", quantity: 10001, expectedError: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cost, err := service.Quote(tt.serviceKind, tt.quantity)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCost, cost)
			}
		})
	}
}

func TestCreateOrder(t *testing.T) {
	const target = "https://instagram.com/p/abc123"

	tests := []struct {
		name          string
		serviceKind   string
		target        string
		quantity      int
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name:        "Successful creation debits first and saves in one transaction",
			serviceKind: "followers",
			target:      target,
			quantity:    1000,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CountCreatedSince(gomock.Any(), int64(1), gomock.Any()).Return(0, nil)
				passthroughTx(m.txManager)
				m.ledger.EXPECT().Debit(gomock.Any(), int64(1), int64(50), domain.ReasonOrderDebit, "followers x1000").Return(&domain.LedgerEntry{}, nil)
				m.repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)
				m.accounts.EXPECT().IncrementOrderStats(gomock.Any(), int64(1), int64(50)).Return(nil)
			},
		},
		{
			name:          "Invalid target is rejected before the cap check",
			serviceKind:   "followers",
			target:        "ftp://example.com/x",
			quantity:      1000,
			prepareMock:   func(m *mocks) {},
			expectedError: ErrInvalidTarget,
		},
		{
			name:        "Daily cap blocks the order before any debit",
			serviceKind: "followers",
			target:      target,
			quantity:    1000,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CountCreatedSince(gomock.Any(), int64(1), gomock.Any()).Return(5, nil)
			},
			expectedError: ErrDailyLimitReached,
		},
		{
			name:        "Insufficient balance rolls the order back",
			serviceKind: "views",
			target:      target,
			quantity:    5000,
			prepareMock: func(m *mocks) {
				m.repo.EXPECT().CountCreatedSince(gomock.Any(), int64(1), gomock.Any()).Return(2, nil)
				passthroughTx(m.txManager)
				m.ledger.EXPECT().Debit(gomock.Any(), int64(1), int64(100), domain.ReasonOrderDebit, "views x5000").Return(nil, ledgerservice.ErrInsufficientBalance)
			},
			expectedError: ledgerservice.ErrInsufficientBalance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.CreateOrder(context.Background(), 1, tt.serviceKind, tt.target, tt.quantity)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusPending, order.Status)
				assert.Equal(t, int64(50), order.TotalCost)
				assert.Equal(t, int64(1), order.AccountID)
			}
		})
	}
}

func TestCompleteOrder(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Pending order completes",
			prepareMock: func(m *mocks) {
				passthroughTx(m.txManager)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(&domain.Order{ID: 7, Status: domain.OrderStatusPending}, nil)
				m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(7), domain.OrderStatusCompleted, gomock.Any()).Return(nil)
			},
		},
		{
			name: "Missing order",
			prepareMock: func(m *mocks) {
				passthroughTx(m.txManager)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name: "Completed order stays completed",
			prepareMock: func(m *mocks) {
				passthroughTx(m.txManager)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(&domain.Order{ID: 7, Status: domain.OrderStatusCompleted}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.CompleteOrder(context.Background(), 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusCompleted, order.Status)
				assert.NotNil(t, order.CompletedAt)
			}
		})
	}
}

func TestCancelOrder(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(m *mocks)
		expectedError error
	}{
		{
			name: "Cancellation refunds exactly the stored cost",
			prepareMock: func(m *mocks) {
				passthroughTx(m.txManager)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(&domain.Order{ID: 7, AccountID: 1, TotalCost: 50, Status: domain.OrderStatusPending}, nil)
				m.repo.EXPECT().MarkTerminal(gomock.Any(), int64(7), domain.OrderStatusCancelled, gomock.Any()).Return(nil)
				m.ledger.EXPECT().Credit(gomock.Any(), int64(1), int64(50), domain.ReasonOrderRefund, "order:7").Return(&domain.LedgerEntry{}, nil)
			},
		},
		{
			name: "Cancelled order is not refunded again",
			prepareMock: func(m *mocks) {
				passthroughTx(m.txManager)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(&domain.Order{ID: 7, AccountID: 1, TotalCost: 50, Status: domain.OrderStatusCancelled}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
		{
			name: "Completed order cannot be cancelled",
			prepareMock: func(m *mocks) {
				passthroughTx(m.txManager)
				m.repo.EXPECT().GetForUpdate(gomock.Any(), int64(7)).Return(&domain.Order{ID: 7, Status: domain.OrderStatusCompleted}, nil)
			},
			expectedError: ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, m := NewMock(t)
			tt.prepareMock(m)

			order, err := service.CancelOrder(context.Background(), 7)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusCancelled, order.Status)
			}
		})
	}
}

func TestOrders(t *testing.T) {
	service, m := NewMock(t)

	expected := []domain.Order{{ID: 2, AccountID: 1}, {ID: 1, AccountID: 1}}
	m.repo.EXPECT().FindByAccountID(gomock.Any(), int64(1), 50).Return(expected, nil)

	orders, err := service.Orders(context.Background(), 1, 50)
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}

func TestListPending(t *testing.T) {
	service, m := NewMock(t)

	expected := []domain.Order{{ID: 3, Status: domain.OrderStatusPending}}
	m.repo.EXPECT().FindByStatus(gomock.Any(), domain.OrderStatusPending).Return(expected, nil)

	orders, err := service.ListPending(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, orders)
}
