package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/dto"
	ledgerservice "github.com/boostpanel/boostpanel/internal/service/ledgerservice"
	orderservice "github.com/boostpanel/boostpanel/internal/service/orderservice"
	"github.com/boostpanel/boostpanel/pkg/utils"
)

const listLimit = 50

type Service interface {
	Quote(serviceKind string, quantity int) (int64, error)
	CreateOrder(ctx context.Context, accountID int64, serviceKind, target string, quantity int) (*domain.Order, error)
	Orders(ctx context.Context, accountID int64, limit int) ([]domain.Order, error)
}

type OrderHandler struct {
	orderService Service
}

func New(orderService Service) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// Quote godoc
//
//	@Summary		Quote an order
//	@Description	Price a service/quantity pair without placing the order or touching the balance.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			quote	body		dto.QuoteRequestDTO	true	"Service and quantity"
//	@Success		200		{object}	dto.QuoteResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request payload"
//	@Failure		422		{object}	utils.Response	"Unknown service or quantity out of range"
//	@Router			/api/orders/quote [post]
func (h *OrderHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	cost, err := h.orderService.Quote(req.Service, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrUnknownServiceKind),
			errors.Is(err, orderservice.ErrInvalidQuantity):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.QuoteResponseDTO{
		Service:   req.Service,
		Quantity:  req.Quantity,
		TotalCost: cost,
	})
}

// AddOrder godoc
//
//	@Summary		Place an order
//	@Description	Debit the account for the quoted cost and create a pending order, atomically.
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			accountID	path		int						true	"Account ID"
//	@Param			order		body		dto.CreateOrderRequestDTO	true	"Order to place"
//	@Success		201			{object}	dto.OrderResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request payload"
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		403			{object}	utils.Response	"Account banned"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		422			{object}	utils.Response	"Invalid service, target or quantity"
//	@Failure		429			{object}	utils.Response	"Daily order limit reached"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/orders [post]
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	order, err := h.orderService.CreateOrder(r.Context(), accountID, req.Service, req.Target, req.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, orderservice.ErrUnknownServiceKind),
			errors.Is(err, orderservice.ErrInvalidQuantity),
			errors.Is(err, orderservice.ErrInvalidTarget):
			utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
		case errors.Is(err, orderservice.ErrDailyLimitReached):
			utils.RespondWithError(w, http.StatusTooManyRequests, err.Error())
		case errors.Is(err, ledgerservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		case errors.Is(err, ledgerservice.ErrAccountBanned):
			utils.RespondWithError(w, http.StatusForbidden, err.Error())
		case errors.Is(err, ledgerservice.ErrAccountNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, ToOrderDTO(order))
}

// GetOrders godoc
//
//	@Summary		Get orders list for account
//	@Description	Retrieve the account's orders, newest first.
//	@Tags			Orders
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{array}		dto.OrderResponseDTO
//	@Failure		204			{object}	utils.Response	"No data available"
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || accountID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return
	}

	orders, err := h.orderService.Orders(r.Context(), accountID, listLimit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, ToOrderDTO(&order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// ToOrderDTO is shared with the admin handler, which renders the same shape.
func ToOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		ID:          order.ID,
		Service:     order.ServiceKind,
		Target:      order.Target,
		Quantity:    order.Quantity,
		TotalCost:   order.TotalCost,
		Status:      order.Status,
		CreatedAt:   order.CreatedAt,
		CompletedAt: order.CompletedAt,
	}
}
