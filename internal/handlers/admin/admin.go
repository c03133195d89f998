package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/dto"
	ordershandlers "github.com/boostpanel/boostpanel/internal/handlers/orders"
	adminservice "github.com/boostpanel/boostpanel/internal/service/adminservice"
	adminsession "github.com/boostpanel/boostpanel/internal/service/adminsession"
	ledgerservice "github.com/boostpanel/boostpanel/internal/service/ledgerservice"
	orderservice "github.com/boostpanel/boostpanel/internal/service/orderservice"
	"github.com/boostpanel/boostpanel/pkg/auth"
	"github.com/boostpanel/boostpanel/pkg/utils"
)

const (
	listLimit = 100
	tokenTTL  = 24 * time.Hour
)

type Service interface {
	Authorized(actorID int64) bool
	ManualAdjust(ctx context.Context, actorID, accountID, delta int64, note string) (*domain.LedgerEntry, error)
	ForceComplete(ctx context.Context, actorID, orderID int64) (*domain.Order, error)
	ForceCancel(ctx context.Context, actorID, orderID int64) (*domain.Order, error)
	ListPending(ctx context.Context, actorID int64) ([]domain.Order, error)
	ListAll(ctx context.Context, actorID int64, limit int) ([]domain.Order, error)
	AddChannel(ctx context.Context, actorID int64, ch *domain.Channel) (*domain.Channel, error)
	RemoveChannel(ctx context.Context, actorID int64, channelID string) error
	ListChannels(ctx context.Context, actorID int64) ([]domain.Channel, error)
	SetBanned(ctx context.Context, actorID, accountID int64, banned bool) error
	Accounts(ctx context.Context, actorID int64, limit int) ([]domain.Account, error)
	Stats(ctx context.Context, actorID int64) (*domain.Stats, error)
	Audit(ctx context.Context, actorID int64, limit int) ([]domain.AuditRecord, error)
	Broadcast(ctx context.Context, actorID int64, body string) (*adminservice.BroadcastReport, error)
}

type Sessions interface {
	Current(actorID int64) adminsession.State
	Step(actorID int64, ev adminsession.Event) (adminsession.State, bool)
}

type AdminHandler struct {
	adminService Service
	sessions     Sessions
	jwtService   auth.JWTServiceInterface
	hashService  auth.HashServiceInterface
	adminKeyHash string
}

func New(adminService Service, sessions Sessions, jwtService auth.JWTServiceInterface, hashService auth.HashServiceInterface, adminKeyHash string) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		sessions:     sessions,
		jwtService:   jwtService,
		hashService:  hashService,
		adminKeyHash: adminKeyHash,
	}
}

// Login godoc
//
//	@Summary		Admin login
//	@Description	Exchange the admin key for a bearer token. The actor must be on the privileged list.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.AdminLoginRequestDTO	true	"Actor id and admin key"
//	@Success		200			{object}	dto.AdminLoginResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request payload"
//	@Failure		401			{object}	utils.Response	"Invalid credentials"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/login [post]
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminLoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if !h.adminService.Authorized(req.ActorID) || !h.hashService.CompareKey(h.adminKeyHash, req.Key) {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.jwtService.GenerateJWT(req.ActorID, time.Now().Add(tokenTTL))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.AdminLoginResponseDTO{Token: token})
}

// GetOrders godoc
//
//	@Summary		List orders
//	@Description	List all orders, or only pending ones with ?pending=true.
//	@Tags			Admin
//	@Produce		json
//	@Param			pending	query		bool	false	"Only pending orders"
//	@Security		BearerAuth
//	@Success		200	{array}		dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders [get]
func (h *AdminHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	actorID := actor(r)

	var (
		orders []domain.Order
		err    error
	)
	if r.URL.Query().Get("pending") == "true" {
		orders, err = h.adminService.ListPending(r.Context(), actorID)
	} else {
		orders, err = h.adminService.ListAll(r.Context(), actorID, listLimit)
	}
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.OrderResponseDTO, 0, len(orders))
	for _, order := range orders {
		response = append(response, ordershandlers.ToOrderDTO(&order))
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// CompleteOrder godoc
//
//	@Summary		Force-complete an order
//	@Tags			Admin
//	@Produce		json
//	@Param			orderID	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order already terminal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/{orderID}/complete [post]
func (h *AdminHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	h.flipOrder(w, r, h.adminService.ForceComplete)
}

// CancelOrder godoc
//
//	@Summary		Force-cancel an order and refund it
//	@Tags			Admin
//	@Produce		json
//	@Param			orderID	path	int	true	"Order ID"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.OrderResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		404	{object}	utils.Response	"Order not found"
//	@Failure		409	{object}	utils.Response	"Order already terminal"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/orders/{orderID}/cancel [post]
func (h *AdminHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	h.flipOrder(w, r, h.adminService.ForceCancel)
}

func (h *AdminHandler) flipOrder(w http.ResponseWriter, r *http.Request, flip func(context.Context, int64, int64) (*domain.Order, error)) {
	orderID, err := strconv.ParseInt(chi.URLParam(r, "orderID"), 10, 64)
	if err != nil || orderID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid order id")
		return
	}

	order, err := flip(r.Context(), actor(r), orderID)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ordershandlers.ToOrderDTO(order))
}

// Adjust godoc
//
//	@Summary		Manually adjust a balance
//	@Description	Credit or debit an account by a signed delta. The adjustment lands on the ledger like any other entry.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			adjustment	body	dto.AdjustRequestDTO	true	"Account and signed delta"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatementEntryDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		402	{object}	utils.Response	"Debit exceeds balance"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		422	{object}	utils.Response	"Zero delta"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/adjust [post]
func (h *AdminHandler) Adjust(w http.ResponseWriter, r *http.Request) {
	var req dto.AdjustRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	entry, err := h.adminService.ManualAdjust(r.Context(), actor(r), req.AccountID, req.Delta, req.Note)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatementEntryDTO{
		Delta:     entry.Delta,
		Reason:    entry.Reason,
		Note:      entry.Note,
		CreatedAt: entry.CreatedAt,
	})
}

// AddChannel godoc
//
//	@Summary		Add or reactivate a reward channel
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			channel	body	dto.AddChannelRequestDTO	true	"Channel to monitor"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.ChannelResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/channels [post]
func (h *AdminHandler) AddChannel(w http.ResponseWriter, r *http.Request) {
	var req dto.AddChannelRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ID == "" || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Channel id and name are required")
		return
	}

	saved, err := h.adminService.AddChannel(r.Context(), actor(r), &domain.Channel{
		ID:           req.ID,
		Name:         req.Name,
		Username:     req.Username,
		RewardPoints: req.RewardPoints,
	})
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.ChannelResponseDTO{
		ID:           saved.ID,
		Name:         saved.Name,
		Username:     saved.Username,
		RewardPoints: saved.RewardPoints,
	})
}

// RemoveChannel godoc
//
//	@Summary		Deactivate a reward channel
//	@Description	The channel stops earning; past grants keep blocking re-claims if it ever comes back.
//	@Tags			Admin
//	@Produce		json
//	@Param			channelID	path	string	true	"Channel ID"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Channel deactivated"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		404	{object}	utils.Response	"Channel not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/channels/{channelID} [delete]
func (h *AdminHandler) RemoveChannel(w http.ResponseWriter, r *http.Request) {
	channelID := chi.URLParam(r, "channelID")
	if err := h.adminService.RemoveChannel(r.Context(), actor(r), channelID); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Channel deactivated"})
}

// GetChannels godoc
//
//	@Summary		List all channels, active and deactivated
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.ChannelResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/channels [get]
func (h *AdminHandler) GetChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.adminService.ListChannels(r.Context(), actor(r))
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.ChannelResponseDTO, 0, len(channels))
	for _, ch := range channels {
		response = append(response, dto.ChannelResponseDTO{
			ID:           ch.ID,
			Name:         ch.Name,
			Username:     ch.Username,
			RewardPoints: ch.RewardPoints,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Ban godoc
//
//	@Summary		Ban or unban an account
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			ban	body	dto.BanRequestDTO	true	"Account and desired flag"
//	@Security		BearerAuth
//	@Success		200	{object}	utils.Response	"Flag updated"
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		404	{object}	utils.Response	"Account not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/ban [post]
func (h *AdminHandler) Ban(w http.ResponseWriter, r *http.Request) {
	var req dto.BanRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.adminService.SetBanned(r.Context(), actor(r), req.AccountID, req.Banned); err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Flag updated"})
}

// GetAccounts godoc
//
//	@Summary		List accounts
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AccountResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/accounts [get]
func (h *AdminHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.adminService.Accounts(r.Context(), actor(r), listLimit)
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.AccountResponseDTO, 0, len(accounts))
	for _, acc := range accounts {
		response = append(response, dto.AccountResponseDTO{
			ID:           acc.ID,
			Username:     acc.Username,
			Balance:      acc.Balance,
			ReferralCode: acc.ReferralCode,
			Banned:       acc.Banned,
			TotalOrders:  acc.TotalOrders,
			TotalSpent:   acc.TotalSpent,
			JoinedAt:     acc.JoinedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetStats godoc
//
//	@Summary		Aggregate counters
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.StatsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.adminService.Stats(r.Context(), actor(r))
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.StatsResponseDTO{
		TotalAccounts:       stats.TotalAccounts,
		TotalOrders:         stats.TotalOrders,
		ActiveChannels:      stats.ActiveChannels,
		PointsInCirculation: stats.PointsInCirculation,
	})
}

// GetAudit godoc
//
//	@Summary		List audit records
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		dto.AuditRecordDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/audit [get]
func (h *AdminHandler) GetAudit(w http.ResponseWriter, r *http.Request) {
	records, err := h.adminService.Audit(r.Context(), actor(r), listLimit)
	if err != nil {
		respondAdminError(w, err)
		return
	}

	response := make([]dto.AuditRecordDTO, 0, len(records))
	for _, rec := range records {
		response = append(response, dto.AuditRecordDTO{
			ID:      rec.ID,
			ActorID: rec.ActorID,
			Action:  rec.Action,
			Target:  rec.Target,
			Detail:  rec.Detail,
			Success: rec.Success,
			At:      rec.At,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Broadcast godoc
//
//	@Summary		Broadcast a message to every active account
//	@Description	Deliveries are independent and unordered; failures are counted, not retried.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			broadcast	body	dto.BroadcastRequestDTO	true	"Message body"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.BroadcastResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		403	{object}	utils.Response	"Actor not privileged"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/admin/broadcast [post]
func (h *AdminHandler) Broadcast(w http.ResponseWriter, r *http.Request) {
	var req dto.BroadcastRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.Body == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Message body is required")
		return
	}

	report, err := h.adminService.Broadcast(r.Context(), actor(r), req.Body)
	if err != nil {
		respondAdminError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BroadcastResponseDTO{
		Total:  report.Total,
		Sent:   report.Sent,
		Failed: report.Failed,
	})
}

// GetSession godoc
//
//	@Summary		Current session state
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SessionStateResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/admin/session [get]
func (h *AdminHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	state := h.sessions.Current(actor(r))
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionStateResponseDTO{
		State:    string(state),
		Accepted: true,
	})
}

// SessionEvent godoc
//
//	@Summary		Advance the session state machine
//	@Description	Apply a command or input event. An out-of-band event resets the session to idle.
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			event	body	dto.SessionEventRequestDTO	true	"Event name"
//	@Security		BearerAuth
//	@Success		200	{object}	dto.SessionStateResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid request payload"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Router			/api/admin/session [post]
func (h *AdminHandler) SessionEvent(w http.ResponseWriter, r *http.Request) {
	var req dto.SessionEventRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Event == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state, accepted := h.sessions.Step(actor(r), adminsession.Event(req.Event))
	utils.RespondWithJSON(w, http.StatusOK, dto.SessionStateResponseDTO{
		State:    string(state),
		Accepted: accepted,
	})
}

func actor(r *http.Request) int64 {
	actorID, _ := r.Context().Value(auth.ActorIDKey).(int64)
	return actorID
}

func respondAdminError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, adminservice.ErrUnauthorized):
		utils.RespondWithError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, adminservice.ErrInvalidDelta):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, adminservice.ErrChannelNotFound),
		errors.Is(err, adminservice.ErrAccountNotFound),
		errors.Is(err, orderservice.ErrOrderNotFound),
		errors.Is(err, ledgerservice.ErrAccountNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, orderservice.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, err.Error())
	case errors.Is(err, ledgerservice.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
