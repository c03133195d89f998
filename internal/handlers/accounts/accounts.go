package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/boostpanel/boostpanel/internal/domain"
	"github.com/boostpanel/boostpanel/internal/dto"
	accountservice "github.com/boostpanel/boostpanel/internal/service/accountservice"
	"github.com/boostpanel/boostpanel/pkg/utils"
)

type Service interface {
	Register(ctx context.Context, id int64, username, firstName, lastName, referralCode string) (*domain.Account, error)
	Get(ctx context.Context, id int64) (*domain.Account, error)
	Statement(ctx context.Context, id int64) ([]domain.LedgerEntry, error)
}

type AccountHandler struct {
	accountService Service
}

func New(accountService Service) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// Register godoc
//
//	@Summary		Register an account
//	@Description	Create or refresh an account; an optional referral code links it to the referrer on first registration.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			account	body		dto.RegisterRequestDTO	true	"Account identity"
//	@Success		200		{object}	dto.AccountResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request payload"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/register [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if req.ID == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Account id is required")
		return
	}

	acc, err := h.accountService.Register(r.Context(), req.ID, req.Username, req.FirstName, req.LastName, req.ReferralCode)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(acc))
}

// GetBalance godoc
//
//	@Summary		Get account balance
//	@Description	Retrieve the account profile with its current balance.
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{object}	dto.AccountResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		404			{object}	utils.Response	"Account not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID} [get]
func (h *AccountHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	acc, err := h.accountService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, accountservice.ErrAccountNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAccountDTO(acc))
}

// GetStatement godoc
//
//	@Summary		Get ledger statement
//	@Description	Retrieve the account's ledger entries, newest first.
//	@Tags			Accounts
//	@Produce		json
//	@Param			accountID	path		int	true	"Account ID"
//	@Success		200			{array}		dto.StatementEntryDTO
//	@Failure		204			{object}	utils.Response	"No data available"
//	@Failure		400			{object}	utils.Response	"Invalid account id"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/accounts/{accountID}/statement [get]
func (h *AccountHandler) GetStatement(w http.ResponseWriter, r *http.Request) {
	id, ok := accountID(w, r)
	if !ok {
		return
	}

	entries, err := h.accountService.Statement(r.Context(), id)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "No data available")
		return
	}

	response := make([]dto.StatementEntryDTO, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.StatementEntryDTO{
			Delta:     e.Delta,
			Reason:    e.Reason,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

func accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil || id == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid account id")
		return 0, false
	}
	return id, true
}

func toAccountDTO(acc *domain.Account) dto.AccountResponseDTO {
	return dto.AccountResponseDTO{
		ID:           acc.ID,
		Username:     acc.Username,
		Balance:      acc.Balance,
		ReferralCode: acc.ReferralCode,
		Banned:       acc.Banned,
		TotalOrders:  acc.TotalOrders,
		TotalSpent:   acc.TotalSpent,
		JoinedAt:     acc.JoinedAt,
	}
}
