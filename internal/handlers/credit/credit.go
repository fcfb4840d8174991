package credit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/dto"
	"github.com/arta-commerce/bajetpay/internal/service/creditservice"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/arta-commerce/bajetpay/pkg/utils"
)

type Service interface {
	GetBalance(ctx context.Context, userID int) (float64, error)
	Increase(ctx context.Context, userID int, amount float64, reason string, actorID int) (*domain.UserCredit, error)
	Decrease(ctx context.Context, userID int, amount float64, reason string, actorID int) (*domain.UserCredit, error)
	GetHistory(ctx context.Context, userID int, limit int) ([]domain.CreditHistoryEntry, error)
}

type CreditHandler struct {
	creditService Service
	validate      *validator.Validate
}

func New(creditService Service) *CreditHandler {
	return &CreditHandler{
		creditService: creditService,
		validate:      validator.New(),
	}
}

// GetCredit godoc
//
//	@Summary		Get current user credit
//	@Description	Retrieve the current Bajet credit balance for the authenticated user.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CreditResponseDTO	"Current credit balance"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/credit [get]
func (h *CreditHandler) GetCredit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	balance, err := h.creditService.GetBalance(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.CreditResponseDTO{Balance: balance})
}

// UpdateCredit godoc
//
//	@Summary		Update user credit (admin)
//	@Description	Increase or decrease a user's Bajet credit balance. A decrease below zero is rejected.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.AdminCreditRequestDTO	true	"Credit update payload"
//	@Success		200		{object}	dto.AdminCreditResponseDTO	"Updated balance"
//	@Failure		400		{object}	utils.Response				"Invalid input or insufficient balance"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admin access required"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/credit [post]
func (h *CreditHandler) UpdateCredit(w http.ResponseWriter, r *http.Request) {
	actorID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.AdminCreditRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var (
		credit *domain.UserCredit
		err    error
	)
	if req.Operation == domain.ChangeKindIncrease {
		credit, err = h.creditService.Increase(r.Context(), req.UserID, req.Amount, req.Reason, actorID)
	} else {
		credit, err = h.creditService.Decrease(r.Context(), req.UserID, req.Amount, req.Reason, actorID)
	}
	if err != nil {
		switch {
		case errors.Is(err, creditservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, creditservice.ErrInsufficientBalance):
			utils.RespondWithError(w, http.StatusBadRequest, "credit cannot become negative")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.AdminCreditResponseDTO{
		Message:    "credit successfully updated",
		NewBalance: credit.Balance,
	})
}

// GetHistory godoc
//
//	@Summary		Get credit history (admin)
//	@Description	Get the balance change history for a user, most recent first.
//	@Tags			Credit
//	@Security		BearerAuth
//	@Produce		json
//	@Param			userID	path		int	true	"User id"
//	@Param			limit	query		int	false	"Maximum number of entries"
//	@Success		200		{array}		dto.CreditHistoryEntryDTO	"Credit history"
//	@Success		204		{object}	utils.Response				"No history"
//	@Failure		400		{object}	utils.Response				"Invalid user id"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		403		{object}	utils.Response				"Admin access required"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/admin/credit/{userID}/history [get]
func (h *CreditHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.Atoi(chi.URLParam(r, "userID"))
	if err != nil || userID <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, err := h.creditService.GetHistory(r.Context(), userID, limit)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch credit history")
		return
	}
	if len(entries) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "History not found")
		return
	}

	response := make([]dto.CreditHistoryEntryDTO, len(entries))
	for i, e := range entries {
		response[i] = dto.CreditHistoryEntryDTO{
			PreviousBalance: e.PreviousBalance,
			NewBalance:      e.NewBalance,
			Delta:           e.Delta,
			Kind:            e.Kind,
			Reason:          e.Reason,
			ActorID:         e.ActorID,
			CreatedAt:       e.CreatedAt,
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
