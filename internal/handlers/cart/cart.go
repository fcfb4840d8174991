package cart

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/dto"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/pkg/utils"
)

type Store interface {
	SetCart(ctx context.Context, sessionID string, lines []domain.CartLine) error
	ClearCart(ctx context.Context, sessionID string) error
}

// CartHandler keeps the host's cart mirrored into the visitor session, so
// fee calculation, checkout and the sale-type guard see authoritative
// canonical prices.
type CartHandler struct {
	store    Store
	validate *validator.Validate
}

func New(store Store) *CartHandler {
	return &CartHandler{
		store:    store,
		validate: validator.New(),
	}
}

// UpdateCart godoc
//
//	@Summary		Replace the session cart
//	@Description	Store the canonical cart lines (product id, quantity, regular unit price) for the visitor session.
//	@Tags			Cart
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CartUpdateRequestDTO	true	"Cart lines"
//	@Success		200		{object}	utils.Response				"Cart stored"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/cart [put]
func (h *CartHandler) UpdateCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session.IDFromContext(r.Context())

	var req dto.CartUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid cart lines")
		return
	}

	lines := make([]domain.CartLine, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = domain.CartLine{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		}
	}
	if err := h.store.SetCart(r.Context(), sessionID, lines); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "cart updated"})
}

// ClearCart godoc
//
//	@Summary		Clear the session cart
//	@Tags			Cart
//	@Produce		json
//	@Success		200	{object}	utils.Response	"Cart cleared"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sessionID := session.IDFromContext(r.Context())

	if err := h.store.ClearCart(r.Context(), sessionID); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "cart cleared"})
}
