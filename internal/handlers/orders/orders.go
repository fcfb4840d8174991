package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/dto"
	"github.com/arta-commerce/bajetpay/internal/service/checkoutservice"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/arta-commerce/bajetpay/pkg/utils"
	"github.com/arta-commerce/bajetpay/pkg/validate"
)

type Service interface {
	OrderCreated(ctx context.Context, userID int, sessionID, orderNumber string, total float64) (*domain.Order, error)
	PaymentComplete(ctx context.Context, orderNumber string) (*checkoutservice.PaymentOutcome, error)
	OrderStatusChanged(ctx context.Context, orderNumber, status string) error
	GetOrders(ctx context.Context, userID int) ([]domain.Order, error)
}

type OrderHandler struct {
	checkoutService Service
	validate        *validator.Validate
}

func New(checkoutService Service) *OrderHandler {
	return &OrderHandler{
		checkoutService: checkoutService,
		validate:        validator.New(),
	}
}

func toOrderDTO(o *domain.Order) dto.OrderResponseDTO {
	return dto.OrderResponseDTO{
		Number:             o.OrderNumber,
		Status:             o.Status,
		Total:              o.Total,
		SaleType:           o.SaleType,
		PaymentType:        o.PaymentType,
		CreditUsed:         o.CreditUsed,
		RemainingAmount:    o.RemainingAmount,
		SecondOrderNumber:  o.SecondOrderNumber,
		PaymentMethodTitle: o.PaymentMethodTitle,
		CreatedAt:          o.CreatedAt.Format(time.RFC3339),
	}
}

// CreateOrder godoc
//
//	@Summary		Register a created order
//	@Description	Attach the parked settlement decision to a freshly created order. A fully covered bajet order is settled from credit immediately.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.OrderCreateRequestDTO	true	"Order number and total"
//	@Success		200		{object}	dto.OrderResponseDTO		"Registered order"
//	@Failure		400		{object}	utils.Response				"Invalid request body"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		422		{object}	utils.Response				"Invalid order number"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/orders [post]
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	sessionID := session.IDFromContext(r.Context())

	var req dto.OrderCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validate.IsLuhn(req.Order) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "invalid order number")
		return
	}

	order, err := h.checkoutService.OrderCreated(r.Context(), userID, sessionID, req.Order, req.Total)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// GetOrders godoc
//
//	@Summary		List user orders
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		dto.OrderResponseDTO	"User orders"
//	@Success		204	{object}	utils.Response			"No orders"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/user/orders [get]
func (h *OrderHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	orders, err := h.checkoutService.GetOrders(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}
	if len(orders) == 0 {
		utils.RespondWithError(w, http.StatusNoContent, "Orders not found")
		return
	}

	response := make([]dto.OrderResponseDTO, len(orders))
	for i := range orders {
		response[i] = toOrderDTO(&orders[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// PaymentComplete godoc
//
//	@Summary		Settle a completed payment
//	@Description	Settle the credit leg of a bajet order after the host reports the payment completed. For a split order this creates the linked remainder order and starts its payment.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Produce		json
//	@Param			number	path		string							true	"Order number"
//	@Success		200		{object}	dto.PaymentCompleteResponseDTO	"Settlement result"
//	@Failure		401		{object}	utils.Response					"User not authorized"
//	@Failure		404		{object}	utils.Response					"Order not found"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/orders/{number}/payment-complete [post]
func (h *OrderHandler) PaymentComplete(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "number")

	outcome, err := h.checkoutService.PaymentComplete(r.Context(), orderNumber)
	if err != nil {
		if errors.Is(err, checkoutservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PaymentCompleteResponseDTO{
		Message:           "payment settled",
		SecondOrderNumber: outcome.SecondOrderNumber,
		RedirectURL:       outcome.RedirectURL,
	})
}

// UpdateStatus godoc
//
//	@Summary		Report an order status change
//	@Description	Record a host-side lifecycle transition. A second-payment order reaching processing completes its original order.
//	@Tags			Orders
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			number	path		string					true	"Order number"
//	@Param			request	body		dto.OrderStatusRequestDTO	true	"New status"
//	@Success		200		{object}	utils.Response			"Status recorded"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		404		{object}	utils.Response			"Order not found"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/orders/{number}/status [post]
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderNumber := chi.URLParam(r, "number")

	var req dto.OrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid status")
		return
	}

	if err := h.checkoutService.OrderStatusChanged(r.Context(), orderNumber, req.Status); err != nil {
		if errors.Is(err, checkoutservice.ErrOrderNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "status updated"})
}
