package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/dto"
	"github.com/arta-commerce/bajetpay/internal/gateway"
	"github.com/arta-commerce/bajetpay/internal/service/checkoutservice"
	"github.com/arta-commerce/bajetpay/internal/service/saletypeservice"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/pkg/auth"
	"github.com/arta-commerce/bajetpay/pkg/utils"
)

type CheckoutService interface {
	CartFee(ctx context.Context, userID int, sessionID string, saleType domain.SaleType) (*checkoutservice.FeeLine, error)
	CartTotals(ctx context.Context, userID int, sessionID string, saleType domain.SaleType) (*checkoutservice.Totals, error)
	Submit(ctx context.Context, userID int, sessionID string, saleType domain.SaleType) (*checkoutservice.Decision, error)
}

type SaleTypeService interface {
	Resolve(ctx context.Context, sessionID, cookieValue string) domain.SaleType
	Set(ctx context.Context, sessionID, value string) (domain.SaleType, error)
}

type PricingService interface {
	Adjust(ctx context.Context, basePrice float64, saleType domain.SaleType) (float64, error)
}

type GatewayService interface {
	AvailableForCheckout(ctx context.Context, saleType domain.SaleType) ([]gateway.Gateway, error)
}

type CheckoutHandler struct {
	checkoutService CheckoutService
	saleTypeService SaleTypeService
	pricingService  PricingService
	gatewayService  GatewayService
	validate        *validator.Validate
}

func New(checkoutService CheckoutService, saleTypeService SaleTypeService, pricingService PricingService, gatewayService GatewayService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
		saleTypeService: saleTypeService,
		pricingService:  pricingService,
		gatewayService:  gatewayService,
		validate:        validator.New(),
	}
}

func (h *CheckoutHandler) activeSaleType(r *http.Request) domain.SaleType {
	sessionID := session.IDFromContext(r.Context())
	return h.saleTypeService.Resolve(r.Context(), sessionID, session.SaleTypeCookie(r))
}

// AdjustPrice godoc
//
//	@Summary		Adjust a product price
//	@Description	Return the display price for the active sale type. In bajet mode the canonical price gets the configured markup; repeated calls never compound it.
//	@Tags			Checkout
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PriceRequestDTO		true	"Canonical product price"
//	@Success		200		{object}	dto.PriceResponseDTO	"Adjusted price"
//	@Failure		400		{object}	utils.Response			"Invalid request body"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/hooks/price [post]
func (h *CheckoutHandler) AdjustPrice(w http.ResponseWriter, r *http.Request) {
	var req dto.PriceRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	saleType := h.activeSaleType(r)
	price, err := h.pricingService.Adjust(r.Context(), req.BasePrice, saleType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PriceResponseDTO{
		ProductID: req.ProductID,
		Price:     price,
		SaleType:  string(saleType),
	})
}

// GetFees godoc
//
//	@Summary		Get checkout totals and fees
//	@Description	Compute the cart subtotal, the credit deduction fee and the remaining total for the active sale type.
//	@Tags			Checkout
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.CartTotalsResponseDTO	"Cart totals"
//	@Failure		401	{object}	utils.Response				"User not authorized"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/checkout/fees [get]
func (h *CheckoutHandler) GetFees(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	sessionID := session.IDFromContext(r.Context())
	saleType := h.activeSaleType(r)

	totals, err := h.checkoutService.CartTotals(r.Context(), userID, sessionID, saleType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := dto.CartTotalsResponseDTO{
		Subtotal:  totals.Subtotal,
		CreditFee: totals.CreditFee,
		Total:     totals.Total,
	}
	if totals.CreditFee != 0 {
		fee, err := h.checkoutService.CartFee(r.Context(), userID, sessionID, saleType)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if fee != nil {
			response.Fees = []dto.FeeLineDTO{{Label: fee.Label, Amount: fee.Amount}}
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// GetGateways godoc
//
//	@Summary		List payment gateways for checkout
//	@Description	Return the enabled gateways allowed for the active sale type. An empty list means no gateway is configured for the mode.
//	@Tags			Checkout
//	@Produce		json
//	@Success		200	{array}		dto.GatewayDTO	"Offered gateways"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/checkout/gateways [get]
func (h *CheckoutHandler) GetGateways(w http.ResponseWriter, r *http.Request) {
	saleType := h.activeSaleType(r)

	gateways, err := h.gatewayService.AvailableForCheckout(r.Context(), saleType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.GatewayDTO, len(gateways))
	for i, g := range gateways {
		response[i] = dto.GatewayDTO{ID: g.ID(), Title: g.Title()}
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Submit godoc
//
//	@Summary		Submit checkout
//	@Description	Record the chosen sale type and decide the settlement shape for the pending order: full credit, split, or none.
//	@Tags			Checkout
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CheckoutRequestDTO	true	"Chosen sale type"
//	@Success		200		{object}	dto.CheckoutResponseDTO	"Settlement decision"
//	@Failure		400		{object}	utils.Response			"Invalid request body or empty cart"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/checkout [post]
func (h *CheckoutHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)
	sessionID := session.IDFromContext(r.Context())

	var req dto.CheckoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid sale type")
		return
	}

	saleType, err := h.saleTypeService.Set(r.Context(), sessionID, req.SaleType)
	if err != nil {
		if errors.Is(err, saletypeservice.ErrInvalidSaleType) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	session.SetSaleTypeCookie(w, string(saleType))

	decision, err := h.checkoutService.Submit(r.Context(), userID, sessionID, saleType)
	if err != nil {
		if errors.Is(err, checkoutservice.ErrEmptyCart) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	gateways, err := h.gatewayService.AvailableForCheckout(r.Context(), saleType)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	gatewayDTOs := make([]dto.GatewayDTO, len(gateways))
	for i, g := range gateways {
		gatewayDTOs[i] = dto.GatewayDTO{ID: g.ID(), Title: g.Title()}
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.CheckoutResponseDTO{
		PaymentType:     decision.PaymentType,
		Total:           decision.Total,
		CreditUsed:      decision.CreditUsed,
		RemainingAmount: decision.RemainingAmount,
		Gateways:        gatewayDTOs,
	})
}
