package saletype

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/dto"
	"github.com/arta-commerce/bajetpay/internal/service/saletypeservice"
	"github.com/arta-commerce/bajetpay/internal/session"
	"github.com/arta-commerce/bajetpay/pkg/utils"
)

type Service interface {
	Resolve(ctx context.Context, sessionID, cookieValue string) domain.SaleType
	Update(ctx context.Context, sessionID, value string) (domain.SaleType, error)
}

type SaleTypeHandler struct {
	saleTypeService Service
	validate        *validator.Validate
}

func New(saleTypeService Service) *SaleTypeHandler {
	return &SaleTypeHandler{
		saleTypeService: saleTypeService,
		validate:        validator.New(),
	}
}

// GetSaleType godoc
//
//	@Summary		Get active sale type
//	@Description	Resolve the active sale type: cookie wins over session, falling back to normal.
//	@Tags			SaleType
//	@Produce		json
//	@Success		200	{object}	dto.SaleTypeResponseDTO	"Active sale type"
//	@Router			/api/user/sale-type [get]
func (h *SaleTypeHandler) GetSaleType(w http.ResponseWriter, r *http.Request) {
	sessionID := session.IDFromContext(r.Context())
	saleType := h.saleTypeService.Resolve(r.Context(), sessionID, session.SaleTypeCookie(r))
	utils.RespondWithJSON(w, http.StatusOK, dto.SaleTypeResponseDTO{SaleType: string(saleType)})
}

// UpdateSaleType godoc
//
//	@Summary		Update sale type
//	@Description	Switch between normal and bajet mode. Rejected while the cart has items.
//	@Tags			SaleType
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.UpdateSaleTypeRequestDTO	true	"Desired sale type"
//	@Success		200		{object}	dto.SaleTypeResponseDTO			"Updated sale type"
//	@Failure		400		{object}	utils.Response					"Invalid sale type"
//	@Failure		409		{object}	utils.Response					"Cart is not empty"
//	@Failure		500		{object}	utils.Response					"Internal server error"
//	@Router			/api/user/sale-type [post]
func (h *SaleTypeHandler) UpdateSaleType(w http.ResponseWriter, r *http.Request) {
	sessionID := session.IDFromContext(r.Context())

	var req dto.UpdateSaleTypeRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid sale type")
		return
	}

	saleType, err := h.saleTypeService.Update(r.Context(), sessionID, req.SaleType)
	if err != nil {
		switch {
		case errors.Is(err, saletypeservice.ErrInvalidSaleType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, saletypeservice.ErrCartNotEmpty):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	session.SetSaleTypeCookie(w, string(saleType))
	utils.RespondWithJSON(w, http.StatusOK, dto.SaleTypeResponseDTO{SaleType: string(saleType)})
}
