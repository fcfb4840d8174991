package settings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/arta-commerce/bajetpay/internal/domain"
	"github.com/arta-commerce/bajetpay/internal/dto"
	"github.com/arta-commerce/bajetpay/internal/service/gatewayservice"
	"github.com/arta-commerce/bajetpay/pkg/utils"
)

type Service interface {
	GetSettings(ctx context.Context) (*domain.GatewaySettings, error)
	UpdateSettings(ctx context.Context, settings *domain.GatewaySettings) error
}

type SettingsHandler struct {
	gatewayService Service
	validate       *validator.Validate
}

func New(gatewayService Service) *SettingsHandler {
	return &SettingsHandler{
		gatewayService: gatewayService,
		validate:       validator.New(),
	}
}

// GetSettings godoc
//
//	@Summary		Get gateway settings (admin)
//	@Tags			Settings
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	dto.GatewaySettingsDTO	"Current settings"
//	@Failure		401	{object}	utils.Response			"User not authorized"
//	@Failure		403	{object}	utils.Response			"Admin access required"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settings [get]
func (h *SettingsHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.gatewayService.GetSettings(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GatewaySettingsDTO{
		BajetGateways:        settings.BajetGateways,
		NormalGateways:       settings.NormalGateways,
		DefaultSecondGateway: settings.DefaultSecondGateway,
		MarkupPercent:        settings.MarkupPercent,
	})
}

// UpdateSettings godoc
//
//	@Summary		Update gateway settings (admin)
//	@Description	Replace the per-mode gateway allow-lists, the default second gateway and the bajet markup percent.
//	@Tags			Settings
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.GatewaySettingsDTO	true	"New settings"
//	@Success		200		{object}	utils.Response			"Settings updated"
//	@Failure		400		{object}	utils.Response			"Invalid settings"
//	@Failure		401		{object}	utils.Response			"User not authorized"
//	@Failure		403		{object}	utils.Response			"Admin access required"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/admin/settings [put]
func (h *SettingsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req dto.GatewaySettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid settings")
		return
	}

	err := h.gatewayService.UpdateSettings(r.Context(), &domain.GatewaySettings{
		BajetGateways:        req.BajetGateways,
		NormalGateways:       req.NormalGateways,
		DefaultSecondGateway: req.DefaultSecondGateway,
		MarkupPercent:        req.MarkupPercent,
	})
	if err != nil {
		if errors.Is(err, gatewayservice.ErrInvalidMarkupPercent) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "settings updated"})
}
