package dto

type GatewaySettingsDTO struct {
	BajetGateways        []string `json:"bajet_gateways" example:"mellat,bajet_credit"`
	NormalGateways       []string `json:"normal_gateways" example:"mellat,asanpardakht"`
	DefaultSecondGateway string   `json:"default_second_gateway" validate:"required" example:"mellat"`
	MarkupPercent        float64  `json:"markup_percent" validate:"gte=0,lte=100" example:"12"`
}
