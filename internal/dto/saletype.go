package dto

type SaleTypeResponseDTO struct {
	SaleType string `json:"sale_type" example:"bajet"`
}

type UpdateSaleTypeRequestDTO struct {
	SaleType string `json:"sale_type" validate:"required,oneof=normal bajet" example:"bajet"`
}

type CartLineDTO struct {
	ProductID int     `json:"product_id" validate:"required,gt=0" example:"101"`
	Quantity  int     `json:"quantity" validate:"required,gt=0" example:"2"`
	UnitPrice float64 `json:"unit_price" validate:"required,gt=0" example:"250"`
}

type CartUpdateRequestDTO struct {
	Lines []CartLineDTO `json:"lines" validate:"dive"`
}
