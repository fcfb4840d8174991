package dto

type PriceRequestDTO struct {
	ProductID int     `json:"product_id" validate:"required,gt=0" example:"101"`
	BasePrice float64 `json:"base_price" validate:"required,gt=0" example:"250"`
}

type PriceResponseDTO struct {
	ProductID int     `json:"product_id" example:"101"`
	Price     float64 `json:"price" example:"280"`
	SaleType  string  `json:"sale_type" example:"bajet"`
}

type FeeLineDTO struct {
	Label  string  `json:"label" example:"Bajet credit"`
	Amount float64 `json:"amount" example:"-300"`
}

type CartTotalsResponseDTO struct {
	Subtotal  float64      `json:"subtotal" example:"784"`
	CreditFee float64      `json:"credit_fee" example:"-300"`
	Total     float64      `json:"total" example:"484"`
	Fees      []FeeLineDTO `json:"fees,omitempty"`
}

type CheckoutRequestDTO struct {
	SaleType string `json:"sale_type" validate:"required,oneof=normal bajet" example:"bajet"`
}

type GatewayDTO struct {
	ID    string `json:"id" example:"mellat"`
	Title string `json:"title" example:"Mellat"`
}

type CheckoutResponseDTO struct {
	PaymentType     string       `json:"payment_type" example:"split"`
	Total           float64      `json:"total" example:"784"`
	CreditUsed      float64      `json:"credit_used" example:"300"`
	RemainingAmount float64      `json:"remaining_amount" example:"484"`
	Gateways        []GatewayDTO `json:"gateways"`
}

type OrderCreateRequestDTO struct {
	Order string  `json:"order" validate:"required" example:"2377225624"`
	Total float64 `json:"total" validate:"required,gt=0" example:"784"`
}

type OrderResponseDTO struct {
	Number             string  `json:"number" example:"2377225624"`
	Status             string  `json:"status" example:"processing"`
	Total              float64 `json:"total" example:"784"`
	SaleType           string  `json:"sale_type" example:"bajet"`
	PaymentType        string  `json:"payment_type" example:"full_credit"`
	CreditUsed         float64 `json:"credit_used,omitempty" example:"300"`
	RemainingAmount    float64 `json:"remaining_amount,omitempty" example:"484"`
	SecondOrderNumber  string  `json:"second_order_number,omitempty" example:"424242424249"`
	PaymentMethodTitle string  `json:"payment_method_title,omitempty" example:"Paid from Bajet credit"`
	CreatedAt          string  `json:"created_at" example:"2025-12-09T16:09:57+03:00"`
}

type PaymentCompleteResponseDTO struct {
	Message           string `json:"message"`
	SecondOrderNumber string `json:"second_order_number,omitempty" example:"424242424249"`
	RedirectURL       string `json:"redirect_url,omitempty" example:"https://pay.example/redirect/42"`
}

type OrderStatusRequestDTO struct {
	Status string `json:"status" validate:"required,oneof=new processing completed" example:"processing"`
}
