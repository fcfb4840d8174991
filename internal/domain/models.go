package domain

import "time"

type SaleType string

const (
	SaleTypeNormal SaleType = "normal"
	SaleTypeBajet  SaleType = "bajet"
)

// ParseSaleType maps any unrecognized value to the normal mode.
func ParseSaleType(s string) SaleType {
	if s == string(SaleTypeBajet) {
		return SaleTypeBajet
	}
	return SaleTypeNormal
}

func ValidSaleType(s string) bool {
	return s == string(SaleTypeNormal) || s == string(SaleTypeBajet)
}

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	IsAdmin      bool      `db:"is_admin"`
	CreatedAt    time.Time `db:"created_at"`
}

type UserCredit struct {
	ID      int     `db:"id"`
	UserID  int     `db:"user_id"`
	Balance float64 `db:"balance"`
}

const (
	ChangeKindIncrease = "increase"
	ChangeKindDecrease = "decrease"
)

type CreditHistoryEntry struct {
	ID              int       `db:"id"`
	UserID          int       `db:"user_id"`
	PreviousBalance float64   `db:"previous_balance"`
	NewBalance      float64   `db:"new_balance"`
	Delta           float64   `db:"delta"`
	Kind            string    `db:"kind"`
	Reason          string    `db:"reason"`
	ActorID         int       `db:"actor_id"`
	CreatedAt       time.Time `db:"created_at"`
}

type GatewaySettings struct {
	BajetGateways        []string `db:"bajet_gateways"`
	NormalGateways       []string `db:"normal_gateways"`
	DefaultSecondGateway string   `db:"default_second_gateway"`
	MarkupPercent        float64  `db:"markup_percent"`
}

const (
	OrderStatusNew        = "new"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

const (
	PaymentTypeNone       = "none"
	PaymentTypeFullCredit = "full_credit"
	PaymentTypeFullBajet  = "full_bajet"
	PaymentTypeSplit      = "split"
)

type Order struct {
	ID                 int       `db:"id"`
	UserID             int       `db:"user_id"`
	OrderNumber        string    `db:"order_number"`
	Status             string    `db:"status"`
	Total              float64   `db:"total"`
	SaleType           string    `db:"sale_type"`
	PaymentType        string    `db:"payment_type"`
	CreditUsed         float64   `db:"credit_used"`
	RemainingAmount    float64   `db:"remaining_amount"`
	PaidViaCredit      bool      `db:"paid_via_credit"`
	CreditPaid         bool      `db:"credit_paid"`
	SecondPaymentDone  bool      `db:"second_payment_done"`
	SecondOrderNumber  string    `db:"second_order_number"`
	IsSecondPayment    bool      `db:"is_second_payment"`
	OriginalOrderID    int       `db:"original_order_id"`
	PaymentMethod      string    `db:"payment_method"`
	PaymentMethodTitle string    `db:"payment_method_title"`
	CreatedAt          time.Time `db:"created_at"`
}

// PendingSettlement carries the checkout decision between the submission
// step and the order-creation step, when the order does not exist yet.
type PendingSettlement struct {
	PaymentType     string  `json:"payment_type"`
	FullCredit      bool    `json:"full_credit"`
	CreditAmount    float64 `json:"credit_amount"`
	CreditUsed      float64 `json:"credit_used"`
	RemainingAmount float64 `json:"remaining_amount"`
	SaleType        string  `json:"sale_type"`
}

type CartLine struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}
