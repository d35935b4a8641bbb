// internal/checkout/options.go
package checkout

// DeliveryOption is one of the fixed delivery choices offered at the
// delivery step.
type DeliveryOption struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	EstimatedDays string  `json:"estimated_days"`
}

// PaymentMethod is one of the fixed payment choices offered at the payment
// step.
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Icon string `json:"icon"`
}

const (
	TypeCard    = "card"
	TypeEwallet = "ewallet"
)

var deliveryOptions = []DeliveryOption{
	{
		ID:            "uk-standard",
		Name:          "UK Standard Shipping",
		Description:   "Standard delivery within UK mainland",
		Price:         9.99,
		EstimatedDays: "3-5 business days",
	},
	{
		ID:            "uk-express",
		Name:          "UK Express Shipping",
		Description:   "Next day delivery within UK mainland",
		Price:         19.99,
		EstimatedDays: "1 business day",
	},
	{
		ID:            "euro-shipping",
		Name:          "European Shipping",
		Description:   "Delivery to European countries",
		Price:         24.99,
		EstimatedDays: "5-7 business days",
	},
	{
		ID:            "international",
		Name:          "International Shipping",
		Description:   "Worldwide delivery service",
		Price:         39.99,
		EstimatedDays: "7-14 business days",
	},
	{
		ID:            "customer-pickup",
		Name:          "Customer Pickup",
		Description:   "Collect from our warehouse",
		Price:         0,
		EstimatedDays: "Same day",
	},
}

var paymentMethods = []PaymentMethod{
	{ID: "card", Name: "Credit/Debit Card", Type: TypeCard, Icon: "💳"},
	{ID: "paypal", Name: "PayPal", Type: TypeEwallet, Icon: "🟦"},
	{ID: "apple-pay", Name: "Apple Pay", Type: TypeEwallet, Icon: "🍎"},
	{ID: "google-pay", Name: "Google Pay", Type: TypeEwallet, Icon: "🔵"},
}

// DeliveryOptions returns the configured delivery choices in display order.
func DeliveryOptions() []DeliveryOption {
	out := make([]DeliveryOption, len(deliveryOptions))
	copy(out, deliveryOptions)
	return out
}

// PaymentMethods returns the configured payment choices in display order.
func PaymentMethods() []PaymentMethod {
	out := make([]PaymentMethod, len(paymentMethods))
	copy(out, paymentMethods)
	return out
}

func DeliveryOptionByID(id string) (DeliveryOption, bool) {
	for _, option := range deliveryOptions {
		if option.ID == id {
			return option, true
		}
	}
	return DeliveryOption{}, false
}

func PaymentMethodByID(id string) (PaymentMethod, bool) {
	for _, method := range paymentMethods {
		if method.ID == id {
			return method, true
		}
	}
	return PaymentMethod{}, false
}
