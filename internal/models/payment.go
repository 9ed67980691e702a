package models

type VIPLevel int

const (
	VIPNone  VIPLevel = 0
	VIPBasic VIPLevel = 1
	VIPPlus  VIPLevel = 2
	VIPUltra VIPLevel = 3
)

type Tier struct {
	Level       VIPLevel `json:"level"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Label       string   `json:"label"`
}

var tiers = map[VIPLevel]Tier{
	VIPBasic: {Level: VIPBasic, Price: 9.99, Description: "Basic VIP access with limited features", Label: "VIP Level 1 - $9.99/month"},
	VIPPlus:  {Level: VIPPlus, Price: 19.99, Description: "Premium VIP access with more features", Label: "VIP Level 2 - $19.99/month"},
	VIPUltra: {Level: VIPUltra, Price: 29.99, Description: "Ultimate VIP access with all features", Label: "VIP Level 3 - $29.99/month"},
}

// TierFor returns the fixed tier for level.
func TierFor(level VIPLevel) (Tier, bool) {
	t, ok := tiers[level]
	return t, ok
}

// Tiers lists the three tiers in level order.
func Tiers() []Tier {
	return []Tier{tiers[VIPBasic], tiers[VIPPlus], tiers[VIPUltra]}
}

type PaymentMethod string

const (
	MethodNone       PaymentMethod = ""
	MethodVisa       PaymentMethod = "Visa"
	MethodMasterCard PaymentMethod = "MasterCard"
	MethodPayPal     PaymentMethod = "PayPal"
)

// IsCard reports whether the method is entered through the card form.
func (m PaymentMethod) IsCard() bool {
	return m == MethodVisa || m == MethodMasterCard
}

func (m PaymentMethod) Valid() bool {
	return m.IsCard() || m == MethodPayPal
}

type PaymentState string

const (
	StateNoSelection    PaymentState = "no_selection"
	StateLevelSelected  PaymentState = "level_selected"
	StateMethodSelected PaymentState = "method_selected"
	StateDetailsValid   PaymentState = "details_valid"
	StateConfirmed      PaymentState = "confirmed"
)

// PaymentSummary is handed to the success screen once a flow is confirmed.
type PaymentSummary struct {
	Level       VIPLevel      `json:"level"`
	Price       float64       `json:"price"`
	Description string        `json:"description"`
	Method      PaymentMethod `json:"method"`
	PayPalEmail string        `json:"paypal_email"`
	SavePayment bool          `json:"save_payment"`
	Reference   string        `json:"reference"`
}
