package enum

// PaymentMethod represents how a customer paid
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodEasypay  PaymentMethod = "easypay"
	PaymentMethodJazzcash PaymentMethod = "jazzcash"
	PaymentMethodBank     PaymentMethod = "bank"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodEasypay, PaymentMethodJazzcash, PaymentMethodBank:
		return true
	}
	return false
}
