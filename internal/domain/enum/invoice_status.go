package enum

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// InvoiceStatusFor derives the status from the paid and total amounts (in cents).
// The status is never stored independently of this function.
func InvoiceStatusFor(paid, total int64) InvoiceStatus {
	if total-paid <= 0 {
		return InvoiceStatusPaid
	}
	if paid > 0 {
		return InvoiceStatusPartial
	}
	return InvoiceStatusUnpaid
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid:
		return true
	}
	return false
}
