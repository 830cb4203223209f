package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoiceStatusFor(t *testing.T) {
	tests := []struct {
		name  string
		paid  int64
		total int64
		want  InvoiceStatus
	}{
		{"nothing paid", 0, 10000, InvoiceStatusUnpaid},
		{"partially paid", 4000, 10000, InvoiceStatusPartial},
		{"paid in full", 10000, 10000, InvoiceStatusPaid},
		{"single cent remaining", 9999, 10000, InvoiceStatusPartial},
		{"zero total", 0, 0, InvoiceStatusPaid},
		{"overpaid still counts as paid", 12000, 10000, InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InvoiceStatusFor(tt.paid, tt.total))
		})
	}
}

func TestInvoiceStatusValid(t *testing.T) {
	assert.True(t, InvoiceStatusUnpaid.Valid())
	assert.True(t, InvoiceStatusPartial.Valid())
	assert.True(t, InvoiceStatusPaid.Valid())
	assert.False(t, InvoiceStatus("refunded").Valid())
	assert.False(t, InvoiceStatus("").Valid())
}

func TestPaymentMethodValid(t *testing.T) {
	for _, m := range []PaymentMethod{PaymentMethodCash, PaymentMethodCard, PaymentMethodEasypay, PaymentMethodJazzcash, PaymentMethodBank} {
		assert.True(t, m.Valid(), string(m))
	}
	assert.False(t, PaymentMethod("cheque").Valid())
}
