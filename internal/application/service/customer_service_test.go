package service

import (
	"context"
	"testing"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOutstandingInvoiceRepo struct {
	fakeInvoiceRepo
	outstanding int64
}

func (f *fakeOutstandingInvoiceRepo) SumOutstandingByCustomer(context.Context, uuid.UUID) (int64, error) {
	return f.outstanding, nil
}

func newCustomerService(customers *fakeCustomerRepo, invoices *fakeOutstandingInvoiceRepo) *CustomerService {
	if invoices == nil {
		invoices = &fakeOutstandingInvoiceRepo{}
	}
	return NewCustomerService(customers, invoices, fakePaymentRepo{}, "PK")
}

func TestCreateCustomerNormalizesPhone(t *testing.T) {
	repo := newFakeCustomerRepo()
	svc := newCustomerService(repo, nil)

	customer, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  "Ahmed Khan",
		Phone: "0300 1234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "+923001234567", customer.Phone)
}

func TestCreateCustomerRejectsDuplicatePhone(t *testing.T) {
	existing := entity.Customer{ID: uuid.New(), Name: "Ahmed Khan", Phone: "+923001234567"}
	svc := newCustomerService(newFakeCustomerRepo(existing), nil)

	// Same number in a different spelling still collides.
	_, err := svc.CreateCustomer(context.Background(), &CreateCustomerInput{
		Name:  "A. Khan",
		Phone: "0300-1234567",
	})
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestDeleteCustomerWithBalanceRefused(t *testing.T) {
	indebted := entity.Customer{ID: uuid.New(), Name: "Ahmed Khan", Phone: "+923001234567", TotalDue: 5000}
	svc := newCustomerService(newFakeCustomerRepo(indebted), nil)

	err := svc.DeleteCustomer(context.Background(), indebted.ID)
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestCheckBalance(t *testing.T) {
	customer := entity.Customer{ID: uuid.New(), Name: "Ahmed Khan", Phone: "+923001234567", TotalDue: 30000}

	t.Run("consistent", func(t *testing.T) {
		svc := newCustomerService(newFakeCustomerRepo(customer), &fakeOutstandingInvoiceRepo{outstanding: 30000})
		check, err := svc.CheckBalance(context.Background(), customer.ID)
		require.NoError(t, err)
		assert.True(t, check.Consistent)
		assert.Equal(t, 0.0, check.DriftAmount)
	})

	t.Run("drifted", func(t *testing.T) {
		svc := newCustomerService(newFakeCustomerRepo(customer), &fakeOutstandingInvoiceRepo{outstanding: 25000})
		_, err := svc.CheckBalance(context.Background(), customer.ID)
		require.Error(t, err)

		// Drift is a 409 carrying both figures so the operator can see
		// what disagrees.
		appErr := apperror.GetAppError(err)
		assert.Equal(t, 409, appErr.Code)
		check, ok := appErr.Detail.(*BalanceCheck)
		require.True(t, ok)
		assert.False(t, check.Consistent)
		assert.Equal(t, 50.0, check.DriftAmount)
		assert.Equal(t, 250.0, check.LedgerSum)
	})
}
