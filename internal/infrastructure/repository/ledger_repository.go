package repository

import (
	"context"
	"errors"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	domainRepo "github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

// errStockGuard is an internal sentinel used to roll back the invoice
// transaction when a stock decrement is rejected. Callers see the failed
// product IDs, not this error.
type errStockGuard struct{}

func (errStockGuard) Error() string { return "stock guard rejected decrement" }

func (r *ledgerRepository) CreateInvoice(ctx context.Context, invoice *entity.Invoice, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Invoice first; GORM cascades the items in the same insert batch.
		if err := tx.Create(invoice).Error; err != nil {
			return err
		}

		for productID, qty := range decrements {
			res := tx.Model(&entity.Product{}).
				Where("id = ? AND stock >= ?", productID, qty).
				Update("stock", gorm.Expr("stock - ?", qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				failed = append(failed, productID)
			}
		}
		if len(failed) > 0 {
			return errStockGuard{}
		}

		// A cash amount taken at the counter is journalled like any later
		// payment, so paid always equals the sum of the payment rows.
		if invoice.Paid > 0 {
			initial := &entity.Payment{
				InvoiceID:  invoice.ID,
				CustomerID: invoice.CustomerID,
				Amount:     invoice.Paid,
				Method:     invoice.PaymentMethod,
				CreatedBy:  invoice.CreatedBy,
			}
			if err := tx.Create(initial).Error; err != nil {
				return err
			}
		}

		// Walk-in sales carry no customer; nothing to add to a balance.
		if invoice.CustomerID != nil && invoice.Due > 0 {
			res := tx.Model(&entity.Customer{}).
				Where("id = ?", *invoice.CustomerID).
				Update("total_due", gorm.Expr("total_due + ?", invoice.Due))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return domainRepo.ErrCustomerNotFound // vanished mid-flight
			}
		}

		return nil
	})

	if _, ok := err.(errStockGuard); ok {
		return failed, nil
	}
	return nil, err
}

func (r *ledgerRepository) ApplyPayment(ctx context.Context, payment *entity.Payment) (*entity.Invoice, error) {
	var invoice entity.Invoice

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&entity.Invoice{})
		// SQLite serializes writers on its own and rejects FOR UPDATE.
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}
		err := query.First(&invoice, "id = ?", payment.InvoiceID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainRepo.ErrInvoiceNotFound
		}
		if err != nil {
			return err
		}

		if invoice.Due <= 0 {
			return domainRepo.ErrInvoiceSettled
		}
		if payment.Amount > invoice.Due {
			return domainRepo.ErrPaymentExceedsDue
		}

		payment.CustomerID = invoice.CustomerID
		if err := tx.Create(payment).Error; err != nil {
			return err
		}

		invoice.Paid += payment.Amount
		invoice.Due = invoice.Total - invoice.Paid
		invoice.Status = enum.InvoiceStatusFor(invoice.Paid, invoice.Total)
		err = tx.Model(&entity.Invoice{}).
			Where("id = ?", invoice.ID).
			Updates(map[string]interface{}{
				"paid":   invoice.Paid,
				"due":    invoice.Due,
				"status": invoice.Status,
			}).Error
		if err != nil {
			return err
		}

		if invoice.CustomerID != nil {
			err := tx.Model(&entity.Customer{}).
				Where("id = ?", *invoice.CustomerID).
				Update("total_due", gorm.Expr("total_due - ?", payment.Amount)).Error
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &invoice, nil
}
