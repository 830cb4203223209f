package response

import (
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/google/uuid"
)

// The entity marshalers omit cost figures so shopkeeper responses can
// never leak margins. Handlers swap in these flat views for owner
// requests; embedding the entities would not work because their own
// MarshalJSON would shadow the added fields.

// OwnerProductView is the owner-facing shape of a product, cost included
type OwnerProductView struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Category     string           `json:"category"`
	Unit         enum.ProductUnit `json:"unit"`
	PricePerUnit float64          `json:"price_per_unit"`
	CostPerUnit  *float64         `json:"cost_per_unit"`
	Stock        int              `json:"stock"`
	Watts        *string          `json:"watts,omitempty"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// NewOwnerProductView builds the owner-facing view of a product
func NewOwnerProductView(p entity.Product) OwnerProductView {
	return OwnerProductView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		Unit:         p.Unit,
		PricePerUnit: p.GetPriceDecimal(),
		CostPerUnit:  p.GetCostDecimal(),
		Stock:        p.Stock,
		Watts:        p.Watts,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewOwnerProductViews builds owner-facing views for a product list
func NewOwnerProductViews(products []entity.Product) []OwnerProductView {
	views := make([]OwnerProductView, 0, len(products))
	for _, p := range products {
		views = append(views, NewOwnerProductView(p))
	}
	return views
}

// OwnerInvoiceItemView is the owner-facing shape of an invoice item
type OwnerInvoiceItemView struct {
	ID           uuid.UUID        `json:"id"`
	ProductID    uuid.UUID        `json:"product_id"`
	ProductName  string           `json:"product_name"`
	Unit         enum.ProductUnit `json:"unit"`
	Quantity     int              `json:"quantity"`
	PricePerUnit float64          `json:"price_per_unit"`
	CostPerUnit  *float64         `json:"cost_per_unit"`
	Total        float64          `json:"total"`
}

// OwnerInvoiceView is the owner-facing shape of an invoice
type OwnerInvoiceView struct {
	ID            uuid.UUID              `json:"id"`
	InvoiceNumber string                 `json:"invoice_number"`
	CustomerID    *uuid.UUID             `json:"customer_id,omitempty"`
	CustomerName  string                 `json:"customer_name"`
	CustomerPhone *string                `json:"customer_phone,omitempty"`
	Subtotal      float64                `json:"subtotal"`
	Tax           float64                `json:"tax"`
	Total         float64                `json:"total"`
	Paid          float64                `json:"paid"`
	Due           float64                `json:"due"`
	PaymentMethod enum.PaymentMethod     `json:"payment_method"`
	Status        enum.InvoiceStatus     `json:"status"`
	CreatedBy     uuid.UUID              `json:"created_by"`
	CreatedAt     time.Time              `json:"created_at"`
	Items         []OwnerInvoiceItemView `json:"items"`
}

// NewOwnerInvoiceView builds the owner-facing view of an invoice
func NewOwnerInvoiceView(inv entity.Invoice) OwnerInvoiceView {
	items := make([]OwnerInvoiceItemView, 0, len(inv.Items))
	for _, item := range inv.Items {
		var cost *float64
		if item.CostPerUnit != nil {
			c := entity.FromCents(*item.CostPerUnit)
			cost = &c
		}
		items = append(items, OwnerInvoiceItemView{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Unit:         item.Unit,
			Quantity:     item.Quantity,
			PricePerUnit: entity.FromCents(item.PricePerUnit),
			CostPerUnit:  cost,
			Total:        entity.FromCents(item.Total),
		})
	}
	return OwnerInvoiceView{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		CustomerPhone: inv.CustomerPhone,
		Subtotal:      entity.FromCents(inv.Subtotal),
		Tax:           entity.FromCents(inv.Tax),
		Total:         entity.FromCents(inv.Total),
		Paid:          entity.FromCents(inv.Paid),
		Due:           entity.FromCents(inv.Due),
		PaymentMethod: inv.PaymentMethod,
		Status:        inv.Status,
		CreatedBy:     inv.CreatedBy,
		CreatedAt:     inv.CreatedAt,
		Items:         items,
	}
}
