package service

import (
	"context"
	"fmt"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/apperror"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/printer"
	"github.com/google/uuid"
)

// ReceiptService renders invoices as ESC/POS receipts and sends them to
// the configured thermal printer.
type ReceiptService struct {
	invoiceRepo repository.InvoiceRepository
	printer     printer.Printer
	shopName    string
	charWidth   int
}

// NewReceiptService creates a new receipt service
func NewReceiptService(invoiceRepo repository.InvoiceRepository, p printer.Printer, shopName string, charWidth int) *ReceiptService {
	if charWidth <= 0 {
		charWidth = 32
	}
	return &ReceiptService{
		invoiceRepo: invoiceRepo,
		printer:     p,
		shopName:    shopName,
		charWidth:   charWidth,
	}
}

// RenderReceipt builds the ESC/POS byte stream for an invoice
func (s *ReceiptService) RenderReceipt(invoice *entity.Invoice) []byte {
	doc := printer.NewDocument(s.charWidth)
	doc.Init().
		SetAlign(printer.AlignCenter).
		SetFontSize(printer.FontDouble).
		Text(s.shopName).
		SetFontSize(printer.FontNormal).
		Text("Sales Receipt").
		SetAlign(printer.AlignLeft).
		Separator('=').
		KeyValue("Invoice", invoice.InvoiceNumber).
		KeyValue("Date", invoice.CreatedAt.Format("02-01-2006 15:04")).
		KeyValue("Customer", invoice.CustomerName)
	if invoice.CustomerPhone != nil {
		doc.KeyValue("Phone", *invoice.CustomerPhone)
	}
	doc.Separator('-')

	for _, item := range invoice.Items {
		doc.ItemLine(item.Quantity, item.ProductName, formatMoney(item.Total))
	}

	doc.Separator('-').
		KeyValue("Subtotal", formatMoney(invoice.Subtotal))
	if invoice.Tax > 0 {
		doc.KeyValue("Tax", formatMoney(invoice.Tax))
	}
	doc.SetBold(true).
		KeyValue("Total", formatMoney(invoice.Total)).
		SetBold(false).
		KeyValue("Paid", formatMoney(invoice.Paid))
	if invoice.Due > 0 {
		doc.KeyValue("Due", formatMoney(invoice.Due))
	}
	doc.Separator('=').
		SetAlign(printer.AlignCenter).
		Text("Thank you for your business!").
		FeedLines(3).
		Cut()

	return doc.Bytes()
}

// PrintReceipt renders and prints the receipt for an invoice
func (s *ReceiptService) PrintReceipt(ctx context.Context, invoiceID uuid.UUID) error {
	invoice, err := s.invoiceRepo.GetWithItems(ctx, invoiceID)
	if err != nil {
		return err
	}
	if invoice == nil {
		return apperror.NewNotFoundError("Invoice")
	}

	if err := s.printer.Print(s.RenderReceipt(invoice)); err != nil {
		return apperror.NewAppError(503, "Printer unavailable: "+err.Error())
	}
	return nil
}

func formatMoney(cents int64) string {
	return fmt.Sprintf("%.2f", entity.FromCents(cents))
}
