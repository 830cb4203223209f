package handler

import (
	"time"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/application/service"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/enum"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/dto/request"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/dto/response"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// InvoiceHandler handles billing HTTP requests
type InvoiceHandler struct {
	billingService *service.BillingService
	receiptService *service.ReceiptService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(billingService *service.BillingService, receiptService *service.ReceiptService) *InvoiceHandler {
	return &InvoiceHandler{
		billingService: billingService,
		receiptService: receiptService,
	}
}

// invoiceData returns the representation appropriate for the caller's role
func invoiceData(c *gin.Context, invoice *entity.Invoice) interface{} {
	if IsOwner(c) {
		return response.NewOwnerInvoiceView(*invoice)
	}
	return invoice
}

// Create handles invoice creation. The idempotency middleware guards this
// route, so a retried request replays the original response.
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	items := make([]service.InvoiceItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.InvoiceItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	invoice, err := h.billingService.CreateInvoice(c.Request.Context(), &service.CreateInvoiceInput{
		CustomerID:    req.CustomerID,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		Paid:          req.Paid,
		PaymentMethod: req.PaymentMethod,
		CreatedBy:     *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoiceData(c, invoice))
}

// Get handles retrieving an invoice with its items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.billingService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoiceData(c, invoice))
}

// GetByNumber handles retrieving an invoice by its human-readable number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	invoice, err := h.billingService.GetInvoiceByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoiceData(c, invoice))
}

// List handles listing invoices with filters
func (h *InvoiceHandler) List(c *gin.Context) {
	params := &repository.InvoiceFilterParams{
		Pagination: GetPaginationParams(c),
		Search:     c.Query("search"),
	}

	if raw := c.Query("status"); raw != "" {
		status := enum.InvoiceStatus(raw)
		if !status.Valid() {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		params.Status = &status
	}
	if raw := c.Query("customer_id"); raw != "" {
		customerID, err := uuid.Parse(raw)
		if err != nil {
			response.BadRequest(c, "Invalid customer_id filter")
			return
		}
		params.CustomerID = &customerID
	}
	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid start_date, expected YYYY-MM-DD")
			return
		}
		params.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			response.BadRequest(c, "Invalid end_date, expected YYYY-MM-DD")
			return
		}
		endExclusive := end.AddDate(0, 0, 1)
		params.EndDate = &endExclusive
	}

	invoices, total, err := h.billingService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	result := pagination.NewPaginatedResult(invoices, meta)
	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully", result)
}

// Pending handles listing invoices that still carry a due amount
func (h *InvoiceHandler) Pending(c *gin.Context) {
	params := GetPaginationParams(c)

	invoices, total, err := h.billingService.GetPendingInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.NewPagination(params.Page, params.PerPage, total)
	result := pagination.NewPaginatedResult(invoices, meta)
	response.SuccessWithPagination(c, 200, "Pending invoices retrieved successfully", result)
}

// RecordPayment handles applying a payment against an invoice. Guarded by
// the idempotency middleware.
func (h *InvoiceHandler) RecordPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	invoice, payment, err := h.billingService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		InvoiceID: id,
		Amount:    req.Amount,
		Method:    req.Method,
		CreatedBy: *userID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Payment recorded successfully", gin.H{
		"invoice": invoiceData(c, invoice),
		"payment": payment,
	})
}

// Payments handles listing an invoice's payment journal
func (h *InvoiceHandler) Payments(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	payments, err := h.billingService.ListInvoicePayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice payments retrieved successfully", payments)
}

// PrintReceipt handles sending an invoice receipt to the thermal printer
func (h *InvoiceHandler) PrintReceipt(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.receiptService.PrintReceipt(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt sent to printer", nil)
}
