package handler

import (
	"strconv"

	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/application/service"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/entity"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/domain/repository"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/dto/request"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/internal/presentation/http/dto/response"
	"github.com/ATTAURREHMAN-DEVELOPER/ZES/pkg/pagination"
	"github.com/gin-gonic/gin"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	catalogService *service.CatalogService
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalogService *service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

// productData returns the representation appropriate for the caller's role
func productData(c *gin.Context, product *entity.Product) interface{} {
	if IsOwner(c) {
		return response.NewOwnerProductView(*product)
	}
	return product
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	product, err := h.catalogService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		CostPerUnit:  req.CostPerUnit,
		Stock:        req.Stock,
		Watts:        req.Watts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", productData(c, product))
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.catalogService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", productData(c, product))
}

// List handles listing products with search, category filter and sorting
func (h *ProductHandler) List(c *gin.Context) {
	params := &repository.ProductFilterParams{
		Pagination: GetPaginationParams(c),
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	products, total, err := h.catalogService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	meta := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	if IsOwner(c) {
		result := pagination.NewPaginatedResult(response.NewOwnerProductViews(products), meta)
		response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
		return
	}
	result := pagination.NewPaginatedResult(products, meta)
	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	product, err := h.catalogService.UpdateProduct(c.Request.Context(), id, &service.UpdateProductInput{
		Name:         req.Name,
		Category:     req.Category,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		CostPerUnit:  req.CostPerUnit,
		Watts:        req.Watts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", productData(c, product))
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.catalogService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}

// AdjustStock handles restocks and stock corrections
func (h *ProductHandler) AdjustStock(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	product, err := h.catalogService.AdjustStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stock adjusted successfully", productData(c, product))
}

// LowStock handles listing products at or below the low-stock threshold
func (h *ProductHandler) LowStock(c *gin.Context) {
	var threshold *int
	if raw := c.Query("threshold"); raw != "" {
		if t, err := strconv.Atoi(raw); err == nil {
			threshold = &t
		}
	}

	products, err := h.catalogService.GetLowStock(c.Request.Context(), threshold)
	if err != nil {
		response.Error(c, err)
		return
	}

	if IsOwner(c) {
		response.OK(c, "Low stock products retrieved successfully", response.NewOwnerProductViews(products))
		return
	}
	response.OK(c, "Low stock products retrieved successfully", products)
}
