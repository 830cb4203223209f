package request

// CreateProductRequest represents the create product request payload
type CreateProductRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category"`
	Unit         string   `json:"unit"`
	PricePerUnit float64  `json:"price_per_unit" binding:"min=0"`
	CostPerUnit  *float64 `json:"cost_per_unit"`
	Stock        int      `json:"stock" binding:"min=0"`
	Watts        *string  `json:"watts"`
}

// UpdateProductRequest represents the update product request payload;
// omitted fields are left unchanged
type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	Unit         *string  `json:"unit"`
	PricePerUnit *float64 `json:"price_per_unit"`
	CostPerUnit  *float64 `json:"cost_per_unit"`
	Watts        *string  `json:"watts"`
}

// AdjustStockRequest represents a signed stock adjustment
type AdjustStockRequest struct {
	Delta int `json:"delta" binding:"required"`
}
