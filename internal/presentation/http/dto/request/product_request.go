package request

// CreateProductRequest represents the payload for creating a product
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Code        string  `json:"code"`
	Category    string  `json:"category"`
	Price       int64   `json:"price" binding:"min=0"`
	Stock       int     `json:"stock" binding:"min=0"`
	StockAlert  int     `json:"stock_alert" binding:"min=0"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// UpdateProductRequest represents the payload for updating a product.
// Omitted fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Price       *int64  `json:"price"`
	Stock       *int    `json:"stock"`
	StockAlert  *int    `json:"stock_alert"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// ListProductsRequest represents query parameters for the catalog listing
type ListProductsRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Category  string `form:"category"`
	LowStock  bool   `form:"low_stock"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
}
