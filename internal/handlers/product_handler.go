package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service  *services.ProductService
	validate *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService) *ProductHandler {
	return &ProductHandler{
		service:  service,
		validate: newValidate(),
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleListProducts)
	productRoutes.Get("/:id", h.HandleGetProduct)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Patch("/:id", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// CreateProductRequest is the request body for creating a product.
type CreateProductRequest struct {
	StoreID    string          `json:"storeId" validate:"required,uuid"`
	Name       string          `json:"name" validate:"required,min=1,max=255"`
	Category   string          `json:"category" validate:"required,min=1,max=100"`
	CategoryID *string         `json:"categoryId" validate:"omitempty,uuid"`
	Price      decimal.Decimal `json:"price" validate:"required,gt=0"`
	Quantity   *int            `json:"quantity" validate:"required,min=0"`
	ImageURL   *string         `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// UpdateProductRequest is the request body for a partial product update.
// storeId is deliberately absent: a product cannot move between stores.
type UpdateProductRequest struct {
	Name       *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Category   *string          `json:"category" validate:"omitempty,min=1,max=100"`
	CategoryID *string          `json:"categoryId" validate:"omitempty,uuid"`
	Price      *decimal.Decimal `json:"price" validate:"omitempty,gt=0"`
	Quantity   *int             `json:"quantity" validate:"omitempty,min=0"`
	ImageURL   *string          `json:"imageUrl" validate:"omitempty,url,max=500"`
}

// fields maps the present patch fields to their columns. An empty map
// means an empty patch.
func (r *UpdateProductRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Category != nil {
		fields["category"] = *r.Category
	}
	if r.CategoryID != nil {
		fields["category_id"] = *r.CategoryID
	}
	if r.Price != nil {
		fields["price"] = *r.Price
	}
	if r.Quantity != nil {
		fields["quantity"] = *r.Quantity
	}
	if r.ImageURL != nil {
		fields["image_url"] = *r.ImageURL
	}
	return fields
}

type listProductsQuery struct {
	Page       int    `query:"page"`
	Limit      int    `query:"limit"`
	Category   string `query:"category"`
	CategoryID string `query:"categoryId" validate:"omitempty,uuid"`
	StoreID    string `query:"storeId" validate:"omitempty,uuid"`
	MinPrice   string `query:"minPrice"`
	MaxPrice   string `query:"maxPrice"`
	Search     string `query:"search"`
	Stock      string `query:"stock" validate:"omitempty,oneof=low_stock in_stock out_of_stock"`
}

// parsePrice turns an optional query price into a decimal, rejecting
// non-numeric and non-positive values.
func parsePrice(field, raw string) (*decimal.Decimal, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsPositive() {
		return nil, apperrors.BadRequest("Invalid query parameters",
			map[string]string{field: "must be a positive number"})
	}
	return &d, nil
}

// HandleListProducts returns one page of products matching the query
// filters, echoing the active filters back.
func (h *ProductHandler) HandleListProducts(c *fiber.Ctx) error {
	q := listProductsQuery{Page: 1, Limit: 10}
	if err := c.QueryParser(&q); err != nil {
		return apperrors.BadRequest("Invalid query parameters", nil)
	}
	if q.Page < 1 {
		return apperrors.BadRequest("Invalid query parameters",
			map[string]string{"page": "must be at least 1"})
	}
	q.Limit = clampLimit(q.Limit)

	if err := h.validate.Struct(q); err != nil {
		return apperrors.BadRequest("Invalid query parameters", validationDetails(err))
	}

	minPrice, err := parsePrice("minPrice", q.MinPrice)
	if err != nil {
		return err
	}
	maxPrice, err := parsePrice("maxPrice", q.MaxPrice)
	if err != nil {
		return err
	}

	filter := repositories.ProductFilter{
		Category:   q.Category,
		CategoryID: q.CategoryID,
		StoreID:    q.StoreID,
		MinPrice:   minPrice,
		MaxPrice:   maxPrice,
		Search:     q.Search,
		Stock:      q.Stock,
	}

	products, total, err := h.service.ListProducts(q.Page, q.Limit, filter)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"products":   products,
		"pagination": newPagination(q.Page, q.Limit, total),
		"filters":    filter,
	})
}

// HandleGetProduct retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Product not found")
	}
	product, err := h.service.GetProductByID(id)
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req CreateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Invalid request body", validationDetails(err))
	}

	product := models.Product{
		StoreID:    req.StoreID,
		CategoryID: req.CategoryID,
		Name:       req.Name,
		Category:   req.Category,
		Price:      req.Price,
		Quantity:   *req.Quantity,
		ImageURL:   req.ImageURL,
	}
	if err := h.service.CreateProduct(&product); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleUpdateProduct applies a partial update to a product.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Product not found")
	}

	var req UpdateProductRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Invalid request body", validationDetails(err))
	}

	product, err := h.service.UpdateProduct(id, req.fields())
	if err != nil {
		return err
	}
	return c.JSON(product)
}

// HandleDeleteProduct deletes a product by its ID.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Product not found")
	}
	if err := h.service.DeleteProduct(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
