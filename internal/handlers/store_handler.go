package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/services"
)

// StoreHandler handles HTTP requests for stores.
type StoreHandler struct {
	service  *services.StoreService
	validate *validator.Validate
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService) *StoreHandler {
	return &StoreHandler{
		service:  service,
		validate: newValidate(),
	}
}

// RegisterRoutes registers the store routes with the Fiber app.
func (h *StoreHandler) RegisterRoutes(router fiber.Router) {
	storeRoutes := router.Group("/stores")
	storeRoutes.Get("/", h.HandleListStores)
	storeRoutes.Get("/:id", h.HandleGetStore)
	storeRoutes.Post("/", h.HandleCreateStore)
	storeRoutes.Patch("/:id", h.HandleUpdateStore)
	storeRoutes.Delete("/:id", h.HandleDeleteStore)
	storeRoutes.Get("/:id/products", h.HandleListStoreProducts)
}

// CreateStoreRequest is the request body for creating a store.
type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=255"`
	Location string `json:"location" validate:"required,min=1,max=255"`
}

// UpdateStoreRequest is the request body for a partial store update.
type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=255"`
	Location *string `json:"location" validate:"omitempty,min=1,max=255"`
}

func (r *UpdateStoreRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Location != nil {
		fields["location"] = *r.Location
	}
	return fields
}

type pageLimitQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// HandleListStores returns one page of stores.
func (h *StoreHandler) HandleListStores(c *fiber.Ctx) error {
	q := pageLimitQuery{Page: 1, Limit: 10}
	if err := c.QueryParser(&q); err != nil {
		return apperrors.BadRequest("Invalid query parameters", nil)
	}
	if q.Page < 1 {
		return apperrors.BadRequest("Invalid query parameters",
			map[string]string{"page": "must be at least 1"})
	}
	q.Limit = clampLimit(q.Limit)

	stores, total, err := h.service.ListStores(q.Page, q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"stores":     stores,
		"pagination": newPagination(q.Page, q.Limit, total),
	})
}

// HandleGetStore retrieves a single store by its ID.
func (h *StoreHandler) HandleGetStore(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Store not found")
	}
	store, err := h.service.GetStoreByID(id)
	if err != nil {
		return err
	}
	return c.JSON(store)
}

// HandleCreateStore creates a new store.
func (h *StoreHandler) HandleCreateStore(c *fiber.Ctx) error {
	var req CreateStoreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Invalid request body", validationDetails(err))
	}

	store := models.Store{
		Name:     req.Name,
		Location: req.Location,
	}
	if err := h.service.CreateStore(&store); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(store)
}

// HandleUpdateStore applies a partial update to a store.
func (h *StoreHandler) HandleUpdateStore(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Store not found")
	}

	var req UpdateStoreRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Invalid request body", validationDetails(err))
	}

	store, err := h.service.UpdateStore(id, req.fields())
	if err != nil {
		return err
	}
	return c.JSON(store)
}

// HandleDeleteStore deletes a store and all of its products.
func (h *StoreHandler) HandleDeleteStore(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Store not found")
	}
	if err := h.service.DeleteStore(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type storeProductsQuery struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Category string `query:"category"`
}

// HandleListStoreProducts returns one page of a store's products,
// optionally narrowed to a category name.
func (h *StoreHandler) HandleListStoreProducts(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.NotFound("Store not found")
	}

	q := storeProductsQuery{Page: 1, Limit: 10}
	if err := c.QueryParser(&q); err != nil {
		return apperrors.BadRequest("Invalid query parameters", nil)
	}
	if q.Page < 1 {
		return apperrors.BadRequest("Invalid query parameters",
			map[string]string{"page": "must be at least 1"})
	}
	q.Limit = clampLimit(q.Limit)

	products, total, err := h.service.ListStoreProducts(id, q.Page, q.Limit, q.Category)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"products":   products,
		"pagination": newPagination(q.Page, q.Limit, total),
	})
}
