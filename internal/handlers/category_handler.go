package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"gudang/internal/apperrors"
	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/services"
)

// CategoryHandler handles HTTP requests for categories. The category
// surface paginates with limit/offset and responds with {items, total,
// limit, offset}; that shape is part of the contract.
type CategoryHandler struct {
	service  *services.CategoryService
	validate *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		validate: newValidate(),
	}
}

// RegisterRoutes registers the category routes with the Fiber app.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Get("/:id", h.HandleGetCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// CreateCategoryRequest is the request body for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
}

// UpdateCategoryRequest is the request body for updating a category. The
// route uses PUT but the semantics are a partial update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
}

func (r *UpdateCategoryRequest) fields() map[string]any {
	fields := make(map[string]any)
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	return fields
}

type listCategoriesQuery struct {
	Search          string `query:"search"`
	Limit           int    `query:"limit" validate:"min=1"`
	Offset          int    `query:"offset" validate:"min=0"`
	SortBy          string `query:"sortBy" validate:"oneof=name createdAt"`
	Order           string `query:"order" validate:"oneof=asc desc"`
	IncludeProducts bool   `query:"includeProducts"`
}

// HandleCreateCategory creates a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var req CreateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Validation error", validationDetails(err))
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.service.CreateCategory(&category); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleListCategories returns the window of categories selected by the
// query.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	q := listCategoriesQuery{Limit: 10, Offset: 0, SortBy: "createdAt", Order: "desc"}
	if err := c.QueryParser(&q); err != nil {
		return apperrors.BadRequest("Invalid query parameters", nil)
	}
	if err := h.validate.Struct(q); err != nil {
		return apperrors.BadRequest("Validation error", validationDetails(err))
	}

	opts := repositories.CategoryListOptions{
		Search:          q.Search,
		Limit:           q.Limit,
		Offset:          q.Offset,
		SortBy:          q.SortBy,
		Order:           q.Order,
		IncludeProducts: q.IncludeProducts,
	}
	categories, total, err := h.service.ListCategories(opts)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"items":  categories,
		"total":  total,
		"limit":  q.Limit,
		"offset": q.Offset,
	})
}

// HandleGetCategory retrieves a single category, optionally with its
// products.
func (h *CategoryHandler) HandleGetCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.BadRequest("Validation error",
			map[string]string{"id": "must be a valid UUID"})
	}
	includeProducts := c.Query("includeProducts") == "true"

	category, err := h.service.GetCategoryByID(id, includeProducts)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleUpdateCategory applies a partial update to a category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.BadRequest("Validation error",
			map[string]string{"id": "must be a valid UUID"})
	}

	var req UpdateCategoryRequest
	if err := parseBody(c, &req); err != nil {
		return err
	}
	if err := h.validate.Struct(req); err != nil {
		return apperrors.BadRequest("Validation error", validationDetails(err))
	}

	category, err := h.service.UpdateCategory(id, req.fields())
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// HandleDeleteCategory deletes a category by its ID.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	if uuid.Validate(id) != nil {
		return apperrors.BadRequest("Validation error",
			map[string]string{"id": "must be a valid UUID"})
	}
	if err := h.service.DeleteCategory(id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
