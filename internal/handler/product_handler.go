package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"prodcat/internal/errors"
	"prodcat/internal/model"
	"prodcat/internal/service"
)

// ProductHandler handles product catalog endpoints.
type ProductHandler struct {
	productService service.ProductService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// CreateProductRequest represents a product creation request.
type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	IsPremium   bool    `json:"is_premium"`
	Price       *string `json:"price"`
}

// UpdateProductRequest represents a partial product update.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	IsPremium   *bool   `json:"is_premium"`
	Price       *string `json:"price"`
}

func parsePrice(raw *string) (*decimal.Decimal, *echo.HTTPError) {
	if raw == nil {
		return nil, nil
	}
	price, err := decimal.NewFromString(*raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid price",
			Code:  "INVALID_PRICE",
		})
	}
	return &price, nil
}

// CreateProduct godoc
// @Summary Create a product
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateProductRequest true "Product data"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /products [post]
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	price, httpErr := parsePrice(req.Price)
	if httpErr != nil {
		return httpErr
	}

	// Premium products must carry a price.
	if req.IsPremium && price == nil {
		mapped := errors.MapErrorToHTTP(errors.ErrPriceRequired)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		IsPremium:   req.IsPremium,
		Price:       price,
	}

	created, err := h.productService.Create(c.Request().Context(), product)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// GetProduct godoc
// @Summary Get a product by ID
// @Tags products
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product id",
			Code:  "INVALID_UUID",
		})
	}

	product, err := h.productService.Get(c.Request().Context(), id)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, product)
}

// ListProducts godoc
// @Summary List all products
// @Tags products
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Product
// @Failure 401 {object} errors.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c echo.Context) error {
	products, err := h.productService.List(c.Request().Context())
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, products)
}

// UpdateProduct godoc
// @Summary Update a product by ID
// @Tags products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Param request body UpdateProductRequest true "Product update"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [put]
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product id",
			Code:  "INVALID_UUID",
		})
	}

	var req UpdateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	price, httpErr := parsePrice(req.Price)
	if httpErr != nil {
		return httpErr
	}

	if req.IsPremium != nil && *req.IsPremium && price == nil {
		mapped := errors.MapErrorToHTTP(errors.ErrPriceRequired)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	updates := &model.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsPremium:   req.IsPremium,
		Price:       price,
	}

	updated, err := h.productService.Update(c.Request().Context(), id, updates)
	if err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteProduct godoc
// @Summary Delete a product by ID
// @Tags products
// @Security BearerAuth
// @Param id path string true "Product ID"
// @Success 204
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid product id",
			Code:  "INVALID_UUID",
		})
	}

	if err := h.productService.Delete(c.Request().Context(), id); err != nil {
		mapped := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(mapped.StatusCode, mapped.ToErrorResponse())
	}

	return c.NoContent(http.StatusNoContent)
}
