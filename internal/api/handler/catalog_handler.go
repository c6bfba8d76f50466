package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/emon00007/easysubstech/internal/core/ports"
)

// CatalogHandler handles HTTP requests for the service catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

func NewCatalogHandler(service ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type createServiceRequest struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category"`
	Price       float64        `json:"price" validate:"gte=0"`
	Attributes  map[string]any `json:"attributes"`
}

type createServiceResponse struct {
	InsertedID string `json:"insertedId"`
}

// Create adds a catalog service.
//
// @Summary      Add a catalog service
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        body  body      createServiceRequest  true  "Service details"
// @Success      201   {object}  createServiceResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /services [post]
func (h *CatalogHandler) Create(c echo.Context) error {
	var req createServiceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	id, err := h.service.Create(c.Request().Context(), ports.CreateServiceInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Attributes:  req.Attributes,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createServiceResponse{InsertedID: id})
}

// List returns all catalog services.
//
// @Summary      List catalog services
// @Tags         services
// @Produce      json
// @Success      200  {array}  domain.Service
// @Router       /services [get]
func (h *CatalogHandler) List(c echo.Context) error {
	services, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Get returns a single catalog service by document id. A malformed id is
// reported as a server error (legacy contract).
//
// @Summary      Get a catalog service
// @Tags         services
// @Produce      json
// @Param        id   path      string  true  "Service document id (hex)"
// @Success      200  {object}  domain.Service
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /services/{id} [get]
func (h *CatalogHandler) Get(c echo.Context) error {
	svc, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}
