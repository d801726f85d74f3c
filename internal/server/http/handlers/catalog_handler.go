package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopzone/checkout/internal/domain/model"
	"github.com/shopzone/checkout/internal/server/http/dto"
)

// CatalogHandler serves the product listing.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products with optional category and search filters.
func (h *CatalogHandler) List(c *gin.Context) {
	filter := model.ProductFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	products, err := h.facade.Products(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal error"})
		return
	}

	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.ProductResponse{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			Category: p.Category,
			Discount: p.Discount,
		})
	}

	c.JSON(http.StatusOK, response)
}
