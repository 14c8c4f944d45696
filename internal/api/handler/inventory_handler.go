package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// InventoryHandler public shop and reference lists
type InventoryHandler struct {
	inventorySvc service.InventoryService
	logger       *zap.Logger
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(inventorySvc service.InventoryService, logger *zap.Logger) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc, logger: logger}
}

// ListShopItems GET /api/inventory
func (h *InventoryHandler) ListShopItems(c *gin.Context) {
	list, err := h.inventorySvc.ListShopItems(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}

// ListCharities GET /api/charities
func (h *InventoryHandler) ListCharities(c *gin.Context) {
	list, err := h.inventorySvc.ListCharities(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}

// ListCategories GET /api/categories
func (h *InventoryHandler) ListCategories(c *gin.Context) {
	list, err := h.inventorySvc.ListCategories(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}
