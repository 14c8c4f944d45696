package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// AdminHandler role administration
type AdminHandler struct {
	roleSvc service.RoleService
	logger  *zap.Logger
}

// NewAdminHandler creates an AdminHandler
func NewAdminHandler(roleSvc service.RoleService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{roleSvc: roleSvc, logger: logger}
}

// Promote POST /api/admin/promote-donor
func (h *AdminHandler) Promote(c *gin.Context) {
	var req dto.UserIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.roleSvc.Promote(c.Request.Context(), req.UserID); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, dto.OKResponse{OK: true})
}

// Depromote POST /api/admin/depromote-staff
func (h *AdminHandler) Depromote(c *gin.Context) {
	var req dto.UserIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.roleSvc.Depromote(c.Request.Context(), req.UserID); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, dto.OKResponse{OK: true})
}

// CreateStaff POST /api/admin/create-staff
func (h *AdminHandler) CreateStaff(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.roleSvc.CreateStaff(c.Request.Context(), role, &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.Created(c, resp)
}

// ListDonors GET /api/admin/donors
func (h *AdminHandler) ListDonors(c *gin.Context) {
	list, err := h.roleSvc.ListDonors(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}

// ListStaff GET /api/admin/staff
func (h *AdminHandler) ListStaff(c *gin.Context) {
	list, err := h.roleSvc.ListStaff(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}
