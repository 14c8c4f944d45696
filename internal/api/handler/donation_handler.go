package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

// DonationHandler donation lifecycle endpoints
type DonationHandler struct {
	donationSvc  service.DonationService
	maxPhotoSize int64
	logger       *zap.Logger
}

// NewDonationHandler creates a DonationHandler
func NewDonationHandler(donationSvc service.DonationService, maxPhotoSize int64, logger *zap.Logger) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc, maxPhotoSize: maxPhotoSize, logger: logger}
}

// Submit POST /api/donations (multipart: description, categoryId, weightKg, photo)
// categoryId carries the category name.
func (h *DonationHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	description := c.PostForm("description")
	categoryName := strings.TrimSpace(c.PostForm("categoryId"))
	if categoryName == "" {
		categoryName = strings.TrimSpace(c.PostForm("category"))
	}
	weightStr := strings.TrimSpace(c.PostForm("weightKg"))

	fh, err := c.FormFile("photo")
	if err != nil {
		if isTooLarge(err) {
			respondBindError(c, err)
			return
		}
		response.BadRequest(c, 10001, "photo is required")
		return
	}
	if strings.TrimSpace(description) == "" || categoryName == "" || weightStr == "" {
		response.BadRequest(c, 10001, service.ErrMissingFields.Message)
		return
	}
	weight, err := strconv.ParseFloat(weightStr, 64)
	if err != nil {
		response.BadRequest(c, 10001, "weight must be a number")
		return
	}
	if h.maxPhotoSize > 0 && fh.Size > h.maxPhotoSize {
		response.Error(c, http.StatusRequestEntityTooLarge, 10005, "photo too large")
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.logger.Error("failed to open uploaded photo", zap.Error(err))
		response.InternalError(c)
		return
	}
	defer f.Close()

	id, err := h.donationSvc.Submit(c.Request.Context(), userID, &dto.SubmitDonationInput{
		Description:  description,
		CategoryName: categoryName,
		WeightKg:     weight,
		PhotoName:    fh.Filename,
		Photo:        f,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	response.Created(c, dto.IDResponse{ID: id})
}

// ListPending GET /api/donations?status=pending
func (h *DonationHandler) ListPending(c *gin.Context) {
	if !strings.EqualFold(c.Query("status"), "pending") {
		response.BadRequest(c, 10001, "status must be pending")
		return
	}

	list, err := h.donationSvc.ListPending(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}

// Review PUT /api/donations/review
func (h *DonationHandler) Review(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	var req dto.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	resp, err := h.donationSvc.Review(c.Request.Context(), userID, role, &req)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, resp)
}

// MarkSent POST /api/donations/send
func (h *DonationHandler) MarkSent(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.donationSvc.MarkSent(c.Request.Context(), userID, &req); err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, dto.OKResponse{OK: true})
}

// ListMine GET /api/donations/mine
func (h *DonationHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.donationSvc.ListMine(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}

// ListSent GET /api/donations/sent
func (h *DonationHandler) ListSent(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	list, err := h.donationSvc.ListSent(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OKList(c, list, len(list))
}
