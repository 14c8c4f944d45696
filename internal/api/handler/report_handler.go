package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MobeenM17/SuswearGProject/internal/dto"
	"github.com/MobeenM17/SuswearGProject/internal/service"
	"github.com/MobeenM17/SuswearGProject/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler impact reports
type ReportHandler struct {
	reportSvc service.ReportService
	logger    *zap.Logger
}

// NewReportHandler creates a ReportHandler
func NewReportHandler(reportSvc service.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{reportSvc: reportSvc, logger: logger}
}

// Generate POST /api/reports/co2 {"donorEmail": optional}
// An empty body means the global report.
func (h *ReportHandler) Generate(c *gin.Context) {
	var req dto.ReportRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	report, err := h.reportSvc.Generate(c.Request.Context(), req.DonorEmail)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	response.OK(c, report)
}

// Export GET /api/reports/co2/export?donorEmail=
func (h *ReportHandler) Export(c *gin.Context) {
	buf, filename, err := h.reportSvc.Export(c.Request.Context(), c.Query("donorEmail"))
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
