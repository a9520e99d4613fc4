package report

import (
	"net/http"
	"strconv"
	"time"

	"go-attendance/internal/shared/apperror"
	"go-attendance/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("report request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Generate serves attendance and late mode reports from query
// parameters. Totals mode goes through GenerateTotals, whose deduction
// map needs a request body.
func (h *Handler) Generate(c *gin.Context) {
	companyID := c.GetString("company_id")

	now := time.Now()
	year, _ := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	month, _ := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	grace, _ := strconv.Atoi(c.DefaultQuery("grace_minutes", "0"))
	includeDays := c.DefaultQuery("include_days", "false") == "true"

	mode := c.DefaultQuery("mode", string(ModeAttendance))
	if mode == string(ModeTotals) {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput,
			"totals mode requires POST /reports/totals", nil)
		return
	}

	req := GenerateRequest{
		Year:         year,
		Month:        month,
		Mode:         mode,
		GraceMinutes: grace,
		IncludeDays:  includeDays,
	}

	resp, err := h.service.Generate(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GenerateTotals(c *gin.Context) {
	companyID := c.GetString("company_id")

	var body TotalsReportRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		mapped := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, http.StatusBadRequest, mapped.Code, mapped.Message, err.Error())
		return
	}

	req := GenerateRequest{
		Year:         body.Year,
		Month:        body.Month,
		Mode:         string(ModeTotals),
		GraceMinutes: body.GraceMinutes,
		IncludeDays:  body.IncludeDays,
		Deductions:   body.Deductions,
	}

	resp, err := h.service.Generate(c.Request.Context(), companyID, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
