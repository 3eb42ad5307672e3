package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/dto"
	"github.com/SscSPs/currency_toolkit/internal/middleware"
	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	// maxUploadBytes bounds the CSV body read by /detect/csv.
	maxUploadBytes = 10 << 20
	// maxJSONBodyBytes bounds the JSON bodies of /detect and /amounts.
	maxJSONBodyBytes = 2 << 20
)

// detectionHandler handles HTTP requests related to currency detection.
type detectionHandler struct {
	detectionService portssvc.DetectionSvc
	posthogClient    *utils.PosthogClientWrapper
}

// newDetectionHandler creates a new detectionHandler.
func newDetectionHandler(ds portssvc.DetectionSvc, posthogClient *utils.PosthogClientWrapper) *detectionHandler {
	return &detectionHandler{
		detectionService: ds,
		posthogClient:    posthogClient,
	}
}

// registerDetectionRoutes registers routes related to currency detection.
func registerDetectionRoutes(rg *gin.RouterGroup, detectionService portssvc.DetectionSvc, posthogClient *utils.PosthogClientWrapper) {
	h := newDetectionHandler(detectionService, posthogClient)

	currency := rg.Group("/currency")
	{
		currency.POST("/detect", h.detectCurrency)
		currency.POST("/detect/csv", h.detectCurrencyCSV)
		currency.POST("/suggest-mapping", h.suggestMapping)
		currency.POST("/amounts", h.inspectAmounts)
	}
}

// detectCurrency godoc
// @Summary Detect the currency of a table
// @Description Uses a single-valued currency column when present, otherwise the most frequent amount symbol
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.DetectCurrencyRequest true "Rows and column names"
// @Success 200 {object} dto.DetectCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/currency/detect [post]
func (h *detectionHandler) detectCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBodyBytes)

	var req dto.DetectCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DetectCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	d := h.detectionService.DetectDataset(c.Request.Context(), dto.ToDatasetRows(req.Rows), req.AmountField, req.CurrencyField)
	middleware.PosthogEvent(c, h.posthogClient, "currency_detected", map[string]any{
		"source": "json",
		"found":  d.Found,
		"method": string(d.Method),
	})
	c.JSON(http.StatusOK, dto.ToDetectCurrencyResponse(d))
}

// detectCurrencyCSV godoc
// @Summary Detect the currency of an uploaded CSV
// @Description Parses the header and up to DETECTION_MAX_ROWS rows. The currency column is suggested from the headers when not given.
// @Tags currency
// @Accept  multipart/form-data
// @Produce  json
// @Param   file formData file true "CSV file"
// @Param   amountField formData string true "Amount column header"
// @Param   currencyField formData string false "Currency column header"
// @Success 200 {object} dto.DetectCSVResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to read upload"
// @Router /api/v1/currency/detect/csv [post]
func (h *detectionHandler) detectCurrencyCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadBytes)

	var form dto.DetectCSVForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warn("Failed to bind form for DetectCurrencyCSV", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.Warn("CSV file missing from upload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "A CSV file is required in the 'file' field"})
		return
	}
	logger = logger.With(slog.String("filename", fileHeader.Filename), slog.Int64("size", fileHeader.Size))

	file, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer file.Close()

	result, err := h.detectionService.DetectCSV(c.Request.Context(), file, form.AmountField, form.CurrencyField)
	if err != nil {
		status := apperrors.StatusCode(err)
		if status < http.StatusInternalServerError {
			logger.Warn("Rejected CSV upload", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to detect currency from CSV", slog.String("error", err.Error()))
			c.JSON(status, gin.H{"error": "Failed to process CSV"})
		}
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "currency_detected", map[string]any{
		"source":       "csv",
		"found":        result.Found,
		"method":       string(result.Method),
		"rows_scanned": result.RowsScanned,
	})
	logger.Info("CSV currency detection complete", slog.Bool("found", result.Found), slog.Int("rows_scanned", result.RowsScanned))
	c.JSON(http.StatusOK, dto.ToDetectCSVResponse(result))
}

// suggestMapping godoc
// @Summary Suggest the currency column
// @Description Picks the header most likely to hold currency labels
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.SuggestMappingRequest true "Table headers"
// @Success 200 {object} dto.SuggestMappingResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/currency/suggest-mapping [post]
func (h *detectionHandler) suggestMapping(c *gin.Context) {
	var req dto.SuggestMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	column, found := h.detectionService.SuggestCurrencyColumn(c.Request.Context(), req.Headers)
	c.JSON(http.StatusOK, dto.ToSuggestMappingResponse(column, found))
}

// inspectAmounts godoc
// @Summary Clean, parse and classify amount strings
// @Tags currency
// @Accept  json
// @Produce  json
// @Param   request body dto.InspectAmountsRequest true "Raw amounts"
// @Success 200 {array} dto.AmountInsightResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /api/v1/currency/amounts [post]
func (h *detectionHandler) inspectAmounts(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxJSONBodyBytes)

	var req dto.InspectAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	insights := h.detectionService.InspectAmounts(c.Request.Context(), req.Amounts)
	c.JSON(http.StatusOK, dto.ToAmountInsightResponses(insights))
}
