package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_toolkit/internal/apperrors"
	"github.com/SscSPs/currency_toolkit/internal/core/detection"
	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	portssvc "github.com/SscSPs/currency_toolkit/internal/core/ports/services"
	"github.com/SscSPs/currency_toolkit/internal/dto"
	"github.com/SscSPs/currency_toolkit/internal/middleware"
	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	defaultTestFrom = domain.USD
	defaultTestTo   = domain.ILS
)

// seedCurrencyHandler handles the requests made by the currency setup page.
type seedCurrencyHandler struct {
	seederService portssvc.CurrencySeederSvcFacade
	posthogClient *utils.PosthogClientWrapper
}

// newSeedCurrencyHandler creates a new seedCurrencyHandler.
func newSeedCurrencyHandler(ss portssvc.CurrencySeederSvcFacade, posthogClient *utils.PosthogClientWrapper) *seedCurrencyHandler {
	return &seedCurrencyHandler{
		seederService: ss,
		posthogClient: posthogClient,
	}
}

// registerSeedCurrencyRoutes registers routes related to rate seeding.
func registerSeedCurrencyRoutes(rg *gin.RouterGroup, seederService portssvc.CurrencySeederSvcFacade, posthogClient *utils.PosthogClientWrapper) {
	h := newSeedCurrencyHandler(seederService, posthogClient)

	seed := rg.Group("/seed-currency")
	{
		seed.POST("", h.seedCurrencyRates)
		seed.GET("", h.testCurrencyRate)
		seed.GET("/rates", h.listCurrencyRates)
	}
}

// seedCurrencyRates godoc
// @Summary Seed currency rates
// @Description Upserts the built-in USD, EUR, GBP and ILS rate table into currency_rates
// @Tags seed
// @Produce  json
// @Success 200 {object} dto.SeedCurrencyResponse
// @Failure 401 {object} dto.SeedCurrencyResponse "Admin token required"
// @Failure 429 {object} dto.SeedCurrencyResponse "Rate limited"
// @Failure 500 {object} dto.SeedCurrencyResponse "Seeding failed"
// @Security BearerAuth
// @Router /api/seed-currency [post]
func (h *seedCurrencyHandler) seedCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to seed currency rates")

	count, err := h.seederService.SeedCurrencyRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to seed currency rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewSeedFailure("Failed to seed currency rates: "+err.Error()))
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, "currency_rates_seeded", map[string]any{"count": count})
	logger.Info("Currency rates seeded", slog.Int("count", count))
	c.JSON(http.StatusOK, dto.SeedCurrencyResponse{
		Success: true,
		Message: fmt.Sprintf("Seeded %d currency rates", count),
	})
}

// testCurrencyRate godoc
// @Summary Test a stored currency rate
// @Description Reads back one seeded pair; defaults to USD to ILS
// @Tags seed
// @Produce  json
// @Param   from query string false "Source currency" default(USD)
// @Param   to   query string false "Target currency" default(ILS)
// @Success 200 {object} dto.SeedCurrencyResponse
// @Failure 400 {object} dto.SeedCurrencyResponse "Unknown currency code"
// @Failure 404 {object} dto.SeedCurrencyResponse "Pair not seeded"
// @Failure 500 {object} dto.SeedCurrencyResponse "Lookup failed"
// @Security BearerAuth
// @Router /api/seed-currency [get]
func (h *seedCurrencyHandler) testCurrencyRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.TestRateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid currency pair in query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.NewSeedFailure("Invalid currency pair: from and to must be one of USD, EUR, GBP, ILS"))
		return
	}

	from, to := defaultTestFrom, defaultTestTo
	if code, ok := detection.NormalizeCurrencyCode(q.From); ok {
		from = code
	}
	if code, ok := detection.NormalizeCurrencyCode(q.To); ok {
		to = code
	}
	logger = logger.With(slog.String("from", from.String()), slog.String("to", to.String()))

	rate, err := h.seederService.TestCurrencyRate(c.Request.Context(), from, to)
	if err != nil {
		status := apperrors.StatusCode(err)
		switch status {
		case http.StatusNotFound:
			logger.Warn("Currency rate not seeded")
			c.JSON(status, dto.NewSeedFailure(fmt.Sprintf("No rate stored for %s to %s. Run the setup first.", from, to)))
		case http.StatusBadRequest:
			logger.Warn("Invalid currency pair", slog.String("error", err.Error()))
			c.JSON(status, dto.NewSeedFailure(err.Error()))
		default:
			logger.Error("Failed to read currency rate", slog.String("error", err.Error()))
			c.JSON(status, dto.NewSeedFailure("Failed to test currency rate"))
		}
		return
	}

	logger.Info("Currency rate test succeeded", slog.String("rate", rate.Rate.String()))
	c.JSON(http.StatusOK, dto.SeedCurrencyResponse{
		Success:    true,
		Message:    fmt.Sprintf("1 %s = %s %s", from, utils.FormatRate(rate.Rate), to),
		TestResult: dto.ToTestResult(rate),
	})
}

// listCurrencyRates godoc
// @Summary List stored currency rates
// @Description Retrieves every row of currency_rates
// @Tags seed
// @Produce  json
// @Success 200 {array} dto.CurrencyRateResponse
// @Failure 500 {object} dto.SeedCurrencyResponse "Failed to list rates"
// @Security BearerAuth
// @Router /api/seed-currency/rates [get]
func (h *seedCurrencyHandler) listCurrencyRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.seederService.ListCurrencyRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list currency rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.NewSeedFailure("Failed to list currency rates"))
		return
	}

	logger.Info("Currency rates listed", slog.Int("count", len(rates)))
	c.JSON(http.StatusOK, dto.ToListCurrencyRateResponse(rates))
}
