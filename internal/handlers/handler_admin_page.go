package handlers

import (
	"embed"
	"net/http"

	"github.com/SscSPs/currency_toolkit/internal/middleware"
	"github.com/SscSPs/currency_toolkit/internal/platform/config"
	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templatesFS embed.FS

// currencyRatesSchemaSQL is shown on the setup page for operators who seed by hand.
const currencyRatesSchemaSQL = `CREATE TABLE IF NOT EXISTS currency_rates (
    from_currency VARCHAR(3) NOT NULL,
    to_currency   VARCHAR(3) NOT NULL,
    rate          NUMERIC(20, 6) NOT NULL,
    last_updated  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (from_currency, to_currency)
);

INSERT INTO currency_rates (from_currency, to_currency, rate, last_updated)
VALUES ('USD', 'ILS', 3.700000, NOW())
ON CONFLICT (from_currency, to_currency)
DO UPDATE SET rate = EXCLUDED.rate, last_updated = EXCLUDED.last_updated;`

type setupPageData struct {
	SeedEndpoint  string
	TokenEndpoint string
	AuthRequired  bool
	SchemaSQL     string
}

func registerAdminPageRoutes(r *gin.Engine, cfg *config.Config) {
	data := setupPageData{
		SeedEndpoint:  "/api/seed-currency",
		TokenEndpoint: "/auth/token",
		AuthRequired:  cfg.RequireAdminAuth,
		SchemaSQL:     currencyRatesSchemaSQL,
	}

	admin := r.Group("/admin")
	admin.GET("/setup-currency", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Debug("Rendering currency setup page")
		c.HTML(http.StatusOK, "setup_currency.html", data)
	})
}
