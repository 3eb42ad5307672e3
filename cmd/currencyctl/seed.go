package main

import (
	"fmt"

	"github.com/SscSPs/currency_toolkit/internal/core/domain"
	"github.com/SscSPs/currency_toolkit/internal/core/services"
	"github.com/SscSPs/currency_toolkit/internal/platform/config"
	"github.com/SscSPs/currency_toolkit/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_toolkit/internal/utils"
	"github.com/SscSPs/currency_toolkit/pkg/database"
	"github.com/spf13/cobra"
)

var (
	seedTest    bool
	seedMigrate bool
)

// seedCmd upserts the built-in rate table
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed currency_rates in the database from PGSQL_URL",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedTest, "test", false, "Read back the USD to ILS rate after seeding")
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "Apply pending migrations before seeding")
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if seedMigrate {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return err
		}
	}

	pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, true)
	if err != nil {
		return err
	}
	defer database.ClosePgxPool(pool)

	repos := pgsql.NewRepositoryProvider(pool)
	seeder := services.NewCurrencySeederService(repos.CurrencyRateRepo)

	count, err := seeder.SeedCurrencyRates(ctx)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Seeded %d currency rates\n", count)

	if !seedTest {
		return nil
	}
	rate, err := seeder.TestCurrencyRate(ctx, domain.USD, domain.ILS)
	if err != nil {
		return fmt.Errorf("test conversion failed: %w", err)
	}
	fmt.Fprintf(out, "1 %s = %s %s\n", rate.FromCurrency, utils.FormatRate(rate.Rate), rate.ToCurrency)
	return nil
}
