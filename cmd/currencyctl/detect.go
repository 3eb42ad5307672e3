package main

import (
	"fmt"
	"os"

	"github.com/SscSPs/currency_toolkit/internal/core/services"
	"github.com/spf13/cobra"
)

var (
	detectFile          string
	detectAmountField   string
	detectCurrencyField string
	detectMaxRows       int
)

// detectCmd infers the currency of a CSV file
var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Detect the currency of a CSV file",
	Long: `Reads the header and up to --max-rows data rows of a CSV file and prints the detected
currency code, or "unknown". When --currency-field is not given the column is suggested
from the header names.`,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectFile, "file", "f", "", "CSV file to inspect")
	detectCmd.Flags().StringVar(&detectAmountField, "amount-field", "", "Header of the amount column")
	detectCmd.Flags().StringVar(&detectCurrencyField, "currency-field", "", "Header of the currency label column")
	detectCmd.Flags().IntVar(&detectMaxRows, "max-rows", 1000, "Maximum number of data rows to read")
	_ = detectCmd.MarkFlagRequired("file")
	_ = detectCmd.MarkFlagRequired("amount-field")
}

func runDetect(cmd *cobra.Command, args []string) error {
	f, err := os.Open(detectFile)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", detectFile, err)
	}
	defer f.Close()

	svc := services.NewDetectionService(detectMaxRows)
	result, err := svc.DetectCSV(cmd.Context(), f, detectAmountField, detectCurrencyField)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if result.Found {
		fmt.Fprintf(out, "currency: %s\n", result.Currency)
	} else {
		fmt.Fprintln(out, "currency: unknown")
	}
	fmt.Fprintf(out, "method: %s\n", result.Method)
	if result.CurrencyField != "" {
		fmt.Fprintf(out, "currency column: %s\n", result.CurrencyField)
	}
	fmt.Fprintf(out, "rows scanned: %d\n", result.RowsScanned)
	return nil
}
