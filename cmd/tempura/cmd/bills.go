package cmd

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/tempura/internal/config"
	"github.com/pigeonworks-llc/tempura/internal/store"
)

var (
	billsFrom int64
	billsTo   int64
)

// billsCmd represents the bills command.
var billsCmd = &cobra.Command{
	Use:   "bills",
	Short: "Display bill history from the ledger",
	Long: `Display the bill ledger as a text summary, one line per bill,
with a grand total at the bottom.

Example:
  tempura bills
  tempura bills --from 10 --to 20`,
	Run: runBills,
}

func init() {
	billsCmd.Flags().Int64Var(&billsFrom, "from", 0, "lowest bill number to include")
	billsCmd.Flags().Int64Var(&billsTo, "to", 0, "highest bill number to include")
}

func runBills(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(envFile)
	exitOnError(err, "failed to load configuration")

	ledger := store.NewLedgerStore(cfg.BillsPath())

	slog.Debug("loading ledger", "path", cfg.BillsPath())
	bills, err := ledger.Load()
	exitOnError(err, "failed to load bills")

	grand := decimal.Zero
	shown := 0

	fmt.Println("\n=== Bill History ===")
	for _, b := range bills {
		if billsFrom > 0 || billsTo > 0 {
			n, err := b.BillNo.Int()
			if err != nil {
				continue
			}
			if billsFrom > 0 && n < billsFrom {
				continue
			}
			if billsTo > 0 && n > billsTo {
				continue
			}
		}
		fmt.Printf("#%-6s %-20s %-12s %-8s %10s  (%d items)\n",
			string(b.BillNo), b.DateTime, b.Table, b.Payment, b.Total.StringFixed(2), len(b.Items))
		grand = grand.Add(b.Total)
		shown++
	}
	fmt.Printf("\nBills: %d  Total: %s\n\n", shown, grand.StringFixed(2))
}
