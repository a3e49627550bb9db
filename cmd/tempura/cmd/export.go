package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/tempura/internal/config"
	"github.com/pigeonworks-llc/tempura/internal/store"
)

var exportOut string

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export <catalog|ledger>",
	Short: "Copy a backing file, creating its empty schema if absent",
	Args:  cobra.ExactArgs(1),
	Run:   runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(envFile)
	exitOnError(err, "failed to load configuration")

	var data []byte
	switch args[0] {
	case "catalog":
		data, err = store.NewCatalogStore(cfg.MenuPath()).Export()
	case "ledger":
		data, err = store.NewLedgerStore(cfg.BillsPath()).Export()
	default:
		exitOnError(fmt.Errorf("unknown dataset %q", args[0]), "export")
	}
	exitOnError(err, "failed to export")

	if exportOut == "" {
		_, err = os.Stdout.Write(data)
		exitOnError(err, "failed to write output")
		return
	}
	exitOnError(os.WriteFile(exportOut, data, 0o644), "failed to write output")
}
