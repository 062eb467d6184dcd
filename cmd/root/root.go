// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/categorizer"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/config"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/export"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/extract"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/ingest"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/logging"
	"github.com/Ibrahim-Engineer/bankstatementconvertor/internal/render"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the resolved configuration after PersistentPreRunE has run
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "bankstatementconvertor",
		Short: "A CLI tool to extract, categorize and export bank statement transactions from PDF files.",
		Long: `bankstatementconvertor reads PDF bank statements, extracts the transaction
lines page by page, assigns income/expense categories and exports the result
as a spreadsheet or CSV file.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to bankstatementconvertor!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return err
			}
			Cfg = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)

			// Route every pipeline package through the configured logger.
			adapter := logging.NewLogrusAdapterFromLogger(Log)
			logging.SetLogger(adapter)
			ingest.SetLogger(adapter)
			render.SetLogger(adapter)
			extract.SetLogger(adapter)
			categorizer.SetLogger(adapter)
			export.SetLogger(adapter)

			return nil
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input PDF file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// NewCategorizer builds a categorizer with the user keyword rules from the
// configured rules file, if any.
func NewCategorizer() *categorizer.Categorizer {
	cat := categorizer.New()
	if Cfg == nil || Cfg.Categories.File == "" {
		return cat
	}
	if err := cat.LoadKeywordFile(Cfg.Categories.File); err != nil {
		Log.WithError(err).Warn("Failed to load category rules file, using built-in rules only")
	}
	return cat
}

// ReadInput loads the input file named by the shared --input flag.
func ReadInput() ([]byte, error) {
	return os.ReadFile(SharedFlags.Input)
}
