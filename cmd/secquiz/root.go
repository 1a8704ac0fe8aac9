package secquiz

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/secquiz/secquiz/internal/secquiz"
	"github.com/secquiz/secquiz/internal/secquiz/conf"
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "debug")
	rootCmd.PersistentPreRun = initLog
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Err(err).Msg("command execution failed")
	}
}

var rootCmd = &cobra.Command{
	Use:     "secquiz",
	Short:   "secquiz",
	Long:    `CCSK study question generator and PII redaction service`,
	Example: `secquiz server --addr 127.0.0.1:5040 --doc CCSK.pdf`,
	Args:    cobra.MinimumNArgs(0),
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	Run: Root,
}

func Root(cmd *cobra.Command, args []string) {
	c, err := conf.Load()
	if err != nil {
		log.Err(err).Msg("failed to load config")
		return
	}
	if err := secquiz.New(c).Run(); err != nil {
		log.Err(err).Msg("failed to run secquiz instance")
	}
}
