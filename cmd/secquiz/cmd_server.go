package secquiz

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/secquiz/secquiz/internal/secquiz"
	"github.com/secquiz/secquiz/internal/secquiz/conf"
)

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().StringVarP(&serverAddr, "addr", "a", "", "server address")
	serverCmd.Flags().StringVarP(&serverDoc, "doc", "d", "", "knowledge document path")
	serverCmd.Flags().StringVarP(&serverModel, "model", "m", "", "model identifier")
	serverCmd.Flags().StringVarP(&serverPublicURL, "public-url", "u", "", "externally visible base URL")
}

var (
	serverAddr      string
	serverDoc       string
	serverModel     string
	serverPublicURL string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Run: func(cmd *cobra.Command, args []string) {
		c, err := conf.Load()
		if err != nil {
			log.Err(err).Msg("failed to load config")
			return
		}

		// Flags override file and environment.
		if serverAddr != "" {
			c.HTTPAddr = serverAddr
		}
		if serverDoc != "" {
			c.DocPath = serverDoc
		}
		if serverModel != "" {
			c.Model = serverModel
		}
		if serverPublicURL != "" {
			c.PublicURL = serverPublicURL
		}

		if err := secquiz.New(c).Run(); err != nil {
			log.Err(err).Msg("failed to start server")
			return
		}
	},
}
