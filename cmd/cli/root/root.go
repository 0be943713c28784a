package root

import (
	"github.com/spf13/cobra"

	"github.com/crucial707/hci-inventory/cmd/cli/config"
)

// Exported RootCmd
var RootCmd = &cobra.Command{
	Use:           "hci-inventory",
	Short:         "HCI Inventory CLI",
	Long:          "Command line interface for the multi-tenant company, user and asset inventory API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	f := RootCmd.PersistentFlags()
	f.StringVar(&config.Current.APIURL, "api-url", config.APIURL(), "inventory API base URL")
	f.StringVar(&config.Current.Actor, "actor", config.Actor(), "acting user id, sent as X-User-Id")
	f.StringVar(&config.Current.Token, "token", config.Token(), "bearer token; overrides --actor")
	f.BoolVar(&config.Current.JSON, "json", false, "print raw JSON instead of a table")
}

// Optional helper to return the RootCmd
func GetRoot() *cobra.Command {
	return RootCmd
}
