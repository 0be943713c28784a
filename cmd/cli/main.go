package main

import (
	"fmt"
	"os"

	"github.com/crucial707/hci-inventory/cmd/cli/access"
	"github.com/crucial707/hci-inventory/cmd/cli/assets"
	"github.com/crucial707/hci-inventory/cmd/cli/audit"
	"github.com/crucial707/hci-inventory/cmd/cli/companies"
	"github.com/crucial707/hci-inventory/cmd/cli/root"
	"github.com/crucial707/hci-inventory/cmd/cli/users"
)

func main() {
	rootCmd := root.GetRoot()
	companies.InitCompanies(rootCmd)
	users.InitUsers(rootCmd)
	assets.InitAssets(rootCmd)
	access.InitAccess(rootCmd)
	audit.InitAudit(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
