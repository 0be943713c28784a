package companies

import (
	"github.com/spf13/cobra"

	"github.com/crucial707/hci-inventory/cmd/cli/client"
	"github.com/crucial707/hci-inventory/cmd/cli/output"
	"github.com/crucial707/hci-inventory/internal/models"
)

var headers = []string{"ID", "Name", "Status", "Description", "Created"}

func row(c models.Company) []interface{} {
	return []interface{}{c.ID, c.Name, c.Status, output.Value(c.Description), c.CreatedAt.Format("2006-01-02 15:04")}
}

// ==========================
// Init Companies
// ==========================
func InitCompanies(rootCmd *cobra.Command) {
	companiesCmd := &cobra.Command{
		Use:   "companies",
		Short: "Manage companies",
	}

	companiesCmd.AddCommand(
		listCompaniesCmd(),
		getCompanyCmd(),
		createCompanyCmd(),
		updateCompanyCmd(),
		deleteCompanyCmd(),
	)

	rootCmd.AddCommand(companiesCmd)
}

// ==========================
// LIST
// ==========================
func listCompaniesCmd() *cobra.Command {
	var status, name string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := client.NewQuery().Set("status", status).Set("name", name).Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/companies", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&name, "name", "", "filter by name substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

// ==========================
// GET
// ==========================
func getCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.FromConfig().Get(cmd.Context(), "/companies/"+args[0], nil)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}
}

// ==========================
// CREATE
// ==========================
func createCompanyCmd() *cobra.Command {
	var name, description, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create company",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"name": name}
			if cmd.Flags().Changed("description") {
				payload["description"] = description
			}
			if status != "" {
				payload["status"] = status
			}
			resp, err := client.FromConfig().Post(cmd.Context(), "/companies", payload)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name")
	cmd.Flags().StringVar(&description, "description", "", "company description")
	cmd.Flags().StringVar(&status, "status", "", "active, inactive or suspended")
	return cmd
}

// ==========================
// UPDATE
// ==========================
func updateCompanyCmd() *cobra.Command {
	var name, description, status string
	var clearDescription bool

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update company fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{}
			if cmd.Flags().Changed("name") {
				payload["name"] = name
			}
			if cmd.Flags().Changed("description") {
				payload["description"] = description
			}
			if clearDescription {
				payload["description"] = nil
			}
			if cmd.Flags().Changed("status") {
				payload["status"] = status
			}
			resp, err := client.FromConfig().Patch(cmd.Context(), "/companies/"+args[0], payload)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().BoolVar(&clearDescription, "clear-description", false, "set description to null")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteCompanyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete company",
		Long:  "Delete a company that owns no assets. Its access grants are revoked first.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.FromConfig().Delete(cmd.Context(), "/companies/"+args[0])
			if err != nil {
				return err
			}
			output.Message(resp, "Company deleted")
			return nil
		},
	}
}
