package users

import (
	"github.com/spf13/cobra"

	"github.com/crucial707/hci-inventory/cmd/cli/client"
	"github.com/crucial707/hci-inventory/cmd/cli/output"
	"github.com/crucial707/hci-inventory/internal/models"
)

var headers = []string{"ID", "Email", "Name", "Status", "Primary Company"}

func row(u models.User) []interface{} {
	return []interface{}{u.ID, u.Email, u.Name, u.Status, output.Value(u.PrimaryCompanyID)}
}

// ==========================
// CLI Command Init
// ==========================
func InitUsers(rootCmd *cobra.Command) {
	usersCmd := &cobra.Command{
		Use:   "users",
		Short: "Manage users",
	}

	usersCmd.AddCommand(
		listUsersCmd(),
		getUserCmd(),
		createUserCmd(),
		updateUserCmd(),
		deleteUserCmd(),
		userCompaniesCmd(),
		userAuditCmd(),
	)

	rootCmd.AddCommand(usersCmd)
}

func listUsersCmd() *cobra.Command {
	var status, company string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List users",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := client.NewQuery().Set("status", status).Set("company_id", company).Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/users", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&company, "company", "", "filter by primary company id")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

func getUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.FromConfig().Get(cmd.Context(), "/users/"+args[0], nil)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}
}

func createUserCmd() *cobra.Command {
	var email, name, company, status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create user",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"email": email, "name": name}
			if company != "" {
				payload["primary_company_id"] = company
			}
			if status != "" {
				payload["status"] = status
			}
			resp, err := client.FromConfig().Post(cmd.Context(), "/users", payload)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&company, "primary-company", "", "primary company id")
	cmd.Flags().StringVar(&status, "status", "", "active, inactive or suspended")
	return cmd
}

func updateUserCmd() *cobra.Command {
	var email, name, company, status string
	var clearCompany bool

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update user fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{}
			if cmd.Flags().Changed("email") {
				payload["email"] = email
			}
			if cmd.Flags().Changed("name") {
				payload["name"] = name
			}
			if cmd.Flags().Changed("primary-company") {
				payload["primary_company_id"] = company
			}
			if clearCompany {
				payload["primary_company_id"] = nil
			}
			if cmd.Flags().Changed("status") {
				payload["status"] = status
			}
			resp, err := client.FromConfig().Patch(cmd.Context(), "/users/"+args[0], payload)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&company, "primary-company", "", "new primary company id")
	cmd.Flags().BoolVar(&clearCompany, "clear-primary-company", false, "unset the primary company")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	return cmd
}

func deleteUserCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete user and revoke their grants",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.FromConfig().Delete(cmd.Context(), "/users/"+args[0])
			if err != nil {
				return err
			}
			output.Message(resp, "User deleted")
			return nil
		},
	}
}

func userCompaniesCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "companies [id]",
		Short: "List the companies a user has access to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := client.NewQuery().Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/users/"+args[0]+"/companies", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, []string{"Company ID", "Company", "Company Status", "Role", "Granted"},
				func(uc models.UserCompany) []interface{} {
					return []interface{}{uc.CompanyID, uc.CompanyName, uc.CompanyStatus, uc.Role, uc.GrantedAt.Format("2006-01-02 15:04")}
				})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

func userAuditCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "audit [id]",
		Short: "List audit entries about or by a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := client.NewQuery().Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/users/"+args[0]+"/audit-logs", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, output.AuditHeaders, output.AuditRow)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}
