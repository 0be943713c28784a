package access

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucial707/hci-inventory/cmd/cli/client"
	"github.com/crucial707/hci-inventory/cmd/cli/output"
	"github.com/crucial707/hci-inventory/internal/models"
)

func InitAccess(rootCmd *cobra.Command) {
	accessCmd := &cobra.Command{
		Use:   "access",
		Short: "Grant, revoke and list company access",
	}

	accessCmd.AddCommand(grantCmd(), revokeCmd(), listCmd())
	rootCmd.AddCommand(accessCmd)
}

func grantCmd() *cobra.Command {
	var company, user, role string

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Grant a user a role in a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			if company == "" {
				return fmt.Errorf("--company is required")
			}
			resp, err := client.FromConfig().Post(cmd.Context(), "/companies/"+company+"/users",
				models.GrantInput{UserID: user, Role: role})
			if err != nil {
				return err
			}
			return output.One(resp, []string{"Company ID", "User ID", "Role", "Granted"}, func(a models.Access) []interface{} {
				return []interface{}{a.CompanyID, a.UserID, a.Role, a.GrantedAt.Format("2006-01-02 15:04")}
			})
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company id")
	cmd.Flags().StringVar(&user, "user", "", "user id")
	cmd.Flags().StringVar(&role, "role", "", "OWNER, ADMIN, MEMBER or READ_ONLY")
	return cmd
}

func revokeCmd() *cobra.Command {
	var company, user string

	cmd := &cobra.Command{
		Use:   "revoke",
		Short: "Revoke a user's access to a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			if company == "" || user == "" {
				return fmt.Errorf("--company and --user are required")
			}
			if _, err := client.FromConfig().Delete(cmd.Context(), "/companies/"+company+"/users/"+user); err != nil {
				return err
			}
			fmt.Println("Access revoked")
			return nil
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company id")
	cmd.Flags().StringVar(&user, "user", "", "user id")
	return cmd
}

func listCmd() *cobra.Command {
	var company, role string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the users with access to a company",
		RunE: func(cmd *cobra.Command, args []string) error {
			if company == "" {
				return fmt.Errorf("--company is required")
			}
			q := client.NewQuery().Set("role", role).Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/companies/"+company+"/users", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, []string{"User ID", "Email", "Name", "Role", "Granted"}, func(m models.CompanyMember) []interface{} {
				return []interface{}{m.UserID, m.UserEmail, m.UserName, m.Role, m.GrantedAt.Format("2006-01-02 15:04")}
			})
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "company id")
	cmd.Flags().StringVar(&role, "role", "", "filter by role")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}
