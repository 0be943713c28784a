package audit

import (
	"github.com/spf13/cobra"

	"github.com/crucial707/hci-inventory/cmd/cli/client"
	"github.com/crucial707/hci-inventory/cmd/cli/output"
)

func InitAudit(rootCmd *cobra.Command) {
	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Read the audit trail",
	}
	auditCmd.AddCommand(listCmd())
	rootCmd.AddCommand(auditCmd)
}

func listCmd() *cobra.Command {
	var company, entityType, entityID, action, actor string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List audit entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := client.NewQuery().
				Set("company_id", company).
				Set("entity_type", entityType).
				Set("entity_id", entityID).
				Set("action", action).
				Set("actor", actor).
				Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/audit-logs", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, output.AuditHeaders, output.AuditRow)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "filter by company id")
	cmd.Flags().StringVar(&entityType, "entity-type", "", "company, user, asset or access")
	cmd.Flags().StringVar(&entityID, "entity-id", "", "filter by entity id")
	cmd.Flags().StringVar(&action, "action", "", "create, update, delete, grant or revoke")
	cmd.Flags().StringVar(&actor, "by", "", "filter by acting user")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}
