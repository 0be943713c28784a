package assets

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crucial707/hci-inventory/cmd/cli/client"
	"github.com/crucial707/hci-inventory/cmd/cli/output"
	"github.com/crucial707/hci-inventory/internal/models"
)

var headers = []string{"ID", "Company", "Name", "Type", "Status", "Identifier", "Assigned To"}

func row(a models.Asset) []interface{} {
	return []interface{}{a.ID, a.CompanyID, a.Name, a.Type, a.Status, output.Value(a.Identifier), output.Value(a.AssignedTo)}
}

// ==========================
// Init Assets
// ==========================
func InitAssets(rootCmd *cobra.Command) {

	assetsCmd := &cobra.Command{
		Use:   "assets",
		Short: "Manage assets",
	}

	assetsCmd.AddCommand(
		listAssetsCmd(),
		getAssetCmd(),
		createAssetCmd(),
		updateAssetCmd(),
		deleteAssetCmd(),
	)

	rootCmd.AddCommand(assetsCmd)
}

// ==========================
// LIST
// ==========================
func listAssetsCmd() *cobra.Command {
	var company, typ, status, assignedTo string
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := client.NewQuery().
				Set("company_id", company).
				Set("type", typ).
				Set("status", status).
				Set("assigned_to", assignedTo).
				Page(limit, offset)
			resp, err := client.FromConfig().Get(cmd.Context(), "/assets", q.Values)
			if err != nil {
				return err
			}
			return output.List(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "filter by owning company id")
	cmd.Flags().StringVar(&typ, "type", "", "filter by type")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "filter by assigned user id")
	cmd.Flags().IntVar(&limit, "limit", 0, "page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "rows to skip")
	return cmd
}

// ==========================
// GET
// ==========================
func getAssetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [id]",
		Short: "Show an asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.FromConfig().Get(cmd.Context(), "/assets/"+args[0], nil)
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
func createAssetCmd() *cobra.Command {
	var company, name, typ, description, identifier, status, assignedTo, metadata string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{"company_id": company, "name": name, "type": typ}
			optional := map[string]string{
				"description": description,
				"identifier":  identifier,
				"status":      status,
				"assigned_to": assignedTo,
			}
			for k, v := range optional {
				if v != "" {
					payload[k] = v
				}
			}
			if metadata != "" {
				if !json.Valid([]byte(metadata)) {
					return fmt.Errorf("--metadata must be a JSON object")
				}
				payload["metadata"] = json.RawMessage(metadata)
			}
			resp, err := client.FromConfig().Post(cmd.Context(), "/assets", payload)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&company, "company", "", "owning company id")
	cmd.Flags().StringVar(&name, "name", "", "asset name")
	cmd.Flags().StringVar(&typ, "type", "", "hardware, software, license or other")
	cmd.Flags().StringVar(&description, "description", "", "asset description")
	cmd.Flags().StringVar(&identifier, "identifier", "", "serial number or license key")
	cmd.Flags().StringVar(&status, "status", "", "active, inactive, disposed or maintenance")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "assigned user id")
	cmd.Flags().StringVar(&metadata, "metadata", "", "metadata as a JSON object")
	return cmd
}

// ==========================
// UPDATE
// ==========================
func updateAssetCmd() *cobra.Command {
	var name, typ, description, identifier, status, assignedTo, metadata string
	var unassign bool

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update asset fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := map[string]any{}
			for flag, field := range map[string]string{
				"name":        "name",
				"type":        "type",
				"description": "description",
				"identifier":  "identifier",
				"status":      "status",
				"assigned-to": "assigned_to",
			} {
				if cmd.Flags().Changed(flag) {
					v, _ := cmd.Flags().GetString(flag)
					payload[field] = v
				}
			}
			if unassign {
				payload["assigned_to"] = nil
			}
			if cmd.Flags().Changed("metadata") {
				payload["metadata"] = json.RawMessage(metadata)
			}
			resp, err := client.FromConfig().Patch(cmd.Context(), "/assets/"+args[0], payload)
			if err != nil {
				return err
			}
			return output.One(resp, headers, row)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&typ, "type", "", "new type")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().StringVar(&identifier, "identifier", "", "new identifier")
	cmd.Flags().StringVar(&status, "status", "", "new status")
	cmd.Flags().StringVar(&assignedTo, "assigned-to", "", "assign to user id")
	cmd.Flags().BoolVar(&unassign, "unassign", false, "clear the assignment")
	cmd.Flags().StringVar(&metadata, "metadata", "", "replacement metadata JSON object")
	return cmd
}

// ==========================
// DELETE
// ==========================
func deleteAssetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete asset",
		Long:  "Delete an asset. Assets with activity beyond their creation cannot be deleted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := client.FromConfig().Delete(cmd.Context(), "/assets/"+args[0])
			if err != nil {
				return err
			}
			output.Message(resp, "Asset deleted")
			return nil
		},
	}
}
