package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		owner string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty inventory file",
		Long: `Create an empty inventory file. Without --owner the inventory is an unowned
container and items placed in it have no owner.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.service.CreateInventory(cmd.Context(), &inventory.CreateInventoryInput{
				Path:      a.path(),
				Owner:     owner,
				Overwrite: force,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Inventory.Owner() == "" {
				fmt.Fprintf(w, "Created unowned inventory %s\n", a.path())
				return nil
			}
			fmt.Fprintf(w, "Created inventory %s for %s\n", a.path(), out.Inventory.Owner())
			return nil
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Character who owns the inventory")
	cmd.Flags().BoolVar(&force, "force", false, "Replace an existing inventory file")
	return cmd
}
