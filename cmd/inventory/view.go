package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

func newViewCmd(a *app) *cobra.Command {
	var (
		kind    string
		showIDs bool
	)

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Show the inventory",
		Long: `Show every item in the inventory. With --kind only items of that kind are
listed, by description; --kind Weapon matches every weapon style.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := a.service.ViewInventory(cmd.Context(), &inventory.ViewInventoryInput{
				Path: a.path(),
				Kind: kind,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			owner := out.Owner
			if owner == "" {
				owner = "nobody"
			}
			fmt.Fprintf(w, "Inventory of %s (%d items)\n", owner, len(out.Items))
			for i, line := range out.Lines {
				if showIDs {
					fmt.Fprintf(w, "[%s] ", out.Items[i].GetID())
				}
				fmt.Fprintln(w, line)
			}
			return nil
		},
	}

	kinds := append(item.ConcreteTags(), item.TagWeapon)
	cmd.Flags().StringVar(&kind, "kind", "", "Only list items of this kind: "+strings.Join(kinds, ", "))
	cmd.Flags().BoolVar(&showIDs, "ids", false, "Prefix each item with its ID")
	return cmd
}
