package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

func newBrewCmd(a *app) *cobra.Command {
	var potionType string

	cmd := &cobra.Command{
		Use:   "brew NAME",
		Short: "Brew a timed ability potion for the inventory's owner",
		Long: `Brew a common potion that boosts an attribute by 50 for 30 seconds.
The inventory must have an owner.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.BrewPotion(cmd.Context(), &inventory.BrewPotionInput{
				Path:       a.path(),
				Name:       args[0],
				PotionType: potionType,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, out.Message)
			fmt.Fprintf(w, "ID: %s\n", out.Potion.GetID())
			return nil
		},
	}

	cmd.Flags().StringVar(&potionType, "potion-type", "", "Attribute the potion boosts, e.g. attack")
	_ = cmd.MarkFlagRequired("potion-type")
	return cmd
}

func newEquipCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "equip ITEM",
		Short: "Equip a weapon, shield or piece of clothing",
		Long:  `Equip an item, referenced by ID or name. Equipped items can be used.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.EquipItem(cmd.Context(), &inventory.EquipItemInput{
				Path:    a.path(),
				ItemRef: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
}

func newUseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "use ITEM",
		Short: "Use an item",
		Long: `Use an item, referenced by ID or name. Weapons, shields and clothing must be
equipped first; a potion can be used once.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.UseItem(cmd.Context(), &inventory.UseItemInput{
				Path:    a.path(),
				ItemRef: args[0],
			})
			if err != nil {
				return err
			}

			if out.Message == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Nothing happens. %s cannot be used right now.\n", out.Item.GetName())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
}

func newDropCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "drop ITEM",
		Short: "Drop an item out of the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.DropItem(cmd.Context(), &inventory.DropItemInput{
				Path:    a.path(),
				ItemRef: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Message)
			return nil
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove ITEM",
		Short: "Remove an item from the inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.service.RemoveItem(cmd.Context(), &inventory.RemoveItemInput{
				Path:    a.path(),
				ItemRef: args[0],
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", out.Item.GetName())
			return nil
		},
	}
}
