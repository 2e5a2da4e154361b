package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-inventory/internal/codec"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

// commonItemFlags are shared by every add subcommand
type commonItemFlags struct {
	id          string
	description string
	rarity      string
}

func (f *commonItemFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.id, "id", "", "Item ID (generated when empty)")
	cmd.Flags().StringVar(&f.description, "description", "", "Item description")
	cmd.Flags().StringVar(&f.rarity, "rarity", string(item.RarityCommon), "Rarity: common, uncommon, epic, legendary")
}

// record starts a record of the given variant from the shared flags
func (f *commonItemFlags) record(tag, name string) *codec.Record {
	return &codec.Record{
		TypeTag:     tag,
		ID:          f.id,
		Name:        &name,
		Description: &f.description,
		Rarity:      &f.rarity,
	}
}

func newAddCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an item to the inventory",
		Long:  `Add an item of any variant. The item is picked up by the inventory's owner.`,
	}

	cmd.AddCommand(newAddWeaponCmd(a))
	cmd.AddCommand(newAddShieldCmd(a))
	cmd.AddCommand(newAddClothingCmd(a))
	cmd.AddCommand(newAddPotionCmd(a))
	cmd.AddCommand(newAddItemCmd(a))
	return cmd
}

func newAddWeaponCmd(a *app) *cobra.Command {
	var (
		common commonItemFlags
		damage float64
		kind   string
		style  string
	)

	cmd := &cobra.Command{
		Use:   "weapon NAME",
		Short: "Add a weapon",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws := item.WeaponStyle(style)
			if !ws.IsValid() {
				return errors.InvalidArgumentf("unknown weapon style %q (want one of: %s)", style, weaponStyleList())
			}

			rec := common.record(ws.Tag(), args[0])
			rec.Damage = &damage
			rec.WeaponKind = &kind
			return a.addItem(cmd, rec)
		},
	}

	common.bind(cmd)
	cmd.Flags().Float64Var(&damage, "damage", 0, "Base damage")
	cmd.Flags().StringVar(&kind, "kind", "", "Kind of weapon, e.g. sword or bow")
	cmd.Flags().StringVar(&style, "style", string(item.StyleSingleHanded), "Style: "+weaponStyleList())
	_ = cmd.MarkFlagRequired("damage")
	_ = cmd.MarkFlagRequired("kind")
	return cmd
}

func newAddShieldCmd(a *app) *cobra.Command {
	var (
		common  commonItemFlags
		defense float64
		broken  bool
	)

	cmd := &cobra.Command{
		Use:   "shield NAME",
		Short: "Add a shield",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := common.record(item.TagShield, args[0])
			rec.Defense = &defense
			rec.Broken = &broken
			return a.addItem(cmd, rec)
		},
	}

	common.bind(cmd)
	cmd.Flags().Float64Var(&defense, "defense", 0, "Base defense")
	cmd.Flags().BoolVar(&broken, "broken", false, "The shield is broken and blocks half as much")
	return cmd
}

func newAddClothingCmd(a *app) *cobra.Command {
	var (
		common commonItemFlags
		armor  float64
	)

	cmd := &cobra.Command{
		Use:   "clothing NAME",
		Short: "Add a piece of clothing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := common.record(item.TagClothing, args[0])
			rec.Armor = &armor
			return a.addItem(cmd, rec)
		},
	}

	common.bind(cmd)
	cmd.Flags().Float64Var(&armor, "armor", 0, "Armor value")
	return cmd
}

func newAddPotionCmd(a *app) *cobra.Command {
	var (
		common        commonItemFlags
		potionType    string
		value         float64
		effectiveTime float64
	)

	cmd := &cobra.Command{
		Use:   "potion NAME",
		Short: "Add a potion",
		Long:  `Add a potion. A zero --effective-time makes an instant potion.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rec := common.record(item.TagPotion, args[0])
			rec.PotionType = &potionType
			rec.Value = &value
			rec.EffectiveTime = &effectiveTime
			return a.addItem(cmd, rec)
		},
	}

	common.bind(cmd)
	cmd.Flags().StringVar(&potionType, "potion-type", "", "Attribute the potion boosts, e.g. attack")
	cmd.Flags().Float64Var(&value, "value", 0, "Boost amount")
	cmd.Flags().Float64Var(&effectiveTime, "effective-time", 0, "Boost duration in seconds")
	_ = cmd.MarkFlagRequired("potion-type")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func newAddItemCmd(a *app) *cobra.Command {
	var common commonItemFlags

	cmd := &cobra.Command{
		Use:   "item NAME",
		Short: "Add a plain item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.addItem(cmd, common.record(item.TagItem, args[0]))
		},
	}

	common.bind(cmd)
	return cmd
}

func (a *app) addItem(cmd *cobra.Command, rec *codec.Record) error {
	out, err := a.service.AddItem(cmd.Context(), &inventory.AddItemInput{
		Path:   a.path(),
		Record: rec,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, out.Message)
	fmt.Fprintf(w, "ID: %s\n", out.Item.GetID())
	return nil
}

func weaponStyleList() string {
	return strings.Join([]string{
		string(item.StyleSingleHanded),
		string(item.StyleDoubleHanded),
		string(item.StylePike),
		string(item.StyleRanged),
	}, ", ")
}
