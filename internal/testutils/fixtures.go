// Package testutils provides shared fixtures for inventory tests
package testutils

import (
	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/testutils/builders"
)

const (
	// TestOwner is the default inventory owner for test fixtures
	TestOwner = "Beleg"

	// Backpack item IDs
	SwordID  = "item-sword"
	BowID    = "item-bow"
	ShieldID = "item-shield"
	JacketID = "item-jacket"
	PotionID = "item-potion"
)

// CreateTestBackpack creates an inventory holding one item of each
// equippable variant plus a potion, all owned by owner. Nothing is equipped.
func CreateTestBackpack(owner string) *inventory.Inventory {
	inv := inventory.New(owner)

	inv.Add(builders.NewWeaponBuilder().
		WithID(SwordID).
		WithName("Master Sword").
		WithRarity(item.RarityLegendary).
		WithDamage(300).
		MustBuild())
	inv.Add(builders.NewWeaponBuilder().
		WithID(BowID).
		WithName("Belthronding").
		WithRarity(item.RarityLegendary).
		WithDamage(500).
		WithStyle(item.StyleRanged, "bow").
		MustBuild())
	inv.Add(builders.NewShieldBuilder().
		WithID(ShieldID).
		WithName("Round Shield").
		WithDefense(5).
		MustBuild())
	inv.Add(builders.NewClothingBuilder().
		WithID(JacketID).
		WithName("Leather Jacket").
		WithRarity(item.RarityUncommon).
		WithArmor(10).
		MustBuild())
	inv.Add(builders.NewPotionBuilder().
		WithID(PotionID).
		WithName("Healing Potion").
		MustBuild())

	return inv
}
