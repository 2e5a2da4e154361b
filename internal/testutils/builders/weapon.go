// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
)

// WeaponBuilder provides a fluent interface for building test Weapon instances
type WeaponBuilder struct {
	cfg item.WeaponConfig
}

// NewWeaponBuilder creates a new builder for a common single-handed sword
func NewWeaponBuilder() *WeaponBuilder {
	return &WeaponBuilder{
		cfg: item.WeaponConfig{
			ID:     "weapon-test-123",
			Name:   "Test Sword",
			Rarity: item.RarityCommon,
			Damage: 10,
			Kind:   "sword",
			Style:  item.StyleSingleHanded,
		},
	}
}

// WithID sets the weapon ID
func (b *WeaponBuilder) WithID(id string) *WeaponBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the weapon name
func (b *WeaponBuilder) WithName(name string) *WeaponBuilder {
	b.cfg.Name = name
	return b
}

// WithRarity sets the rarity
func (b *WeaponBuilder) WithRarity(rarity item.Rarity) *WeaponBuilder {
	b.cfg.Rarity = rarity
	return b
}

// WithDamage sets the base damage
func (b *WeaponBuilder) WithDamage(damage float64) *WeaponBuilder {
	b.cfg.Damage = damage
	return b
}

// WithStyle sets the style and the kind of weapon it is
func (b *WeaponBuilder) WithStyle(style item.WeaponStyle, kind string) *WeaponBuilder {
	b.cfg.Style = style
	b.cfg.Kind = kind
	return b
}

// Equipped marks the weapon as already equipped
func (b *WeaponBuilder) Equipped() *WeaponBuilder {
	b.cfg.Active = true
	return b
}

// Build returns the configured weapon
func (b *WeaponBuilder) Build() (*item.Weapon, error) {
	cfg := b.cfg
	return item.NewWeapon(&cfg)
}

// MustBuild returns the configured weapon and panics on error
func (b *WeaponBuilder) MustBuild() *item.Weapon {
	w, err := b.Build()
	if err != nil {
		panic(err)
	}
	return w
}
