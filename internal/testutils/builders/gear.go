package builders

import (
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
)

// ShieldBuilder provides a fluent interface for building test Shield instances
type ShieldBuilder struct {
	cfg item.ShieldConfig
}

// NewShieldBuilder creates a new builder with minimal defaults
func NewShieldBuilder() *ShieldBuilder {
	return &ShieldBuilder{
		cfg: item.ShieldConfig{
			ID:      "shield-test-123",
			Name:    "Test Shield",
			Rarity:  item.RarityCommon,
			Defense: 5,
		},
	}
}

// WithID sets the shield ID
func (b *ShieldBuilder) WithID(id string) *ShieldBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the shield name
func (b *ShieldBuilder) WithName(name string) *ShieldBuilder {
	b.cfg.Name = name
	return b
}

// WithRarity sets the rarity
func (b *ShieldBuilder) WithRarity(rarity item.Rarity) *ShieldBuilder {
	b.cfg.Rarity = rarity
	return b
}

// WithDefense sets the base defense
func (b *ShieldBuilder) WithDefense(defense float64) *ShieldBuilder {
	b.cfg.Defense = defense
	return b
}

// Broken marks the shield as broken
func (b *ShieldBuilder) Broken() *ShieldBuilder {
	b.cfg.Broken = true
	return b
}

// Build returns the configured shield
func (b *ShieldBuilder) Build() (*item.Shield, error) {
	cfg := b.cfg
	return item.NewShield(&cfg)
}

// MustBuild returns the configured shield and panics on error
func (b *ShieldBuilder) MustBuild() *item.Shield {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// ClothingBuilder provides a fluent interface for building test Clothing instances
type ClothingBuilder struct {
	cfg item.ClothingConfig
}

// NewClothingBuilder creates a new builder with minimal defaults
func NewClothingBuilder() *ClothingBuilder {
	return &ClothingBuilder{
		cfg: item.ClothingConfig{
			ID:     "clothing-test-123",
			Name:   "Test Cloak",
			Rarity: item.RarityCommon,
			Armor:  2,
		},
	}
}

// WithID sets the clothing ID
func (b *ClothingBuilder) WithID(id string) *ClothingBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the clothing name
func (b *ClothingBuilder) WithName(name string) *ClothingBuilder {
	b.cfg.Name = name
	return b
}

// WithRarity sets the rarity
func (b *ClothingBuilder) WithRarity(rarity item.Rarity) *ClothingBuilder {
	b.cfg.Rarity = rarity
	return b
}

// WithArmor sets the armor value
func (b *ClothingBuilder) WithArmor(armor float64) *ClothingBuilder {
	b.cfg.Armor = armor
	return b
}

// Build returns the configured clothing
func (b *ClothingBuilder) Build() (*item.Clothing, error) {
	cfg := b.cfg
	return item.NewClothing(&cfg)
}

// MustBuild returns the configured clothing and panics on error
func (b *ClothingBuilder) MustBuild() *item.Clothing {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

// PotionBuilder provides a fluent interface for building test Potion instances
type PotionBuilder struct {
	cfg item.PotionConfig
}

// NewPotionBuilder creates a new builder for an instant healing potion
func NewPotionBuilder() *PotionBuilder {
	return &PotionBuilder{
		cfg: item.PotionConfig{
			ID:         "potion-test-123",
			Name:       "Test Potion",
			Rarity:     item.RarityCommon,
			PotionType: "healing",
			Value:      20,
		},
	}
}

// WithID sets the potion ID
func (b *PotionBuilder) WithID(id string) *PotionBuilder {
	b.cfg.ID = id
	return b
}

// WithName sets the potion name
func (b *PotionBuilder) WithName(name string) *PotionBuilder {
	b.cfg.Name = name
	return b
}

// WithEffect sets the boosted attribute, amount and duration in seconds
func (b *PotionBuilder) WithEffect(potionType string, value, effectiveTime float64) *PotionBuilder {
	b.cfg.PotionType = potionType
	b.cfg.Value = value
	b.cfg.EffectiveTime = effectiveTime
	return b
}

// Empty marks the potion as already consumed
func (b *PotionBuilder) Empty() *PotionBuilder {
	b.cfg.Empty = true
	return b
}

// Build returns the configured potion
func (b *PotionBuilder) Build() (*item.Potion, error) {
	cfg := b.cfg
	return item.NewPotion(&cfg)
}

// MustBuild returns the configured potion and panics on error
func (b *PotionBuilder) MustBuild() *item.Potion {
	p, err := b.Build()
	if err != nil {
		panic(err)
	}
	return p
}
