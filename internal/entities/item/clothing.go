package item

import (
	"fmt"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// ThrownAwayMessage is returned by clothing and potions used while unowned
const ThrownAwayMessage = "This item has been thrown away"

// ClothingConfig configures a piece of clothing.
// Active restores previously equipped clothing.
type ClothingConfig struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Armor       float64
	Active      bool
}

// Clothing provides armor when worn. It has no rarity multiplier.
type Clothing struct {
	Base
	Armor  float64
	active bool
}

// NewClothing creates an unowned piece of clothing
func NewClothing(cfg *ClothingConfig) (*Clothing, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	base, err := newBase(cfg.ID, cfg.Name, cfg.Description, cfg.Rarity)
	if err != nil {
		return nil, err
	}
	return &Clothing{
		Base:   base,
		Armor:  cfg.Armor,
		active: cfg.Active,
	}, nil
}

// GetType returns the clothing type tag
func (c *Clothing) GetType() string {
	return TagClothing
}

// Equip puts the clothing on
func (c *Clothing) Equip() string {
	c.active = true
	return fmt.Sprintf("%s is equipped.", c.name)
}

// IsActive reports whether the clothing has been equipped
func (c *Clothing) IsActive() bool {
	return c.active
}

// Use wears the clothing. Unlike weapons and shields, unowned clothing
// reports that it was thrown away rather than returning "".
func (c *Clothing) Use() string {
	if !c.IsOwned() {
		return ThrownAwayMessage
	}
	if !c.active {
		return ""
	}
	return fmt.Sprintf("%s is used, providing %s armor", c.name, formatAmount(c.Armor))
}

// Describe renders the clothing with its armor value
func (c *Clothing) Describe() string {
	if c.rarity == RarityLegendary {
		return c.legendaryBanner()
	}
	return fmt.Sprintf("Clothes: %s, Armor: %s, Rarity: %s", c.name, formatAmount(c.Armor), c.rarity)
}
