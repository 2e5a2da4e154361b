package item

import (
	"fmt"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// Ability potion defaults
const (
	AbilityPotionValue         float64 = 50
	AbilityPotionEffectiveTime float64 = 30
)

// PotionConfig configures a potion.
// EffectiveTime is in seconds; 0 means the effect is instantaneous.
// Empty restores a previously consumed potion.
type PotionConfig struct {
	ID            string
	Name          string
	Description   string
	Rarity        Rarity
	PotionType    string
	Value         float64
	EffectiveTime float64
	Empty         bool
}

// Potion is a one-shot consumable
type Potion struct {
	Base
	PotionType    string
	Value         float64
	EffectiveTime float64
	empty         bool
}

// NewPotion creates an unowned, full potion
func NewPotion(cfg *PotionConfig) (*Potion, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if cfg.EffectiveTime < 0 {
		return nil, errors.InvalidArgumentf("effective time cannot be negative: %v", cfg.EffectiveTime)
	}
	base, err := newBase(cfg.ID, cfg.Name, cfg.Description, cfg.Rarity)
	if err != nil {
		return nil, err
	}
	return &Potion{
		Base:          base,
		PotionType:    cfg.PotionType,
		Value:         cfg.Value,
		EffectiveTime: cfg.EffectiveTime,
		empty:         cfg.Empty,
	}, nil
}

// FromAbility creates a common timed potion already owned by owner.
// The potion is owned without being in any inventory; add it to the
// owner's inventory to restore the ownership invariant.
func FromAbility(id, name, owner, potionType string) (*Potion, error) {
	p, err := NewPotion(&PotionConfig{
		ID:            id,
		Name:          name,
		Rarity:        RarityCommon,
		PotionType:    potionType,
		Value:         AbilityPotionValue,
		EffectiveTime: AbilityPotionEffectiveTime,
	})
	if err != nil {
		return nil, err
	}
	p.owner = owner
	return p, nil
}

// GetType returns the potion type tag
func (p *Potion) GetType() string {
	return TagPotion
}

// IsEmpty reports whether the potion has been consumed
func (p *Potion) IsEmpty() bool {
	return p.empty
}

// Use consumes the potion. The first use empties it for good; later uses
// return "". An unowned potion reports that it was thrown away, even when
// empty.
func (p *Potion) Use() string {
	if !p.IsOwned() {
		return ThrownAwayMessage
	}
	if p.empty {
		return ""
	}
	p.empty = true

	consumed := fmt.Sprintf("%s potion has been consumed", capitalize(p.PotionType))
	if p.EffectiveTime > 0 {
		return fmt.Sprintf("%s used %s, and %s increased by %s for %ss\n%s",
			p.owner, p.name, p.PotionType, formatAmount(p.Value), formatAmount(p.EffectiveTime), consumed)
	}
	return fmt.Sprintf("%s consumed %s\n%s", p.owner, p.name, consumed)
}
