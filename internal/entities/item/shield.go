package item

import (
	"fmt"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// brokenShieldModifier halves the defense of a broken shield
const brokenShieldModifier = 0.5

var shieldRarityMultipliers = multiplierTable{
	RarityCommon:    1.0,
	RarityUncommon:  1.0,
	RarityEpic:      1.0,
	RarityLegendary: 1.10,
}

// ShieldConfig configures a shield.
// Active restores a previously equipped shield.
type ShieldConfig struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Defense     float64
	Broken      bool
	Active      bool
}

// Shield blocks damage when used while equipped
type Shield struct {
	Base
	Defense float64
	Broken  bool
	active  bool
}

// NewShield creates an unowned shield
func NewShield(cfg *ShieldConfig) (*Shield, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	base, err := newBase(cfg.ID, cfg.Name, cfg.Description, cfg.Rarity)
	if err != nil {
		return nil, err
	}
	return &Shield{
		Base:    base,
		Defense: cfg.Defense,
		Broken:  cfg.Broken,
		active:  cfg.Active,
	}, nil
}

// GetType returns the shield type tag
func (s *Shield) GetType() string {
	return TagShield
}

// Equip activates the shield
func (s *Shield) Equip() string {
	s.active = true
	return fmt.Sprintf("%s is equipped.", s.name)
}

// IsActive reports whether the shield has been equipped
func (s *Shield) IsActive() bool {
	return s.active
}

// DefensePower returns defense scaled by rarity, halved when broken
func (s *Shield) DefensePower() (float64, error) {
	m, err := shieldRarityMultipliers.lookup(s.rarity)
	if err != nil {
		return 0, err
	}
	modifier := 1.0
	if s.Broken {
		modifier = brokenShieldModifier
	}
	return s.Defense * m * modifier, nil
}

// Use blocks with the shield. Returns "" when unowned or not equipped.
func (s *Shield) Use() string {
	if !s.IsOwned() || !s.active {
		return ""
	}
	power, err := s.DefensePower()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s is used, blocking %s damage", s.name, formatPower(power))
}
