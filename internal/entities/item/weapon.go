package item

import (
	"fmt"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// WeaponStyle selects a weapon's attack move
type WeaponStyle string

// Weapon styles
const (
	StyleSingleHanded WeaponStyle = "single_handed"
	StyleDoubleHanded WeaponStyle = "double_handed"
	StylePike         WeaponStyle = "pike"
	StyleRanged       WeaponStyle = "ranged"
)

// IsValid checks if the style is one of the known styles
func (s WeaponStyle) IsValid() bool {
	_, ok := styleTags[s]
	return ok
}

// Tag returns the type tag of weapons with this style
func (s WeaponStyle) Tag() string {
	return styleTags[s]
}

var styleTags = map[WeaponStyle]string{
	StyleSingleHanded: TagSingleHandedWeapon,
	StyleDoubleHanded: TagDoubleHandedWeapon,
	StylePike:         TagPike,
	StyleRanged:       TagRangedWeapon,
}

// StyleForTag returns the weapon style persisted under tag
func StyleForTag(tag string) (WeaponStyle, bool) {
	for style, t := range styleTags {
		if t == tag {
			return style, true
		}
	}
	return "", false
}

var weaponRarityMultipliers = multiplierTable{
	RarityCommon:    1.0,
	RarityUncommon:  1.0,
	RarityEpic:      1.0,
	RarityLegendary: 1.15,
}

// WeaponConfig configures a weapon.
// Active restores a previously equipped weapon.
type WeaponConfig struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
	Damage      float64
	Kind        string
	Style       WeaponStyle
	Active      bool
}

// Weapon deals damage when used while equipped
type Weapon struct {
	Base
	Damage float64
	// Kind is a free-form label such as "sword" or "bow"
	Kind   string
	style  WeaponStyle
	active bool
}

// NewWeapon creates an unowned weapon
func NewWeapon(cfg *WeaponConfig) (*Weapon, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if !cfg.Style.IsValid() {
		return nil, errors.InvalidArgumentf("unknown weapon style %q", cfg.Style)
	}
	base, err := newBase(cfg.ID, cfg.Name, cfg.Description, cfg.Rarity)
	if err != nil {
		return nil, err
	}
	return &Weapon{
		Base:   base,
		Damage: cfg.Damage,
		Kind:   cfg.Kind,
		style:  cfg.Style,
		active: cfg.Active,
	}, nil
}

// GetType returns the type tag for the weapon's style
func (w *Weapon) GetType() string {
	return w.style.Tag()
}

// Style returns the weapon's style
func (w *Weapon) Style() WeaponStyle {
	return w.style
}

// Equip activates the weapon
func (w *Weapon) Equip() string {
	w.active = true
	return fmt.Sprintf("%s is equipped.", w.name)
}

// IsActive reports whether the weapon has been equipped
func (w *Weapon) IsActive() bool {
	return w.active
}

// AttackMove returns the flavor text for the weapon's style
func (w *Weapon) AttackMove() string {
	switch w.style {
	case StyleSingleHanded:
		return fmt.Sprintf("%s slashes with %s", w.owner, w.name)
	case StyleDoubleHanded:
		return fmt.Sprintf("%s spins %s powerfully", w.owner, w.name)
	case StylePike:
		return fmt.Sprintf("%s thrusts forward with %s", w.owner, w.name)
	case StyleRanged:
		return fmt.Sprintf("%s shoots an arrow from %s", w.owner, w.name)
	default:
		return ""
	}
}

// AttackPower returns damage scaled by the weapon rarity multiplier
func (w *Weapon) AttackPower() (float64, error) {
	m, err := weaponRarityMultipliers.lookup(w.rarity)
	if err != nil {
		return 0, err
	}
	return w.Damage * m, nil
}

// Use attacks with the weapon. Returns "" when unowned or not equipped.
func (w *Weapon) Use() string {
	if !w.IsOwned() || !w.active {
		return ""
	}
	// rarity is validated at construction
	power, err := w.AttackPower()
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s %s is used, dealing %s damage", w.AttackMove(), w.name, formatPower(power))
}
