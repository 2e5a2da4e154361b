// Package item defines the game items an inventory can hold and the state
// transitions each of them supports.
//
// An item is created unowned. Ownership is stamped when the item is added to
// an inventory (or picked up directly) and cleared when it is removed or
// thrown away. Items are always handled by pointer; two values are the same
// item only if they are the same pointer.
package item

import (
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// Entity is the capability set shared by every item variant
type Entity interface {
	core.Entity

	GetName() string
	GetDescription() string
	GetRarity() Rarity

	// Owner returns the owning character, or "" when unowned
	Owner() string
	IsOwned() bool

	// PickUp assigns the owner unconditionally, replacing any previous owner
	PickUp(character string) string
	// ThrowAway clears the owner unconditionally
	ThrowAway() string

	// Use activates the item. Unowned or inactive items return a fixed
	// message (often "") instead of failing.
	Use() string

	Describe() string
}

// Equippable is implemented by variants with a one-way equip transition.
// There is no unequip; an item stays active until it leaves its inventory
// or is discarded.
type Equippable interface {
	Entity
	Equip() string
	IsActive() bool
}

// Base holds the fields every variant shares
type Base struct {
	id          string
	name        string
	description string
	rarity      Rarity
	owner       string
}

func newBase(id, name, description string, rarity Rarity) (Base, error) {
	if name == "" {
		return Base{}, errors.InvalidArgument("item name is required")
	}
	r, err := ParseRarity(string(rarity))
	if err != nil {
		return Base{}, err
	}
	return Base{
		id:          id,
		name:        name,
		description: description,
		rarity:      r,
	}, nil
}

// GetID returns the item's ID
func (b *Base) GetID() string {
	return b.id
}

// GetName returns the item's name
func (b *Base) GetName() string {
	return b.name
}

// GetDescription returns the item's description
func (b *Base) GetDescription() string {
	return b.description
}

// GetRarity returns the item's rarity
func (b *Base) GetRarity() Rarity {
	return b.rarity
}

// Owner returns the owning character, or "" when unowned
func (b *Base) Owner() string {
	return b.owner
}

// IsOwned reports whether the item has an owner
func (b *Base) IsOwned() bool {
	return b.owner != ""
}

// PickUp assigns the owner, overwriting any existing owner
func (b *Base) PickUp(character string) string {
	b.owner = character
	return fmt.Sprintf("%s is now owned by %s", b.name, character)
}

// ThrowAway clears the owner
func (b *Base) ThrowAway() string {
	b.owner = ""
	return fmt.Sprintf("%s has been thrown away", b.name)
}

// Describe renders the item for display. Legendary items get a banner.
func (b *Base) Describe() string {
	if b.rarity == RarityLegendary {
		return b.legendaryBanner()
	}
	return fmt.Sprintf("%s - %s (Rarity: %s)", b.name, b.description, b.rarity)
}

func (b *Base) legendaryBanner() string {
	return fmt.Sprintf("\n    ⚔️ [LEGENDARY ITEM] ⚔️\n    %s - %s\n    (Rarity: %s)\n    \"Shines with a divine glow!\"\n    ",
		b.name, b.description, b.rarity)
}

// ItemConfig configures a plain item
type ItemConfig struct {
	ID          string
	Name        string
	Description string
	Rarity      Rarity
}

// Item is a plain item with no variant-specific behavior
type Item struct {
	Base
}

// NewItem creates an unowned plain item
func NewItem(cfg *ItemConfig) (*Item, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	base, err := newBase(cfg.ID, cfg.Name, cfg.Description, cfg.Rarity)
	if err != nil {
		return nil, err
	}
	return &Item{Base: base}, nil
}

// GetType returns the item's type tag
func (i *Item) GetType() string {
	return TagItem
}

// Use returns a generic message when owned and "" otherwise
func (i *Item) Use() string {
	if !i.IsOwned() {
		return ""
	}
	return fmt.Sprintf("%s is used", i.name)
}

var (
	_ Entity      = (*Item)(nil)
	_ Entity      = (*Weapon)(nil)
	_ Entity      = (*Shield)(nil)
	_ Entity      = (*Clothing)(nil)
	_ Entity      = (*Potion)(nil)
	_ Equippable  = (*Weapon)(nil)
	_ Equippable  = (*Shield)(nil)
	_ Equippable  = (*Clothing)(nil)
)
