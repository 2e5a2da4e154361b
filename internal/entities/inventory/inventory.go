// Package inventory provides the ordered, owner-scoped container of items.
//
// Adding an item stamps it with the inventory's owner; removing or dropping
// it clears the owner. An Inventory is not safe for concurrent use.
package inventory

import (
	"fmt"
	"iter"
	"slices"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// Inventory holds items in insertion order
type Inventory struct {
	owner string
	items []item.Entity
}

// New creates an empty inventory. owner may be "" for an unowned inventory.
func New(owner string) *Inventory {
	return &Inventory{owner: owner}
}

// Owner returns the inventory's owner
func (inv *Inventory) Owner() string {
	return inv.owner
}

// Add appends e and assigns it to the inventory's owner, replacing any
// previous owner, and returns the item's pick-up message. Callers should
// add each item once.
func (inv *Inventory) Add(e item.Entity) string {
	if e == nil {
		return ""
	}
	msg := inv.stamp(e)
	inv.items = append(inv.items, e)
	return msg
}

// stamp gives e to the owner; an unowned inventory leaves e unowned
func (inv *Inventory) stamp(e item.Entity) string {
	if inv.owner == "" {
		return e.ThrowAway()
	}
	return e.PickUp(inv.owner)
}

// Remove takes e out of the inventory and clears its owner.
// It does nothing if e is not present.
func (inv *Inventory) Remove(e item.Entity) {
	_ = inv.take(e)
}

// Drop takes e out of the inventory and clears its owner, reporting the
// outcome. Dropping an item that is not present returns a NotFound error.
func (inv *Inventory) Drop(e item.Entity) (string, error) {
	if e == nil {
		return "", errors.InvalidArgument("item is required")
	}
	if !inv.take(e) {
		return "", errors.NotFoundf("%s is not in the inventory.", e.GetName()).
			WithMeta("item_id", e.GetID())
	}
	return fmt.Sprintf("%s has been dropped by %s.", e.GetName(), inv.owner), nil
}

func (inv *Inventory) take(e item.Entity) bool {
	idx := inv.indexOf(e)
	if idx < 0 {
		return false
	}
	e.ThrowAway()
	inv.items = slices.Delete(inv.items, idx, idx+1)
	return true
}

func (inv *Inventory) indexOf(e item.Entity) int {
	if e == nil {
		return -1
	}
	for i, it := range inv.items {
		if it == e {
			return i
		}
	}
	return -1
}

// Contains reports whether e itself, not an equal copy, is in the inventory
func (inv *Inventory) Contains(e item.Entity) bool {
	return inv.indexOf(e) >= 0
}

// Len returns the number of items
func (inv *Inventory) Len() int {
	return len(inv.items)
}

// All iterates over the items in insertion order
func (inv *Inventory) All() iter.Seq[item.Entity] {
	return func(yield func(item.Entity) bool) {
		for _, e := range inv.items {
			if !yield(e) {
				return
			}
		}
	}
}

// Items returns a copy of the item list in insertion order
func (inv *Inventory) Items() []item.Entity {
	return slices.Clone(inv.items)
}

// View renders the inventory. With an empty kind every item is rendered
// with Describe; otherwise only items matching kind (see item.IsKind) are
// listed, by description.
func (inv *Inventory) View(kind string) []string {
	lines := make([]string, 0, len(inv.items))
	for _, e := range inv.items {
		if kind == "" {
			lines = append(lines, e.Describe())
			continue
		}
		if item.IsKind(e, kind) {
			lines = append(lines, e.GetDescription())
		}
	}
	return lines
}

// Find returns the first item whose ID or name matches ref
func (inv *Inventory) Find(ref string) (item.Entity, error) {
	if ref == "" {
		return nil, errors.InvalidArgument("item reference is required")
	}
	for _, e := range inv.items {
		if e.GetID() == ref {
			return e, nil
		}
	}
	for _, e := range inv.items {
		if e.GetName() == ref {
			return e, nil
		}
	}
	return nil, errors.NotFoundf("no item %q in the inventory", ref)
}
