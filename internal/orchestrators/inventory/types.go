package inventory

import (
	"github.com/KirkDiggler/rpg-inventory/internal/codec"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
)

// CreateInventoryInput defines the request for creating an inventory file
type CreateInventoryInput struct {
	Path string
	// Owner may be empty for an unowned container
	Owner     string
	Overwrite bool
}

// CreateInventoryOutput defines the response for creating an inventory file
type CreateInventoryOutput struct {
	Inventory *entities.Inventory
}

// AddItemInput defines the request for adding an item of any variant.
// The record's type tag selects the variant; ownership in the record is
// ignored and an ID is generated when none is given.
type AddItemInput struct {
	Path   string
	Record *codec.Record
}

// AddItemOutput defines the response for adding an item
type AddItemOutput struct {
	Item    item.Entity
	Message string
}

// BrewPotionInput defines the request for brewing an ability potion for
// the inventory's owner
type BrewPotionInput struct {
	Path       string
	Name       string
	PotionType string
}

// BrewPotionOutput defines the response for brewing an ability potion
type BrewPotionOutput struct {
	Potion  *item.Potion
	Message string
}

// EquipItemInput defines the request for equipping an item.
// ItemRef matches an item ID first, then a name.
type EquipItemInput struct {
	Path    string
	ItemRef string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	Item    item.Equippable
	Message string
}

// UseItemInput defines the request for using an item
type UseItemInput struct {
	Path    string
	ItemRef string
}

// UseItemOutput defines the response for using an item.
// Message is empty when the item could not be used.
type UseItemOutput struct {
	Item    item.Entity
	Message string
}

// DropItemInput defines the request for dropping an item
type DropItemInput struct {
	Path    string
	ItemRef string
}

// DropItemOutput defines the response for dropping an item
type DropItemOutput struct {
	Item    item.Entity
	Message string
}

// RemoveItemInput defines the request for removing an item
type RemoveItemInput struct {
	Path    string
	ItemRef string
}

// RemoveItemOutput defines the response for removing an item
type RemoveItemOutput struct {
	Item item.Entity
}

// ViewInventoryInput defines the request for viewing an inventory.
// Kind is empty or a type tag; see item.IsKind.
type ViewInventoryInput struct {
	Path string
	Kind string
}

// ViewInventoryOutput defines the response for viewing an inventory
type ViewInventoryOutput struct {
	Owner string
	Lines []string
	Items []item.Entity
}
