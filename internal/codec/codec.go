package codec

import (
	"encoding/json"
	"io"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	rpgerr "github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// EncodeEntity converts an item to its tagged record. Items the decoder
// would reject (no name, unknown rarity) are refused here so a saved file
// always loads.
func EncodeEntity(e item.Entity) (*Record, error) {
	if e == nil {
		return nil, rpgerr.InvalidArgument("item is required")
	}
	if e.GetName() == "" {
		return nil, rpgerr.InvalidArgumentf("%s item has no name", e.GetType()).
			WithMeta("item_id", e.GetID())
	}
	if !e.GetRarity().IsValid() {
		return nil, rpgerr.InvalidArgumentf("%s has unknown rarity %q", e.GetName(), e.GetRarity()).
			WithMeta("rarity", e.GetRarity().String())
	}

	rec := &Record{
		TypeTag:     e.GetType(),
		ID:          e.GetID(),
		Name:        ptr(e.GetName()),
		Description: ptr(e.GetDescription()),
		Rarity:      ptr(e.GetRarity().String()),
		Ownership:   optional(e.Owner()),
	}

	switch v := e.(type) {
	case *item.Item:
	case *item.Weapon:
		rec.Damage = ptr(v.Damage)
		rec.WeaponKind = ptr(v.Kind)
		rec.Active = ptr(v.IsActive())
	case *item.Shield:
		rec.Defense = ptr(v.Defense)
		rec.Broken = ptr(v.Broken)
		rec.Active = ptr(v.IsActive())
	case *item.Clothing:
		rec.Armor = ptr(v.Armor)
		rec.Active = ptr(v.IsActive())
	case *item.Potion:
		rec.PotionType = ptr(v.PotionType)
		rec.Value = ptr(v.Value)
		rec.EffectiveTime = ptr(v.EffectiveTime)
		rec.Empty = ptr(v.IsEmpty())
	default:
		return nil, rpgerr.UnknownVariant(e.GetType())
	}

	if !IsRegistered(rec.TypeTag) {
		return nil, rpgerr.UnknownVariant(rec.TypeTag)
	}
	return rec, nil
}

// DecodeEntity rebuilds an unowned item from its record. The persisted
// ownership is not restored; ownership comes from the inventory the item is
// added to.
func DecodeEntity(rec *Record) (item.Entity, error) {
	if rec == nil {
		return nil, rpgerr.MalformedRecordf("item record is null")
	}

	tag := rec.tag()
	if tag == "" {
		return nil, rpgerr.MalformedRecord("item", []string{"type_tag"})
	}

	build, ok := registry[tag]
	if !ok {
		return nil, rpgerr.UnknownVariant(tag)
	}

	e, err := build(rec)
	if err != nil {
		if rpgerr.IsInvalidArgument(err) {
			return nil, rpgerr.WrapWithCodef(err, rpgerr.CodeMalformedRecord, "invalid %s record", tag)
		}
		return nil, err
	}
	return e, nil
}

// EncodeInventory converts an inventory and its items, in order
func EncodeInventory(inv *inventory.Inventory) (*InventoryRecord, error) {
	if inv == nil {
		return nil, rpgerr.InvalidArgument("inventory is required")
	}

	rec := &InventoryRecord{
		Owner: optional(inv.Owner()),
		Items: make([]*Record, 0, inv.Len()),
	}
	for e := range inv.All() {
		itemRec, err := EncodeEntity(e)
		if err != nil {
			return nil, rpgerr.Wrapf(err, "failed to encode %s", e.GetName())
		}
		rec.Items = append(rec.Items, itemRec)
	}
	return rec, nil
}

// DecodeInventory rebuilds an inventory. Every item is decoded before any
// is added, so a failing record leaves nothing half-built. Items are added
// through Inventory.Add and take the inventory's owner.
func DecodeInventory(rec *InventoryRecord) (*inventory.Inventory, error) {
	if rec == nil {
		return nil, rpgerr.MalformedRecordf("inventory record is null")
	}
	if err := requireInventoryFields(rec); err != nil {
		return nil, err
	}

	entities := make([]item.Entity, 0, len(rec.Items))
	for i, itemRec := range rec.Items {
		e, err := DecodeEntity(itemRec)
		if err != nil {
			return nil, rpgerr.Wrapf(err, "failed to decode item %d", i).WithMeta("index", i)
		}
		entities = append(entities, e)
	}

	inv := inventory.New(deref(rec.Owner))
	for _, e := range entities {
		inv.Add(e)
	}
	return inv, nil
}

func requireInventoryFields(rec *InventoryRecord) error {
	if err := validate.Struct(rec); err != nil {
		return rpgerr.MalformedRecord("inventory", []string{"items"})
	}
	return nil
}

// Marshal encodes an inventory to indented JSON
func Marshal(inv *inventory.Inventory) ([]byte, error) {
	rec, err := EncodeInventory(inv)
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, rpgerr.Wrap(err, "failed to marshal inventory")
	}
	return data, nil
}

// Unmarshal decodes an inventory from JSON
func Unmarshal(data []byte) (*inventory.Inventory, error) {
	var rec InventoryRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, rpgerr.WrapWithCode(err, rpgerr.CodeMalformedRecord, "failed to parse inventory")
	}
	return DecodeInventory(&rec)
}

// Save writes the encoded inventory to w. Nothing is written if encoding
// fails.
func Save(inv *inventory.Inventory, w io.Writer) error {
	data, err := Marshal(inv)
	if err != nil {
		return err
	}
	data = append(data, '\n')
	if _, err := w.Write(data); err != nil {
		return rpgerr.IOFailure(err, "failed to write inventory")
	}
	return nil
}

// Load reads and decodes an inventory from r
func Load(r io.Reader) (*inventory.Inventory, error) {
	if r == nil {
		return nil, rpgerr.InvalidArgument("source is required")
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, rpgerr.IOFailure(err, "failed to read inventory")
	}
	return Unmarshal(data)
}
