// Package inventory implements the inventory orchestrator. Every mutating
// operation loads the inventory file, applies the change, saves it back and
// publishes an event.
package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-inventory/internal/codec"
	entities "github.com/KirkDiggler/rpg-inventory/internal/entities/inventory"
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/pkg/idgen"
	inventoryrepo "github.com/KirkDiggler/rpg-inventory/internal/repositories/inventory"
)

// Service defines the interface for inventory operations
type Service interface {
	// CreateInventory writes a new empty inventory.
	// Returns errors.AlreadyExists if the file exists and Overwrite is false
	CreateInventory(ctx context.Context, input *CreateInventoryInput) (*CreateInventoryOutput, error)

	// AddItem builds an item from its record and adds it to the inventory
	AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error)

	// BrewPotion adds a timed ability potion owned by the inventory's owner.
	// Returns errors.FailedPrecondition for an unowned inventory
	BrewPotion(ctx context.Context, input *BrewPotionInput) (*BrewPotionOutput, error)

	// EquipItem equips a weapon, shield or clothing.
	// Returns errors.InvalidArgument for items that cannot be equipped
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// UseItem uses an item and saves any state it changed
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// DropItem drops an item out of the inventory
	DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error)

	// RemoveItem removes an item without a drop message
	RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error)

	// ViewInventory renders the inventory, optionally filtered by kind
	ViewInventory(ctx context.Context, input *ViewInventoryInput) (*ViewInventoryOutput, error)
}

// Config holds the dependencies for the inventory orchestrator
type Config struct {
	InventoryRepo inventoryrepo.Repository
	IDGenerator   idgen.Generator
	EventBus      events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}

	return vb.Build()
}

type orchestrator struct {
	inventoryRepo inventoryrepo.Repository
	idGen         idgen.Generator
	eventBus      events.EventBus
}

// NewOrchestrator creates a new inventory orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		idGen:         cfg.IDGenerator,
		eventBus:      cfg.EventBus,
	}, nil
}

// viewKinds are the accepted view filters
var viewKinds = append(item.ConcreteTags(), item.TagWeapon)

func (o *orchestrator) CreateInventory(ctx context.Context, input *CreateInventoryInput) (*CreateInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", input.Path, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	if !input.Overwrite {
		existsOutput, err := o.inventoryRepo.Exists(ctx, inventoryrepo.ExistsInput{Path: input.Path})
		if err != nil {
			return nil, errors.Wrap(err, "failed to check inventory file")
		}
		if existsOutput.Exists {
			return nil, errors.AlreadyExistsf("inventory file %s already exists", input.Path).
				WithMeta("path", input.Path)
		}
	}

	inv := entities.New(input.Owner)
	if err := o.save(ctx, input.Path, inv); err != nil {
		return nil, err
	}

	slog.Info("Inventory created",
		"path", input.Path,
		"owner", input.Owner,
	)
	o.publishCreated(ctx, input.Path, input.Owner)

	return &CreateInventoryOutput{
		Inventory: inv,
	}, nil
}

func (o *orchestrator) AddItem(ctx context.Context, input *AddItemInput) (*AddItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", input.Path, vb)
	if input.Record == nil {
		vb.RequiredField("Record")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	inv, err := o.load(ctx, input.Path)
	if err != nil {
		return nil, err
	}

	rec := *input.Record
	rec.Ownership = nil
	if rec.ID == "" {
		rec.ID = o.idGen.Generate()
	}
	if hasID(inv, rec.ID) {
		return nil, errors.AlreadyExistsf("item %s already exists in %s", rec.ID, input.Path).
			WithMeta("item_id", rec.ID)
	}

	e, err := codec.DecodeEntity(&rec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build item")
	}

	msg := inv.Add(e)
	if err := o.save(ctx, input.Path, inv); err != nil {
		return nil, err
	}

	slog.Info("Item added",
		"path", input.Path,
		"item_id", e.GetID(),
		"item_type", e.GetType(),
		"rarity", e.GetRarity(),
	)
	o.publishItemEvent(ctx, EventItemAdded, input.Path, e, inv.Owner(), msg)

	return &AddItemOutput{
		Item:    e,
		Message: msg,
	}, nil
}

func (o *orchestrator) BrewPotion(ctx context.Context, input *BrewPotionInput) (*BrewPotionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", input.Path, vb)
	errors.ValidateRequired("Name", input.Name, vb)
	errors.ValidateRequired("PotionType", input.PotionType, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	inv, err := o.load(ctx, input.Path)
	if err != nil {
		return nil, err
	}
	if inv.Owner() == "" {
		return nil, errors.FailedPreconditionf("inventory %s has no owner to brew for", input.Path)
	}

	potion, err := item.FromAbility(o.idGen.Generate(), input.Name, inv.Owner(), input.PotionType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to brew potion")
	}

	msg := inv.Add(potion)
	if err := o.save(ctx, input.Path, inv); err != nil {
		return nil, err
	}

	slog.Info("Potion brewed",
		"path", input.Path,
		"item_id", potion.GetID(),
		"potion_type", potion.PotionType,
		"owner", inv.Owner(),
	)
	o.publishItemEvent(ctx, EventItemAdded, input.Path, potion, inv.Owner(), msg)

	return &BrewPotionOutput{
		Potion:  potion,
		Message: msg,
	}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemRef(input.Path, input.ItemRef); err != nil {
		return nil, err
	}

	inv, e, err := o.loadItem(ctx, input.Path, input.ItemRef)
	if err != nil {
		return nil, err
	}

	equippable, ok := e.(item.Equippable)
	if !ok {
		return nil, errors.InvalidArgumentf("%s cannot be equipped", e.GetName()).
			WithMeta("item_type", e.GetType())
	}

	msg := equippable.Equip()
	if err := o.save(ctx, input.Path, inv); err != nil {
		return nil, err
	}

	slog.Info("Item equipped",
		"path", input.Path,
		"item_id", e.GetID(),
		"item_type", e.GetType(),
	)
	o.publishItemEvent(ctx, EventItemEquipped, input.Path, e, inv.Owner(), msg)

	return &EquipItemOutput{
		Item:    equippable,
		Message: msg,
	}, nil
}

func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemRef(input.Path, input.ItemRef); err != nil {
		return nil, err
	}

	inv, e, err := o.loadItem(ctx, input.Path, input.ItemRef)
	if err != nil {
		return nil, err
	}

	msg := e.Use()
	if msg == "" || msg == item.ThrownAwayMessage {
		slog.Info("Item had no effect",
			"path", input.Path,
			"item_id", e.GetID(),
		)
		return &UseItemOutput{Item: e, Message: msg}, nil
	}

	// a potion is emptied by use
	if _, ok := e.(*item.Potion); ok {
		if err := o.save(ctx, input.Path, inv); err != nil {
			return nil, err
		}
	}

	slog.Info("Item used",
		"path", input.Path,
		"item_id", e.GetID(),
		"item_type", e.GetType(),
	)
	o.publishItemEvent(ctx, EventItemUsed, input.Path, e, inv.Owner(), msg)

	return &UseItemOutput{
		Item:    e,
		Message: msg,
	}, nil
}

func (o *orchestrator) DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemRef(input.Path, input.ItemRef); err != nil {
		return nil, err
	}

	inv, e, err := o.loadItem(ctx, input.Path, input.ItemRef)
	if err != nil {
		return nil, err
	}

	owner := inv.Owner()
	msg, err := inv.Drop(e)
	if err != nil {
		return nil, err
	}
	if err := o.save(ctx, input.Path, inv); err != nil {
		return nil, err
	}

	slog.Info("Item dropped",
		"path", input.Path,
		"item_id", e.GetID(),
		"owner", owner,
	)
	o.publishItemEvent(ctx, EventItemDropped, input.Path, e, owner, msg)

	return &DropItemOutput{
		Item:    e,
		Message: msg,
	}, nil
}

func (o *orchestrator) RemoveItem(ctx context.Context, input *RemoveItemInput) (*RemoveItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItemRef(input.Path, input.ItemRef); err != nil {
		return nil, err
	}

	inv, e, err := o.loadItem(ctx, input.Path, input.ItemRef)
	if err != nil {
		return nil, err
	}

	owner := inv.Owner()
	inv.Remove(e)
	if err := o.save(ctx, input.Path, inv); err != nil {
		return nil, err
	}

	slog.Info("Item removed",
		"path", input.Path,
		"item_id", e.GetID(),
	)
	o.publishItemEvent(ctx, EventItemRemoved, input.Path, e, owner, "")

	return &RemoveItemOutput{
		Item: e,
	}, nil
}

func (o *orchestrator) ViewInventory(ctx context.Context, input *ViewInventoryInput) (*ViewInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", input.Path, vb)
	if input.Kind != "" {
		errors.ValidateEnum("Kind", input.Kind, viewKinds, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	inv, err := o.load(ctx, input.Path)
	if err != nil {
		return nil, err
	}

	items := make([]item.Entity, 0, inv.Len())
	for e := range inv.All() {
		if input.Kind == "" || item.IsKind(e, input.Kind) {
			items = append(items, e)
		}
	}

	return &ViewInventoryOutput{
		Owner: inv.Owner(),
		Lines: inv.View(input.Kind),
		Items: items,
	}, nil
}

// Helper methods

func (o *orchestrator) load(ctx context.Context, path string) (*entities.Inventory, error) {
	loadOutput, err := o.inventoryRepo.Load(ctx, inventoryrepo.LoadInput{Path: path})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load inventory")
	}
	return loadOutput.Inventory, nil
}

func (o *orchestrator) loadItem(ctx context.Context, path, ref string) (*entities.Inventory, item.Entity, error) {
	inv, err := o.load(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	e, err := inv.Find(ref)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to find item in %s", path)
	}
	return inv, e, nil
}

func (o *orchestrator) save(ctx context.Context, path string, inv *entities.Inventory) error {
	if _, err := o.inventoryRepo.Save(ctx, inventoryrepo.SaveInput{
		Path:      path,
		Inventory: inv,
	}); err != nil {
		slog.Error("Failed to save inventory", "path", path, "error", err)
		return errors.Wrap(err, "failed to save inventory")
	}
	return nil
}

func validateItemRef(path, ref string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", path, vb)
	errors.ValidateRequired("ItemRef", ref, vb)
	return vb.Build()
}

func hasID(inv *entities.Inventory, id string) bool {
	for e := range inv.All() {
		if e.GetID() == id {
			return true
		}
	}
	return false
}
