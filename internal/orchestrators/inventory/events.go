package inventory

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
)

// Event types published on the event bus
const (
	EventInventoryCreated = "inventory.created"
	EventItemAdded        = "inventory.item.added"
	EventItemEquipped     = "inventory.item.equipped"
	EventItemUsed         = "inventory.item.used"
	EventItemDropped      = "inventory.item.dropped"
	EventItemRemoved      = "inventory.item.removed"
)

// Event context keys
const (
	ContextPath     = "path"
	ContextItemType = "item_type"
	ContextRarity   = "rarity"
	ContextMessage  = "message"
)

// characterType is the entity type of an inventory owner
const characterType = "character"

// character is the owner of an inventory as seen on the event bus
type character struct {
	name string
}

func (c *character) GetID() string {
	return c.name
}

func (c *character) GetType() string {
	return characterType
}

func ownerEntity(owner string) core.Entity {
	if owner == "" {
		return nil
	}
	return &character{name: owner}
}

// publishItemEvent publishes an item event with the item as source and the
// owner as target. Publish failures are logged; the change is already saved.
func (o *orchestrator) publishItemEvent(ctx context.Context, eventType, path string, e item.Entity, owner, message string) {
	event := events.NewGameEvent(eventType, e, ownerEntity(owner))
	event.Context().Set(ContextPath, path)
	event.Context().Set(ContextItemType, e.GetType())
	event.Context().Set(ContextRarity, e.GetRarity().String())
	if message != "" {
		event.Context().Set(ContextMessage, message)
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"event", eventType,
			"item_id", e.GetID(),
			"error", err,
		)
	}
}

func (o *orchestrator) publishCreated(ctx context.Context, path, owner string) {
	event := events.NewGameEvent(EventInventoryCreated, ownerEntity(owner), nil)
	event.Context().Set(ContextPath, path)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("Failed to publish event",
			"event", EventInventoryCreated,
			"path", path,
			"error", err,
		)
	}
}
