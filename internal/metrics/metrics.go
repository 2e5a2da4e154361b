// Package metrics counts inventory activity from the event bus and writes
// it in the Prometheus text format for the node exporter textfile
// collector.
package metrics

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/KirkDiggler/rpg-inventory/internal/errors"
	"github.com/KirkDiggler/rpg-inventory/internal/orchestrators/inventory"
)

// actions maps item event types to their action label
var actions = map[string]string{
	inventory.EventItemAdded:    ActionAdded,
	inventory.EventItemEquipped: ActionEquipped,
	inventory.EventItemUsed:     ActionUsed,
	inventory.EventItemDropped:  ActionDropped,
	inventory.EventItemRemoved:  ActionRemoved,
}

// EventMetricsCollector subscribes to inventory events and records metrics
// on its own registry
type EventMetricsCollector struct {
	registry *prometheus.Registry

	eventsPublished *prometheus.CounterVec
	itemActions     *prometheus.CounterVec
	itemsAdded      *prometheus.CounterVec
}

// NewEventMetricsCollector creates a collector with a fresh registry
func NewEventMetricsCollector() *EventMetricsCollector {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &EventMetricsCollector{
		registry: reg,
		eventsPublished: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameEventsPublished,
				Help:      HelpTextEventsPublished,
			},
			[]string{LabelType},
		),
		itemActions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameItemActions,
				Help:      HelpTextItemActions,
			},
			[]string{LabelAction, LabelItemType},
		),
		itemsAdded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      MetricNameItemsAdded,
				Help:      HelpTextItemsAdded,
			},
			[]string{LabelRarity},
		),
	}
}

// Register subscribes to every inventory event type and returns the
// subscription IDs
func (c *EventMetricsCollector) Register(bus events.EventBus) []string {
	eventTypes := []string{
		inventory.EventInventoryCreated,
		inventory.EventItemAdded,
		inventory.EventItemEquipped,
		inventory.EventItemUsed,
		inventory.EventItemDropped,
		inventory.EventItemRemoved,
	}

	ids := make([]string, 0, len(eventTypes))
	for _, eventType := range eventTypes {
		ids = append(ids, bus.SubscribeFunc(eventType, 0, c.HandleEvent))
	}
	return ids
}

// HandleEvent processes events and updates metrics
func (c *EventMetricsCollector) HandleEvent(_ context.Context, e events.Event) error {
	c.eventsPublished.WithLabelValues(e.Type()).Inc()

	action, ok := actions[e.Type()]
	if !ok {
		return nil
	}

	itemType, ok := contextString(e, inventory.ContextItemType)
	if !ok {
		slog.Debug("Item event without item type", "type", e.Type())
		return nil
	}
	c.itemActions.WithLabelValues(action, itemType).Inc()

	if action == ActionAdded {
		if rarity, ok := contextString(e, inventory.ContextRarity); ok {
			c.itemsAdded.WithLabelValues(rarity).Inc()
		}
	}
	return nil
}

// WriteTextfile writes every metric to path, replacing the file atomically
func (c *EventMetricsCollector) WriteTextfile(path string) error {
	if path == "" {
		return errors.InvalidArgument("metrics path is required")
	}
	if err := prometheus.WriteToTextfile(path, c.registry); err != nil {
		return errors.IOFailuref(err, "failed to write metrics to %s", path).WithMeta("path", path)
	}
	return nil
}

// Registry returns the registry the collector's metrics live on
func (c *EventMetricsCollector) Registry() *prometheus.Registry {
	return c.registry
}

func contextString(e events.Event, key string) (string, bool) {
	v, ok := e.Context().Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}
