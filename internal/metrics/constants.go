package metrics

// Namespace prefixes every metric name
const Namespace = "inventory"

// Metric names
const (
	MetricNameEventsPublished = "events_published_total"
	MetricNameItemActions     = "item_actions_total"
	MetricNameItemsAdded      = "items_added_total"
)

// Help text
const (
	HelpTextEventsPublished = "Total number of inventory events published, by event type"
	HelpTextItemActions     = "Total number of item actions, by action and item type"
	HelpTextItemsAdded      = "Total number of items added to inventories, by rarity"
)

// Labels
const (
	LabelType     = "type"
	LabelAction   = "action"
	LabelItemType = "item_type"
	LabelRarity   = "rarity"
)

// Action label values
const (
	ActionAdded    = "added"
	ActionEquipped = "equipped"
	ActionUsed     = "used"
	ActionDropped  = "dropped"
	ActionRemoved  = "removed"
)
