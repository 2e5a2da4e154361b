// Package codec converts items and inventories to tagged JSON records and
// back, reconstructing every item as its original variant.
//
// Each item record carries a "type_tag" naming its variant plus the
// variant's full field set, including equip/broken/empty state. Decoding
// looks the tag up in a closed registry; an unknown tag fails the whole
// decode. Extra fields are ignored.
package codec

// Record is the flat persisted form of a single item.
// Pointer fields distinguish "absent" from zero values so required fields
// can be checked per variant.
type Record struct {
	TypeTag string `json:"type_tag"`
	// Class is the tag key used by older files; read only
	Class string `json:"class,omitempty"`

	ID          string  `json:"id,omitempty"`
	Name        *string `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
	Rarity      *string `json:"rarity" validate:"required"`
	Ownership   *string `json:"ownership"`

	// Weapon
	Damage     *float64 `json:"damage,omitempty" validate:"required"`
	WeaponKind *string  `json:"type,omitempty" validate:"required"`

	// Weapon, Shield, Clothing
	Active *bool `json:"active,omitempty"`

	// Shield
	Defense *float64 `json:"defense,omitempty"`
	Broken  *bool    `json:"broken,omitempty"`

	// Clothing
	Armor *float64 `json:"armor,omitempty"`

	// Potion
	PotionType    *string  `json:"potion_type,omitempty" validate:"required"`
	Value         *float64 `json:"value,omitempty" validate:"required"`
	EffectiveTime *float64 `json:"effective_time,omitempty" validate:"required"`
	Empty         *bool    `json:"empty,omitempty"`
}

// tag returns the record's type tag, falling back to the legacy key
func (r *Record) tag() string {
	if r.TypeTag != "" {
		return r.TypeTag
	}
	return r.Class
}

// InventoryRecord is the persisted form of an inventory
type InventoryRecord struct {
	Owner *string   `json:"owner"`
	Items []*Record `json:"items" validate:"required"`
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
