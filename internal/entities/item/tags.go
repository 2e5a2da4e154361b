package item

// Type tags identify concrete variants in persisted records
const (
	TagItem               = "Item"
	TagSingleHandedWeapon = "SingleHandedWeapon"
	TagDoubleHandedWeapon = "DoubleHandedWeapon"
	TagPike               = "Pike"
	TagRangedWeapon       = "RangedWeapon"
	TagShield             = "Shield"
	TagClothing           = "Clothing"
	TagPotion             = "Potion"

	// TagWeapon names the weapon family. It is accepted as a view filter
	// but is never a concrete variant.
	TagWeapon = "Weapon"
)

// ConcreteTags returns the tag of every concrete variant
func ConcreteTags() []string {
	return []string{
		TagItem,
		TagSingleHandedWeapon,
		TagDoubleHandedWeapon,
		TagPike,
		TagRangedWeapon,
		TagShield,
		TagClothing,
		TagPotion,
	}
}

// IsKind reports whether e belongs to the kind named by tag.
// TagItem matches every entity and TagWeapon matches all weapon styles.
func IsKind(e Entity, tag string) bool {
	switch tag {
	case TagItem:
		return true
	case TagWeapon:
		_, ok := e.(*Weapon)
		return ok
	default:
		return e.GetType() == tag
	}
}
