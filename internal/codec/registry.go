package codec

import (
	"errors"
	"reflect"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	rpgerr "github.com/KirkDiggler/rpg-inventory/internal/errors"
)

// constructor rebuilds one variant from its record
type constructor func(rec *Record) (item.Entity, error)

// registry maps each type tag to its constructor. It is fixed at startup;
// there is no way to register additional variants.
var registry = map[string]constructor{
	item.TagItem:               decodeItem,
	item.TagSingleHandedWeapon: decodeWeapon(item.StyleSingleHanded),
	item.TagDoubleHandedWeapon: decodeWeapon(item.StyleDoubleHanded),
	item.TagPike:               decodeWeapon(item.StylePike),
	item.TagRangedWeapon:       decodeWeapon(item.StyleRanged),
	item.TagShield:             decodeShield,
	item.TagClothing:           decodeClothing,
	item.TagPotion:             decodePotion,
}

// RegisteredTags returns every decodable type tag, sorted
func RegisteredTags() []string {
	tags := make([]string, 0, len(registry))
	for tag := range registry {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// IsRegistered reports whether tag names a decodable variant
func IsRegistered(tag string) bool {
	_, ok := registry[tag]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// requireFields checks that the named struct fields of rec are present
func requireFields(tag string, rec *Record, fields ...string) error {
	err := validate.StructPartial(rec, fields...)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return rpgerr.WrapWithCodef(err, rpgerr.CodeMalformedRecord, "failed to validate %s record", tag)
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}
	return rpgerr.MalformedRecord(tag, missing)
}

func rarityOrDefault(rec *Record) item.Rarity {
	if rec.Rarity == nil {
		return item.RarityCommon
	}
	return item.Rarity(*rec.Rarity)
}

func decodeItem(rec *Record) (item.Entity, error) {
	if err := requireFields(item.TagItem, rec, "Name"); err != nil {
		return nil, err
	}
	e, err := item.NewItem(&item.ItemConfig{
		ID:          rec.ID,
		Name:        *rec.Name,
		Description: deref(rec.Description),
		Rarity:      rarityOrDefault(rec),
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func decodeWeapon(style item.WeaponStyle) constructor {
	return func(rec *Record) (item.Entity, error) {
		if err := requireFields(style.Tag(), rec, "Name", "Damage", "WeaponKind"); err != nil {
			return nil, err
		}
		e, err := item.NewWeapon(&item.WeaponConfig{
			ID:          rec.ID,
			Name:        *rec.Name,
			Description: deref(rec.Description),
			Rarity:      rarityOrDefault(rec),
			Damage:      *rec.Damage,
			Kind:        *rec.WeaponKind,
			Style:       style,
			Active:      deref(rec.Active),
		})
		if err != nil {
			return nil, err
		}
		return e, nil
	}
}

func decodeShield(rec *Record) (item.Entity, error) {
	if err := requireFields(item.TagShield, rec, "Name"); err != nil {
		return nil, err
	}
	e, err := item.NewShield(&item.ShieldConfig{
		ID:          rec.ID,
		Name:        *rec.Name,
		Description: deref(rec.Description),
		Rarity:      rarityOrDefault(rec),
		Defense:     deref(rec.Defense),
		Broken:      deref(rec.Broken),
		Active:      deref(rec.Active),
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func decodeClothing(rec *Record) (item.Entity, error) {
	if err := requireFields(item.TagClothing, rec, "Name"); err != nil {
		return nil, err
	}
	e, err := item.NewClothing(&item.ClothingConfig{
		ID:          rec.ID,
		Name:        *rec.Name,
		Description: deref(rec.Description),
		Rarity:      rarityOrDefault(rec),
		Armor:       deref(rec.Armor),
		Active:      deref(rec.Active),
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func decodePotion(rec *Record) (item.Entity, error) {
	if err := requireFields(item.TagPotion, rec, "Name", "PotionType", "Value", "EffectiveTime", "Rarity"); err != nil {
		return nil, err
	}
	e, err := item.NewPotion(&item.PotionConfig{
		ID:            rec.ID,
		Name:          *rec.Name,
		Description:   deref(rec.Description),
		Rarity:        item.Rarity(*rec.Rarity),
		PotionType:    *rec.PotionType,
		Value:         *rec.Value,
		EffectiveTime: *rec.EffectiveTime,
		Empty:         deref(rec.Empty),
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}
