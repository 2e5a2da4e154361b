package item_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
	"github.com/KirkDiggler/rpg-inventory/internal/errors"
)

type ItemTestSuite struct {
	suite.Suite
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(ItemTestSuite))
}

func (s *ItemTestSuite) TestConstructedUnowned() {
	entities := []item.Entity{
		s.mustItem(item.RarityCommon),
		s.mustWeapon(item.StyleSingleHanded, item.RarityCommon, 10),
		s.mustShield(item.RarityCommon, 10, false),
		s.mustClothing(item.RarityUncommon, 10),
		s.mustPotion(30),
	}

	for _, e := range entities {
		s.Run(e.GetType(), func() {
			s.Assert().False(e.IsOwned())
			s.Assert().Equal("", e.Owner())
		})
	}
}

func (s *ItemTestSuite) TestPickUpAndThrowAway() {
	it := s.mustItem(item.RarityCommon)

	s.Assert().Equal("Torch is now owned by Beleg", it.PickUp("Beleg"))
	s.Assert().Equal("Beleg", it.Owner())

	// picking up again silently replaces the owner
	it.PickUp("Turin")
	s.Assert().Equal("Turin", it.Owner())

	s.Assert().Equal("Torch has been thrown away", it.ThrowAway())
	s.Assert().False(it.IsOwned())

	// throwing away an unowned item is fine
	it.ThrowAway()
	s.Assert().False(it.IsOwned())
}

func (s *ItemTestSuite) TestPlainItemUse() {
	it := s.mustItem(item.RarityCommon)
	s.Assert().Equal("", it.Use())

	it.PickUp("Beleg")
	s.Assert().Equal("Torch is used", it.Use())
}

func (s *ItemTestSuite) TestDescribe() {
	common := s.mustItem(item.RarityCommon)
	s.Assert().Equal("Torch - Lights the way (Rarity: common)", common.Describe())

	legendary := s.mustItem(item.RarityLegendary)
	desc := legendary.Describe()
	s.Assert().Contains(desc, "[LEGENDARY ITEM]")
	s.Assert().Contains(desc, "Torch - Lights the way")
	s.Assert().Contains(desc, "(Rarity: legendary)")
	s.Assert().Contains(desc, `"Shines with a divine glow!"`)
}

func (s *ItemTestSuite) TestConstructionValidation() {
	testCases := []struct {
		name  string
		build func() error
		check func(error) bool
	}{
		{
			name: "unknown rarity",
			build: func() error {
				_, err := item.NewItem(&item.ItemConfig{Name: "Torch", Rarity: "mythic"})
				return err
			},
			check: errors.IsUnknownRarity,
		},
		{
			name: "missing name",
			build: func() error {
				_, err := item.NewShield(&item.ShieldConfig{Defense: 3})
				return err
			},
			check: errors.IsInvalidArgument,
		},
		{
			name: "unknown weapon style",
			build: func() error {
				_, err := item.NewWeapon(&item.WeaponConfig{Name: "Stick", Style: "thrown"})
				return err
			},
			check: errors.IsInvalidArgument,
		},
		{
			name: "base weapon without style",
			build: func() error {
				_, err := item.NewWeapon(&item.WeaponConfig{Name: "Stick"})
				return err
			},
			check: errors.IsInvalidArgument,
		},
		{
			name: "negative potion duration",
			build: func() error {
				_, err := item.NewPotion(&item.PotionConfig{Name: "Tonic", EffectiveTime: -1})
				return err
			},
			check: errors.IsInvalidArgument,
		},
		{
			name: "nil config",
			build: func() error {
				_, err := item.NewClothing(nil)
				return err
			},
			check: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.build()
			s.Require().Error(err)
			s.Assert().True(tc.check(err), "unexpected error: %v", err)
		})
	}
}

func (s *ItemTestSuite) TestEmptyRarityDefaultsToCommon() {
	it, err := item.NewItem(&item.ItemConfig{Name: "Rope"})
	s.Require().NoError(err)
	s.Assert().Equal(item.RarityCommon, it.GetRarity())
}

func (s *ItemTestSuite) TestIsKind() {
	sword := s.mustWeapon(item.StyleSingleHanded, item.RarityCommon, 10)
	bow := s.mustWeapon(item.StyleRanged, item.RarityCommon, 10)
	shield := s.mustShield(item.RarityCommon, 10, false)

	s.Assert().True(item.IsKind(sword, item.TagWeapon))
	s.Assert().True(item.IsKind(bow, item.TagWeapon))
	s.Assert().False(item.IsKind(shield, item.TagWeapon))

	s.Assert().True(item.IsKind(bow, item.TagRangedWeapon))
	s.Assert().False(item.IsKind(sword, item.TagRangedWeapon))

	s.Assert().True(item.IsKind(shield, item.TagItem))
	s.Assert().True(item.IsKind(shield, item.TagShield))
}

func (s *ItemTestSuite) TestParseRarity() {
	for _, r := range item.AllRarities() {
		parsed, err := item.ParseRarity(r.String())
		s.Require().NoError(err)
		s.Assert().Equal(r, parsed)
	}

	_, err := item.ParseRarity("Legendary")
	s.Assert().True(errors.IsUnknownRarity(err))
}

// Helper methods

func (s *ItemTestSuite) mustItem(rarity item.Rarity) *item.Item {
	it, err := item.NewItem(&item.ItemConfig{
		ID:          "item_torch",
		Name:        "Torch",
		Description: "Lights the way",
		Rarity:      rarity,
	})
	s.Require().NoError(err)
	return it
}

func (s *ItemTestSuite) mustWeapon(style item.WeaponStyle, rarity item.Rarity, damage float64) *item.Weapon {
	w, err := item.NewWeapon(&item.WeaponConfig{
		Name:   "Blade",
		Rarity: rarity,
		Damage: damage,
		Kind:   "sword",
		Style:  style,
	})
	s.Require().NoError(err)
	return w
}

func (s *ItemTestSuite) mustShield(rarity item.Rarity, defense float64, broken bool) *item.Shield {
	sh, err := item.NewShield(&item.ShieldConfig{
		Name:    "Round Shield",
		Rarity:  rarity,
		Defense: defense,
		Broken:  broken,
	})
	s.Require().NoError(err)
	return sh
}

func (s *ItemTestSuite) mustClothing(rarity item.Rarity, armor float64) *item.Clothing {
	c, err := item.NewClothing(&item.ClothingConfig{
		Name:        "Leather Jacket",
		Description: "A stylish and protective jacket",
		Rarity:      rarity,
		Armor:       armor,
	})
	s.Require().NoError(err)
	return c
}

func (s *ItemTestSuite) mustPotion(effectiveTime float64) *item.Potion {
	p, err := item.NewPotion(&item.PotionConfig{
		Name:          "Healing Potion",
		Rarity:        item.RarityUncommon,
		PotionType:    "healing",
		Value:         50,
		EffectiveTime: effectiveTime,
	})
	s.Require().NoError(err)
	return p
}
