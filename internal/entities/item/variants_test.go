package item_test

import (
	"github.com/KirkDiggler/rpg-inventory/internal/entities/item"
)

func (s *ItemTestSuite) TestWeaponUse() {
	w := s.mustWeapon(item.StyleSingleHanded, item.RarityLegendary, 300)

	// unowned and unequipped
	s.Assert().Equal("", w.Use())

	w.PickUp("Link")
	// owned but not equipped
	s.Assert().Equal("", w.Use())

	s.Assert().Equal("Blade is equipped.", w.Equip())
	s.Assert().True(w.IsActive())
	s.Assert().Equal("Link slashes with Blade Blade is used, dealing 345.0 damage", w.Use())

	power, err := w.AttackPower()
	s.Require().NoError(err)
	s.Assert().InDelta(345.0, power, 1e-9)

	// equip has no inverse; discarding only clears the owner
	w.ThrowAway()
	s.Assert().True(w.IsActive())
	s.Assert().Equal("", w.Use())
}

func (s *ItemTestSuite) TestWeaponAttackMoves() {
	testCases := []struct {
		style item.WeaponStyle
		tag   string
		move  string
	}{
		{item.StyleSingleHanded, item.TagSingleHandedWeapon, "Beleg slashes with Blade"},
		{item.StyleDoubleHanded, item.TagDoubleHandedWeapon, "Beleg spins Blade powerfully"},
		{item.StylePike, item.TagPike, "Beleg thrusts forward with Blade"},
		{item.StyleRanged, item.TagRangedWeapon, "Beleg shoots an arrow from Blade"},
	}

	for _, tc := range testCases {
		s.Run(tc.tag, func() {
			w := s.mustWeapon(tc.style, item.RarityCommon, 12)
			w.PickUp("Beleg")
			w.Equip()

			s.Assert().Equal(tc.tag, w.GetType())
			s.Assert().Equal(tc.move, w.AttackMove())
			s.Assert().Equal(tc.move+" Blade is used, dealing 12.0 damage", w.Use())

			style, ok := item.StyleForTag(tc.tag)
			s.Assert().True(ok)
			s.Assert().Equal(tc.style, style)
		})
	}

	_, ok := item.StyleForTag(item.TagWeapon)
	s.Assert().False(ok)
}

func (s *ItemTestSuite) TestWeaponRarityMultipliers() {
	testCases := []struct {
		rarity   item.Rarity
		expected float64
	}{
		{item.RarityCommon, 100},
		{item.RarityUncommon, 100},
		{item.RarityEpic, 100},
		{item.RarityLegendary, 115},
	}

	for _, tc := range testCases {
		s.Run(tc.rarity.String(), func() {
			w := s.mustWeapon(item.StyleRanged, tc.rarity, 100)
			power, err := w.AttackPower()
			s.Require().NoError(err)
			s.Assert().InDelta(tc.expected, power, 1e-9)
		})
	}
}

func (s *ItemTestSuite) TestShieldUse() {
	sh := s.mustShield(item.RarityCommon, 10, true)
	s.Assert().Equal("", sh.Use())

	sh.PickUp("Beleg")
	s.Assert().Equal("", sh.Use())

	sh.Equip()
	s.Assert().Equal("Round Shield is used, blocking 5.0 damage", sh.Use())

	power, err := sh.DefensePower()
	s.Require().NoError(err)
	s.Assert().InDelta(5.0, power, 1e-9)

	sh.ThrowAway()
	s.Assert().Equal("", sh.Use())
}

func (s *ItemTestSuite) TestShieldDefensePower() {
	testCases := []struct {
		name     string
		rarity   item.Rarity
		broken   bool
		expected float64
	}{
		{"common intact", item.RarityCommon, false, 20},
		{"common broken", item.RarityCommon, true, 10},
		{"legendary intact", item.RarityLegendary, false, 22},
		{"legendary broken", item.RarityLegendary, true, 11},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			sh := s.mustShield(tc.rarity, 20, tc.broken)
			power, err := sh.DefensePower()
			s.Require().NoError(err)
			s.Assert().InDelta(tc.expected, power, 1e-9)
		})
	}
}

func (s *ItemTestSuite) TestClothingUse() {
	c := s.mustClothing(item.RarityUncommon, 10)

	// clothing differs from weapons: unowned reports thrown away
	s.Assert().Equal(item.ThrownAwayMessage, c.Use())

	s.Assert().Equal("Leather Jacket is now owned by Beleg", c.PickUp("Beleg"))
	s.Assert().Equal("", c.Use())

	c.Equip()
	s.Assert().Equal("Leather Jacket is used, providing 10 armor", c.Use())

	s.Assert().Equal("Leather Jacket has been thrown away", c.ThrowAway())
	s.Assert().Equal(item.ThrownAwayMessage, c.Use())
}

func (s *ItemTestSuite) TestClothingDescribe() {
	c := s.mustClothing(item.RarityUncommon, 10)
	s.Assert().Equal("Clothes: Leather Jacket, Armor: 10, Rarity: uncommon", c.Describe())

	legendary := s.mustClothing(item.RarityLegendary, 40)
	s.Assert().Contains(legendary.Describe(), "[LEGENDARY ITEM]")
}

func (s *ItemTestSuite) TestPotionTimedUse() {
	p, err := item.FromAbility("potion_1", "Atk Potion Temp", "Beleg", "attack")
	s.Require().NoError(err)

	s.Assert().Equal("Beleg", p.Owner())
	s.Assert().Equal(item.RarityCommon, p.GetRarity())
	s.Assert().Equal(item.AbilityPotionValue, p.Value)
	s.Assert().Equal(item.AbilityPotionEffectiveTime, p.EffectiveTime)

	s.Assert().Equal(
		"Beleg used Atk Potion Temp, and attack increased by 50 for 30s\nAttack potion has been consumed",
		p.Use(),
	)
	s.Assert().True(p.IsEmpty())

	// every later use is a no-op
	s.Assert().Equal("", p.Use())
	s.Assert().Equal("", p.Use())
}

func (s *ItemTestSuite) TestPotionInstantUse() {
	p := s.mustPotion(0)
	p.PickUp("Beleg")

	s.Assert().Equal("Beleg consumed Healing Potion\nHealing potion has been consumed", p.Use())
	s.Assert().Equal("", p.Use())
}

func (s *ItemTestSuite) TestPotionThrownAwayWinsOverEmpty() {
	p := s.mustPotion(0)
	s.Assert().Equal(item.ThrownAwayMessage, p.Use())
	s.Assert().False(p.IsEmpty())

	p.PickUp("Beleg")
	p.Use()
	p.ThrowAway()

	s.Assert().True(p.IsEmpty())
	s.Assert().Equal(item.ThrownAwayMessage, p.Use())
	s.Assert().Equal(item.ThrownAwayMessage, p.Use())
}

func (s *ItemTestSuite) TestPotionTypeCapitalized() {
	testCases := []struct {
		potionType string
		want       string
	}{
		{"FIRE resistance", "Fire resistance"},
		{"attack-boost", "Attack-boost"},
		{"mana\tREGEN", "Mana\tregen"},
		{"élan", "Élan"},
	}

	for _, tc := range testCases {
		s.Run(tc.potionType, func() {
			p, err := item.NewPotion(&item.PotionConfig{
				Name:       "Draught",
				PotionType: tc.potionType,
			})
			s.Require().NoError(err)
			p.PickUp("Beleg")

			s.Assert().Equal("Beleg consumed Draught\n"+tc.want+" potion has been consumed", p.Use())
		})
	}
}
