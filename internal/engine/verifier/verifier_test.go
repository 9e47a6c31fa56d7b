package verifier_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-legality/internal/engine/verifier"
	verifiermock "github.com/KirkDiggler/rpg-legality/internal/engine/verifier/mock"
	"github.com/KirkDiggler/rpg-legality/internal/entities"
	"github.com/KirkDiggler/rpg-legality/internal/entities/game"
	"github.com/KirkDiggler/rpg-legality/internal/errors"
	"github.com/KirkDiggler/rpg-legality/internal/pkg/experience"
	"github.com/KirkDiggler/rpg-legality/internal/testutils/builders"
)

const testSpecies = 1

type VerifierTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	growth   *verifiermock.MockGrowthSource
	verifier *verifier.Verifier
}

func TestVerifierTestSuite(t *testing.T) {
	suite.Run(t, new(VerifierTestSuite))
}

func (s *VerifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.growth = verifiermock.NewMockGrowthSource(s.ctrl)

	v, err := verifier.New(&verifier.Config{Growth: s.growth, ActiveTrainerGeneration: 2})
	s.Require().NoError(err)
	s.verifier = v
}

func (s *VerifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *VerifierTestSuite) expectGrowth(growth experience.GrowthRate) {
	s.growth.EXPECT().GrowthRate(testSpecies).Return(growth, true)
}

func (s *VerifierTestSuite) TestEgg() {
	eggEncounter := &entities.Encounter{Kind: entities.EncounterEgg, Species: testSpecies, LevelMin: 5, LevelMax: 5}
	threshold := experience.EXP(5, experience.MediumSlow)

	s.Run("level and experience match the origin", func() {
		s.expectGrowth(experience.MediumSlow)
		c := builders.NewCreatureBuilder().AsEgg().WithLevel(5).WithEXP(threshold).Build()

		verdict := s.verifier.VerifyLevel(c, eggEncounter)
		s.Equal(verifier.SeverityValid, verdict.Severity)
	})

	s.Run("experience off by one", func() {
		s.expectGrowth(experience.MediumSlow)
		c := builders.NewCreatureBuilder().AsEgg().WithLevel(5).WithEXP(threshold + 1).Build()

		verdict := s.verifier.VerifyLevel(c, eggEncounter)
		s.Equal(verifier.SeverityInvalid, verdict.Severity)
		s.Equal(verifier.CodeEggEXP, verdict.Code)
	})

	s.Run("level differs from the origin", func() {
		c := builders.NewCreatureBuilder().AsEgg().WithLevel(6).WithEXP(threshold).Build()

		verdict := s.verifier.VerifyLevel(c, eggEncounter)
		s.Equal(verifier.SeverityInvalid, verdict.Severity)
		s.Equal(verifier.CodeEggMetLevel, verdict.Code)
		s.Equal("Invalid Met Level, expected 5.", verdict.Comment)
	})

	s.Run("crystal static egg keeps a fixed experience", func() {
		crystalEgg := &entities.Encounter{Kind: entities.EncounterStatic, Species: testSpecies, Version: game.C, LevelMin: 5, LevelMax: 5}
		c := builders.NewCreatureBuilder().AsEgg().WithLevel(5).WithEXP(125).Build()

		s.True(s.verifier.VerifyLevel(c, crystalEgg).Valid())

		c.EXP = threshold
		s.Equal(verifier.CodeEggEXP, s.verifier.VerifyLevel(c, crystalEgg).Code)
	})

	s.Run("unknown growth rate", func() {
		s.growth.EXPECT().GrowthRate(testSpecies).Return(experience.GrowthRate(0), false)
		c := builders.NewCreatureBuilder().AsEgg().WithLevel(5).Build()

		verdict := s.verifier.VerifyLevel(c, eggEncounter)
		s.Equal(verifier.SeveritySuspicious, verdict.Severity)
		s.Equal(verifier.CodeGrowthUnknown, verdict.Code)
	})
}

func (s *VerifierTestSuite) TestMysteryGift() {
	gift := func(generation, level, metLevel int) *entities.Encounter {
		return &entities.Encounter{
			Kind:     entities.EncounterMysteryGift,
			Species:  testSpecies,
			LevelMin: level,
			LevelMax: level,
			Gift:     &entities.Gift{Generation: generation, Level: level, MetLevel: metLevel},
		}
	}

	s.Run("gift level matches met level", func() {
		s.expectGrowth(experience.MediumSlow)
		c := builders.NewCreatureBuilder().WithMet(20, 3000).WithLevel(25).Build()

		verdict := s.verifier.VerifyLevel(c, gift(4, 20, 20))
		s.Equal(verifier.SeverityValid, verdict.Severity)
		s.Equal(verifier.CodeLevelMetSane, verdict.Code)
	})

	s.Run("gift level above current level", func() {
		c := builders.NewCreatureBuilder().WithMet(20, 3000).WithLevel(15).Build()

		verdict := s.verifier.VerifyLevel(c, gift(4, 20, 20))
		s.Equal(verifier.SeverityInvalid, verdict.Severity)
		s.Equal(verifier.CodeLevelMetGiftFail, verdict.Code)
	})

	s.Run("gift level differs from met level", func() {
		c := builders.NewCreatureBuilder().WithOrigin(game.B, 5).WithMet(10, 3000).WithLevel(25).Build()

		verdict := s.verifier.VerifyLevel(c, gift(5, 20, 20))
		s.Equal(verifier.SeverityInvalid, verdict.Severity)
		s.Equal(verifier.CodeLevelMetGift, verdict.Code)
	})

	s.Run("generation 3 gifts match their own met level", func() {
		s.expectGrowth(experience.MediumSlow)
		c := builders.NewCreatureBuilder().WithMet(5, 255).WithLevel(25).Build()
		enc := gift(3, 20, 5)
		enc.LevelMin = 5

		s.True(s.verifier.VerifyLevel(c, enc).Valid())
	})

	s.Run("generation 3 egg gifts", func() {
		s.expectGrowth(experience.MediumSlow)
		c := builders.NewCreatureBuilder().WithMet(0, 255).WithLevel(25).Build()
		enc := gift(3, 5, 70)
		enc.Gift.IsEgg = true
		enc.LevelMin = 0

		s.True(s.verifier.VerifyLevel(c, enc).Valid())
	})

	s.Run("generation 7 gifts match their own met level", func() {
		s.expectGrowth(experience.MediumSlow)
		c := builders.NewCreatureBuilder().WithOrigin(game.SN, 7).WithMet(1, 30001).WithLevel(25).Build()
		enc := gift(7, 20, 1)
		enc.LevelMin = 1

		s.True(s.verifier.VerifyLevel(c, enc).Valid())
	})

	s.Run("manaphy egg gift hatched at met level 0", func() {
		c := builders.NewCreatureBuilder().WithSpecies(game.Manaphy, 0).WithOrigin(game.D, 4).WithMet(0, 2000).WithLevel(1).Build()
		enc := gift(4, 1, 0)
		enc.Species = game.Manaphy
		enc.Gift.IsManaphyEgg = true
		enc.LevelMin = 0

		s.True(s.verifier.VerifyLevel(c, enc).Valid())
	})

	s.Run("transferred records skip the met level comparison", func() {
		c := builders.NewCreatureBuilder().WithOrigin(game.E, 5).WithMet(70, 30001).WithLevel(70).Build()

		s.True(s.verifier.VerifyLevel(c, gift(3, 20, 20)).Valid())
	})
}

func (s *VerifierTestSuite) TestMetLevel() {
	wild := &entities.Encounter{Kind: entities.EncounterWild, Species: testSpecies, LevelMin: 2, LevelMax: 5}

	s.Run("current level below met level", func() {
		c := builders.NewCreatureBuilder().WithMet(5, 16).WithLevel(4).Build()

		verdict := s.verifier.VerifyLevel(c, wild)
		s.Equal(verifier.SeverityInvalid, verdict.Severity)
		s.Equal(verifier.CodeLevelMetBelow, verdict.Code)
	})

	s.Run("still at the met level", func() {
		c := builders.NewCreatureBuilder().WithMet(4, 16).WithLevel(4).WithEXP(experience.EXP(4, experience.Fast)).Build()

		verdict := s.verifier.VerifyLevel(c, wild)
		s.Equal(verifier.SeverityValid, verdict.Severity)
		s.Equal(verifier.CodeLevelMetSane, verdict.Code)
	})

	s.Run("leveled past a matched encounter with threshold experience", func() {
		s.expectGrowth(experience.Fast)
		c := builders.NewCreatureBuilder().WithMet(4, 16).WithLevel(30).WithEXP(experience.EXP(30, experience.Fast)).Build()

		verdict := s.verifier.VerifyLevel(c, wild)
		s.Equal(verifier.SeveritySuspicious, verdict.Severity)
		s.Equal(verifier.CodeLevelEXPThreshold, verdict.Code)
	})

	s.Run("transferred record checked against the minimum only", func() {
		c := builders.NewCreatureBuilder().WithOrigin(game.E, 5).WithMet(70, 30001).WithLevel(30).WithEXP(experience.EXP(30, experience.Fast)).Build()

		s.True(s.verifier.VerifyLevel(c, wild).Valid())
	})

	s.Run("outside the range with threshold experience", func() {
		s.expectGrowth(experience.Fast)
		c := builders.NewCreatureBuilder().WithMet(10, 16).WithLevel(30).WithEXP(experience.EXP(30, experience.Fast)).Build()

		verdict := s.verifier.VerifyLevel(c, wild)
		s.Equal(verifier.SeveritySuspicious, verdict.Severity)
		s.Equal(verifier.CodeLevelEXPThreshold, verdict.Code)
	})

	s.Run("outside the range with ordinary experience", func() {
		s.expectGrowth(experience.Fast)
		c := builders.NewCreatureBuilder().WithMet(10, 16).WithLevel(30).WithEXP(experience.EXP(30, experience.Fast) + 7).Build()

		s.True(s.verifier.VerifyLevel(c, wild).Valid())
	})

	s.Run("level 100 is never suspicious", func() {
		c := builders.NewCreatureBuilder().WithMet(10, 16).WithLevel(100).WithEXP(experience.EXP(100, experience.Fast)).Build()

		s.True(s.verifier.VerifyLevel(c, wild).Valid())
	})
}

func (s *VerifierTestSuite) TestMalformed() {
	wild := &entities.Encounter{Kind: entities.EncounterWild, Species: testSpecies, LevelMin: 2, LevelMax: 5}

	testCases := []struct {
		name      string
		creature  *entities.Creature
		encounter *entities.Encounter
	}{
		{name: "missing creature", creature: nil, encounter: wild},
		{name: "missing encounter", creature: builders.NewCreatureBuilder().Build(), encounter: nil},
		{name: "negative level", creature: builders.NewCreatureBuilder().WithLevel(-3).Build(), encounter: wild},
		{name: "level above 100", creature: builders.NewCreatureBuilder().WithLevel(101).Build(), encounter: wild},
		{name: "species zero", creature: builders.NewCreatureBuilder().WithSpecies(0, 0).Build(), encounter: wild},
		{name: "unknown release", creature: builders.NewCreatureBuilder().WithOrigin(game.Any, 3).Build(), encounter: wild},
		{
			name:      "gift encounter without gift",
			creature:  builders.NewCreatureBuilder().Build(),
			encounter: &entities.Encounter{Kind: entities.EncounterMysteryGift, LevelMin: 5, LevelMax: 5},
		},
		{
			name:      "unknown encounter kind",
			creature:  builders.NewCreatureBuilder().Build(),
			encounter: &entities.Encounter{Kind: "fishing", LevelMin: 5, LevelMax: 5},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			verdict := s.verifier.VerifyLevel(tc.creature, tc.encounter)
			s.Equal(verifier.SeverityInvalid, verdict.Severity)
			s.Equal(verifier.CodeMalformedRecord, verdict.Code)
			s.NotEmpty(verdict.Comment)
		})
	}
}

func (s *VerifierTestSuite) TestGeneration1() {
	wildKadabra := &entities.Encounter{Kind: entities.EncounterWild, Species: game.Kadabra, LevelMin: 15, LevelMax: 20}
	kadabra := func() *builders.CreatureBuilder {
		return builders.NewCreatureBuilder().
			WithSpecies(game.Kadabra, 0).
			WithOrigin(game.RD, 1).
			WithMet(0, 0).
			WithLevel(30)
	}

	s.Run("egg must be level 5", func() {
		egg := &entities.Encounter{Kind: entities.EncounterEgg, Species: testSpecies, LevelMin: 5, LevelMax: 5}
		c := builders.NewCreatureBuilder().WithOrigin(game.C, 2).AsEgg().WithMet(0, 0).WithLevel(5).Build()
		s.True(s.verifier.VerifyLevel(c, egg).Valid())

		c.CurrentLevel = 6
		s.Equal(verifier.CodeEggMetLevel, s.verifier.VerifyLevel(c, egg).Code)
	})

	s.Run("crystal met data is checked", func() {
		c := builders.NewCreatureBuilder().WithOrigin(game.C, 2).WithMet(20, 10).WithLevel(15).Build()
		s.Equal(verifier.CodeLevelMetBelow, s.verifier.VerifyLevel(c, &entities.Encounter{Kind: entities.EncounterWild, Species: testSpecies}).Code)
	})

	s.Run("records without met data skip the met check", func() {
		c := builders.NewCreatureBuilder().WithOrigin(game.RD, 1).WithMet(20, 0).WithLevel(15).Build()
		s.True(s.verifier.VerifyLevel(c, &entities.Encounter{Kind: entities.EncounterWild, Species: testSpecies}).Valid())
	})

	s.Run("outsider trade evolution species must be evolved", func() {
		verdict := s.verifier.VerifyLevel(kadabra().FromOtherTrainer().Build(), wildKadabra)
		s.Equal(verifier.SeverityInvalid, verdict.Severity)
		s.Equal(verifier.CodeEvoTradeRequired, verdict.Code)
		s.Equal("Outsider Kadabra should be evolved into Alakazam.", verdict.Comment)
	})

	s.Run("own trade evolution species", func() {
		s.True(s.verifier.VerifyLevel(kadabra().Build(), wildKadabra).Valid())
	})

	s.Run("tradeback records must be evolved", func() {
		c := kadabra().WithOrigin(game.RD, 2).WithTradeback(entities.TradebackWasTradeback).Build()
		s.Equal(verifier.CodeEvoTradeRequired, s.verifier.VerifyLevel(c, wildKadabra).Code)
	})

	s.Run("traded kadabra in a generation 2 save", func() {
		c := kadabra().WithOrigin(game.YW, 2).FromOtherTrainer().Build()
		s.Equal(verifier.CodeEvoTradeRequired, s.verifier.VerifyLevel(c, wildKadabra).Code)
	})

	s.Run("in-game trades are exempt", func() {
		trade := &entities.Encounter{Kind: entities.EncounterTrade, Species: game.Kadabra, LevelMin: 15, LevelMax: 20}
		s.True(s.verifier.VerifyLevel(kadabra().FromOtherTrainer().Build(), trade).Valid())
	})

	s.Run("encounters of another species are exempt", func() {
		abra := &entities.Encounter{Kind: entities.EncounterWild, Species: 63, LevelMin: 15, LevelMax: 20}
		s.True(s.verifier.VerifyLevel(kadabra().FromOtherTrainer().Build(), abra).Valid())
	})
}

func (s *VerifierTestSuite) TestGeneration1TradeContextOptions() {
	wildHaunter := &entities.Encounter{Kind: entities.EncounterWild, Species: game.Haunter, LevelMin: 15, LevelMax: 20}
	haunter := builders.NewCreatureBuilder().
		WithSpecies(game.Haunter, 0).
		WithOrigin(game.BU, 1).
		WithMet(0, 0).
		WithLevel(30).
		FromOtherTrainer().
		Build()

	testCases := []struct {
		name   string
		config *verifier.Config
		valid  bool
	}{
		{name: "generation 2 save", config: &verifier.Config{Growth: s.growth, ActiveTrainerGeneration: 2}, valid: false},
		{name: "generation 3 save", config: &verifier.Config{Growth: s.growth, ActiveTrainerGeneration: 3}, valid: true},
		{name: "GB cart era allowed", config: &verifier.Config{Growth: s.growth, ActiveTrainerGeneration: 1, AllowGBCartEra: true}, valid: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			v, err := verifier.New(tc.config)
			s.Require().NoError(err)

			verdict := v.VerifyLevel(haunter, wildHaunter)
			s.Equal(tc.valid, verdict.Valid(), verdict.Comment)
			if !tc.valid {
				s.Equal("Outsider Haunter should be evolved into Gengar.", verdict.Comment)
			}
		})
	}
}

func (s *VerifierTestSuite) TestNew() {
	s.Run("nil config", func() {
		_, err := verifier.New(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("growth source required", func() {
		_, err := verifier.New(&verifier.Config{})
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Growth: is required")
	})

	s.Run("trainer generation out of range", func() {
		_, err := verifier.New(&verifier.Config{Growth: s.growth, ActiveTrainerGeneration: 9})
		s.True(errors.IsInvalidArgument(err))
	})
}
