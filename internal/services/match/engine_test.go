package match

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/testutil"
)

type EngineSuite struct {
	suite.Suite
	engine *Engine
	game   *model.Game
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	board, err := model.BoardFromRows("ABAB", "CDCD", "EFEF", "GHGH")
	s.Require().NoError(err)
	s.engine = New(testutil.NopLogger())
	s.game = model.NewGame("GAME1", board, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// RevealPick tests

func (s *EngineSuite) TestRevealPickSucceeds() {
	err := s.engine.RevealPick(s.game, pos(1, 2))
	s.Require().NoError(err)
	s.True(s.game.Board.IsRevealed(pos(1, 2)))
}

func (s *EngineSuite) TestRevealPickOutOfBounds() {
	err := s.engine.RevealPick(s.game, pos(4, 0))
	s.ErrorIs(err, model.ErrInvalidMove)
	s.ErrorIs(err, model.ErrOutOfBounds)

	err = s.engine.RevealPick(s.game, pos(0, -1))
	s.ErrorIs(err, model.ErrInvalidMove)
	s.Equal(0, s.game.Board.RevealedCount())
}

func (s *EngineSuite) TestRevealPickAlreadyRevealed() {
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 0)))

	err := s.engine.RevealPick(s.game, pos(0, 0))
	s.ErrorIs(err, model.ErrInvalidMove)
	s.ErrorIs(err, model.ErrAlreadyRevealed)
}

// EvaluatePair tests

func (s *EngineSuite) TestEvaluatePairMatch() {
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 0)))
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 2)))

	s.Equal(model.OutcomeMatch, s.engine.EvaluatePair(s.game, pos(0, 0), pos(0, 2)))
}

func (s *EngineSuite) TestEvaluatePairNoMatch() {
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 0)))
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 1)))

	s.Equal(model.OutcomeNoMatch, s.engine.EvaluatePair(s.game, pos(0, 0), pos(0, 1)))
}

func (s *EngineSuite) TestEvaluatePairDoesNotMutate() {
	s.engine.EvaluatePair(s.game, pos(2, 0), pos(2, 2))
	s.Equal(0, s.game.Board.RevealedCount())
	s.Equal(model.Score{}, s.game.Score)
}

// ResolveTurn tests

func (s *EngineSuite) TestResolveMatchKeepsCardsAndScores() {
	s.Require().NoError(s.engine.RevealPick(s.game, pos(1, 1)))
	s.Require().NoError(s.engine.RevealPick(s.game, pos(1, 3)))

	result := s.engine.ResolveTurn(s.game, model.ActorBot, pos(1, 1), pos(1, 3), model.OutcomeMatch)

	s.True(s.game.Board.IsRevealed(pos(1, 1)))
	s.True(s.game.Board.IsRevealed(pos(1, 3)))
	s.Equal(model.Score{Bot: 1}, s.game.Score)
	s.Equal(1, result.Number)
	s.Equal(model.CardValue('D'), result.FirstValue)
	s.Equal(model.CardValue('D'), result.SecondValue)
	s.Equal(model.Score{Bot: 1}, result.Score)
}

func (s *EngineSuite) TestResolveNoMatchHidesCards() {
	s.Require().NoError(s.engine.RevealPick(s.game, pos(3, 0)))
	s.Require().NoError(s.engine.RevealPick(s.game, pos(3, 1)))

	result := s.engine.ResolveTurn(s.game, model.ActorHuman, pos(3, 0), pos(3, 1), model.OutcomeNoMatch)

	s.False(s.game.Board.IsRevealed(pos(3, 0)))
	s.False(s.game.Board.IsRevealed(pos(3, 1)))
	s.Equal(model.Score{}, s.game.Score)
	s.Equal(model.OutcomeNoMatch, result.Outcome)
	s.Equal(model.CardValue('G'), result.FirstValue)
	s.Equal(model.CardValue('H'), result.SecondValue)
}

func (s *EngineSuite) TestMatchedCardsStayRevealedAfterLaterMisses() {
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 0)))
	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 2)))
	s.engine.ResolveTurn(s.game, model.ActorHuman, pos(0, 0), pos(0, 2), model.OutcomeMatch)

	s.Require().NoError(s.engine.RevealPick(s.game, pos(0, 1)))
	s.Require().NoError(s.engine.RevealPick(s.game, pos(1, 0)))
	s.engine.ResolveTurn(s.game, model.ActorHuman, pos(0, 1), pos(1, 0), model.OutcomeNoMatch)

	s.True(s.game.Board.IsRevealed(pos(0, 0)))
	s.True(s.game.Board.IsRevealed(pos(0, 2)))
	s.ErrorIs(s.engine.RevealPick(s.game, pos(0, 0)), model.ErrAlreadyRevealed)
}

// IsComplete tests

func (s *EngineSuite) TestScoreInvariantAndCompletion() {
	matches := 0
	for row := 0; row < 4; row++ {
		for col := 0; col < 2; col++ {
			s.False(s.engine.IsComplete(s.game))
			a, b := pos(row, col), pos(row, col+2)
			s.Require().NoError(s.engine.RevealPick(s.game, a))
			s.Require().NoError(s.engine.RevealPick(s.game, b))
			outcome := s.engine.EvaluatePair(s.game, a, b)
			s.Require().Equal(model.OutcomeMatch, outcome)

			actor := model.ActorHuman
			if col == 1 {
				actor = model.ActorBot
			}
			s.engine.ResolveTurn(s.game, actor, a, b, outcome)
			matches++

			s.Equal(matches, s.game.Score.Total())
			s.LessOrEqual(s.game.Score.Total(), s.game.TotalPairs())
		}
	}

	s.True(s.engine.IsComplete(s.game))
	s.Equal(model.Score{Human: 4, Bot: 4}, s.game.Score)
	s.ErrorIs(s.engine.RevealPick(s.game, pos(0, 0)), model.ErrGameComplete)
}
