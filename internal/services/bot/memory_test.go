package bot

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/pexeso/internal/dependencies/mocks"
	"github.com/mcoot/pexeso/internal/dependencies/random"
	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/testutil"
)

type MemorySuite struct {
	suite.Suite
	board  *model.Board
	random *mocks.MockRandom
	memory *Memory
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemorySuite))
}

func (s *MemorySuite) SetupTest() {
	board, err := model.BoardFromRows("ABAB", "CDCD", "EFEF", "GHGH")
	s.Require().NoError(err)
	s.board = board
	s.random = mocks.NewMockRandom()
	s.memory = NewMemory(board, s.random, testutil.NopLogger())
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// see shows the bot a card and turns it face down again, as after a miss
func (s *MemorySuite) see(positions ...model.Position) {
	for _, p := range positions {
		s.board.SetRevealed(p, true)
		s.memory.Observe(p)
		s.board.SetRevealed(p, false)
	}
}

// Observe tests

func (s *MemorySuite) TestObserveRecordsValue() {
	s.see(pos(0, 0), pos(1, 1), pos(0, 2))

	s.Equal([]Entry{
		{Value: 'A', Positions: []model.Position{pos(0, 0), pos(0, 2)}},
		{Value: 'D', Positions: []model.Position{pos(1, 1)}},
	}, s.memory.Snapshot())
}

func (s *MemorySuite) TestObserveIgnoresDuplicates() {
	s.see(pos(0, 0), pos(0, 0), pos(0, 0))

	s.Equal([]Entry{{Value: 'A', Positions: []model.Position{pos(0, 0)}}}, s.memory.Snapshot())
}

func (s *MemorySuite) TestObserveIgnoresFaceDownCards() {
	s.memory.Observe(pos(2, 2))
	s.memory.Observe(pos(7, 7))

	s.Empty(s.memory.Snapshot())
	s.False(s.memory.Knows(pos(2, 2)))
}

// ChoosePosition tests

func (s *MemorySuite) TestEmptyMemoryFallsBackToBlindGuess() {
	s.random.QueueIntn(5)

	d, err := s.memory.Decide()
	s.Require().NoError(err)

	s.Equal(RuleBlindGuess, d.Rule)
	s.Equal(pos(1, 1), d.Position)
	s.False(s.board.IsRevealed(d.Position))
	s.Equal([]int{16}, s.random.IntnCalls)
}

func (s *MemorySuite) TestKnownPairPicksFirstRemembered() {
	s.see(pos(0, 0), pos(0, 2))

	d, err := s.memory.Decide()
	s.Require().NoError(err)

	s.Equal(RuleKnownPair, d.Rule)
	s.Equal(pos(0, 0), d.Position)
	s.Empty(s.random.IntnCalls)
}

func (s *MemorySuite) TestKnownPairBeatsEarlierSingle() {
	s.see(pos(1, 0), pos(0, 3), pos(0, 1))

	got, err := s.memory.ChoosePosition()
	s.Require().NoError(err)

	// C was seen first but B is the only complete pair
	s.Equal(pos(0, 3), got)
}

func (s *MemorySuite) TestSecondPickCompletesKnownPair() {
	s.see(pos(1, 0), pos(0, 0), pos(0, 2))

	first, err := s.memory.ChoosePosition()
	s.Require().NoError(err)
	s.Require().Equal(pos(0, 0), first)
	s.board.SetRevealed(first, true)
	s.memory.Observe(first)

	d, err := s.memory.Decide(first)
	s.Require().NoError(err)

	s.Equal(RuleKnownPair, d.Rule)
	s.Equal(pos(0, 2), d.Position)
}

func (s *MemorySuite) TestKnownSingle() {
	s.see(pos(1, 0))

	d, err := s.memory.Decide()
	s.Require().NoError(err)

	s.Equal(RuleKnownSingle, d.Rule)
	s.Equal(pos(1, 0), d.Position)
}

func (s *MemorySuite) TestKnownSingleOnSecondPickGamblesOnAnotherValue() {
	s.see(pos(0, 0), pos(1, 0))

	first, err := s.memory.ChoosePosition()
	s.Require().NoError(err)
	s.Require().Equal(pos(0, 0), first)
	s.board.SetRevealed(first, true)
	s.memory.Observe(first)

	d, err := s.memory.Decide(first)
	s.Require().NoError(err)

	// Only C is remembered elsewhere, so the bot turns it over knowing it misses
	s.Equal(RuleKnownSingle, d.Rule)
	s.Equal(pos(1, 0), d.Position)
}

func (s *MemorySuite) TestBlindGuessSkipsExcludedAndRevealed() {
	for _, p := range s.board.Positions() {
		s.board.SetRevealed(p, true)
	}
	s.board.SetRevealed(pos(2, 1), false)
	s.board.SetRevealed(pos(3, 3), false)

	got, err := s.memory.ChoosePosition(pos(2, 1))
	s.Require().NoError(err)

	s.Equal(pos(3, 3), got)
	s.Equal([]int{1}, s.random.IntnCalls)
}

func (s *MemorySuite) TestNoMovesAvailable() {
	for _, p := range s.board.Positions() {
		s.board.SetRevealed(p, true)
	}
	s.board.SetRevealed(pos(0, 0), false)

	_, err := s.memory.ChoosePosition(pos(0, 0))
	s.ErrorIs(err, model.ErrNoMovesAvailable)
}

// Forget / PruneUnreachable tests

func (s *MemorySuite) TestForgetAfterMatchDropsPair() {
	s.see(pos(0, 0), pos(0, 2), pos(1, 0))
	s.board.SetRevealed(pos(0, 0), true)
	s.board.SetRevealed(pos(0, 2), true)

	s.memory.Forget(model.OutcomeMatch, pos(0, 0), pos(0, 2))

	s.Equal([]Entry{{Value: 'C', Positions: []model.Position{pos(1, 0)}}}, s.memory.Snapshot())
	s.False(s.memory.Knows(pos(0, 0)))
	s.False(s.memory.Knows(pos(0, 2)))
}

func (s *MemorySuite) TestForgetAfterMissKeepsKnowledge() {
	s.see(pos(0, 0), pos(0, 1))
	before := s.memory.Snapshot()

	s.memory.Forget(model.OutcomeNoMatch, pos(0, 0), pos(0, 1))

	s.Equal(before, s.memory.Snapshot())
}

func (s *MemorySuite) TestPruneDropsRevealedAndEmptyEntries() {
	s.see(pos(0, 0), pos(0, 2), pos(1, 1))
	s.board.SetRevealed(pos(1, 1), true)
	s.board.SetRevealed(pos(0, 2), true)

	s.memory.PruneUnreachable()

	s.Equal([]Entry{{Value: 'A', Positions: []model.Position{pos(0, 0)}}}, s.memory.Snapshot())
}

func (s *MemorySuite) TestPruneIsIdempotent() {
	s.see(pos(0, 0), pos(0, 2), pos(1, 1), pos(3, 3))
	s.board.SetRevealed(pos(3, 3), true)

	s.memory.PruneUnreachable()
	once := s.memory.Snapshot()
	s.memory.PruneUnreachable()

	s.Equal(once, s.memory.Snapshot())
}

func (s *MemorySuite) TestPruneKeepsOrder() {
	s.see(pos(3, 1), pos(2, 0), pos(1, 3), pos(3, 3))
	s.board.SetRevealed(pos(2, 0), true)

	s.memory.PruneUnreachable()

	s.Equal([]Entry{
		{Value: 'H', Positions: []model.Position{pos(3, 1), pos(3, 3)}},
		{Value: 'D', Positions: []model.Position{pos(1, 3)}},
	}, s.memory.Snapshot())
}

// Interleaved play: every bot pick is available and memory never holds a
// matched card. The opponent alternates random misses with perfect matches so
// the game is guaranteed to finish.

func (s *MemorySuite) resolve(memory *Memory, first, second model.Position) int {
	s.board.SetRevealed(first, true)
	memory.Observe(first)
	s.board.SetRevealed(second, true)
	memory.Observe(second)

	outcome := model.OutcomeNoMatch
	if s.board.ValueAt(first) == s.board.ValueAt(second) {
		outcome = model.OutcomeMatch
	} else {
		s.board.SetRevealed(first, false)
		s.board.SetRevealed(second, false)
	}
	memory.Forget(outcome, first, second)
	memory.PruneUnreachable()

	if outcome == model.OutcomeMatch {
		return 1
	}
	return 0
}

func (s *MemorySuite) TestInterleavedPlayKeepsInvariants() {
	memory := NewMemory(s.board, random.NewSeeded(3), testutil.NopLogger())
	opponent := random.NewSeeded(11)
	matched := 0

	for round := 0; round < 100 && matched < s.board.TotalPairs(); round++ {
		hidden := s.board.HiddenPositions()
		if round%2 == 0 {
			i := opponent.Intn(len(hidden))
			first := hidden[i]
			rest := append(append([]model.Position(nil), hidden[:i]...), hidden[i+1:]...)
			matched += s.resolve(memory, first, rest[opponent.Intn(len(rest))])
		} else {
			first := hidden[0]
			for _, p := range hidden[1:] {
				if s.board.ValueAt(p) == s.board.ValueAt(first) {
					matched += s.resolve(memory, first, p)
					break
				}
			}
		}
		if matched == s.board.TotalPairs() {
			break
		}

		first, err := memory.ChoosePosition()
		s.Require().NoError(err)
		s.Require().False(s.board.IsRevealed(first))
		s.board.SetRevealed(first, true)
		memory.Observe(first)

		second, err := memory.ChoosePosition(first)
		s.Require().NoError(err)
		s.Require().NotEqual(first, second)
		s.Require().False(s.board.IsRevealed(second))
		matched += s.resolve(memory, first, second)

		for _, e := range memory.Snapshot() {
			s.NotEmpty(e.Positions)
			for _, p := range e.Positions {
				s.False(s.board.IsRevealed(p), "memory kept matched card %s", p)
				s.Equal(e.Value, s.board.ValueAt(p))
			}
		}
	}

	s.Equal(s.board.TotalPairs(), matched)
}
