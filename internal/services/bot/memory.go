package bot

import (
	"log/slog"

	"github.com/mcoot/pexeso/internal/dependencies/random"
	"github.com/mcoot/pexeso/internal/model"
)

// Entry is what the bot remembers about one card value
type Entry struct {
	Value     model.CardValue
	Positions []model.Position // In order of first sighting
}

// Memory is the bot's partial knowledge of the board.
//
// Entries are kept in order of the first sighting of each value, and the
// positions inside an entry in order of sighting. Move selection walks them in
// that order, which makes the bot's choices reproducible.
type Memory struct {
	board   *model.Board
	random  random.Random
	logger  *slog.Logger
	entries []Entry
}

// NewMemory creates an empty memory watching the given board
func NewMemory(board *model.Board, rnd random.Random, logger *slog.Logger) *Memory {
	return &Memory{
		board:  board,
		random: rnd,
		logger: logger.With(slog.String("component", "bot-memory")),
	}
}

// Ensure Memory implements Strategy
var _ Strategy = (*Memory)(nil)

// Observe records the value of a face-up card. Face-down or off-board
// positions are ignored: the bot only learns what is shown on the table.
func (m *Memory) Observe(pos model.Position) {
	if !m.board.InBounds(pos) || !m.board.IsRevealed(pos) {
		m.logger.Debug("ignoring observation of face-down card", slog.String("position", pos.String()))
		return
	}

	value := m.board.ValueAt(pos)
	for i := range m.entries {
		if m.entries[i].Value != value {
			continue
		}
		for _, known := range m.entries[i].Positions {
			if known == pos {
				return
			}
		}
		m.entries[i].Positions = append(m.entries[i].Positions, pos)
		return
	}
	m.entries = append(m.entries, Entry{Value: value, Positions: []model.Position{pos}})
}

// Forget drops the positions of a matched pair. A miss leaves memory alone:
// the cards went back face down and are still worth remembering.
func (m *Memory) Forget(outcome model.Outcome, a, b model.Position) {
	if outcome != model.OutcomeMatch {
		return
	}

	fresh := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		kept := make([]model.Position, 0, len(e.Positions))
		for _, p := range e.Positions {
			if p != a && p != b {
				kept = append(kept, p)
			}
		}
		fresh = append(fresh, Entry{Value: e.Value, Positions: kept})
	}
	m.entries = fresh
	m.PruneUnreachable()
}

// PruneUnreachable rebuilds memory keeping only face-down positions and
// dropping values with nothing left to pick
func (m *Memory) PruneUnreachable() {
	fresh := make([]Entry, 0, len(m.entries))
	for _, e := range m.entries {
		var kept []model.Position
		for _, p := range e.Positions {
			if !m.board.IsRevealed(p) {
				kept = append(kept, p)
			}
		}
		if len(kept) > 0 {
			fresh = append(fresh, Entry{Value: e.Value, Positions: kept})
		}
	}
	m.entries = fresh
}

// ChoosePosition picks the next card to turn over
func (m *Memory) ChoosePosition(excluding ...model.Position) (model.Position, error) {
	d, err := m.Decide(excluding...)
	if err != nil {
		return model.Position{}, err
	}
	return d.Position, nil
}

// Decide runs the move selection rules in priority order:
//  1. a value with two remembered positions: pick its first available one
//  2. any remembered available position
//  3. a uniformly random face-down position
//
// A position is available when it is face down and not excluded. Rule 1
// counts every position remembered since the last prune, so a card turned
// over earlier in the same turn still marks its value as a known pair.
func (m *Memory) Decide(excluding ...model.Position) (Decision, error) {
	excluded := make(map[model.Position]struct{}, len(excluding))
	for _, p := range excluding {
		excluded[p] = struct{}{}
	}
	available := func(p model.Position) bool {
		if _, ok := excluded[p]; ok {
			return false
		}
		return m.board.InBounds(p) && !m.board.IsRevealed(p)
	}

	for _, e := range m.entries {
		if len(e.Positions) < 2 {
			continue
		}
		for _, p := range e.Positions {
			if available(p) {
				return m.decided(p, RuleKnownPair), nil
			}
		}
	}

	for _, e := range m.entries {
		for _, p := range e.Positions {
			if available(p) {
				return m.decided(p, RuleKnownSingle), nil
			}
		}
	}

	var candidates []model.Position
	for _, p := range m.board.HiddenPositions() {
		if available(p) {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return Decision{}, model.ErrNoMovesAvailable
	}
	return m.decided(candidates[m.random.Intn(len(candidates))], RuleBlindGuess), nil
}

func (m *Memory) decided(p model.Position, rule Rule) Decision {
	m.logger.Debug("bot chose position",
		slog.String("position", p.String()),
		slog.String("rule", string(rule)),
	)
	return Decision{Position: p, Rule: rule}
}

// Snapshot returns a copy of the remembered entries in selection order
func (m *Memory) Snapshot() []Entry {
	result := make([]Entry, len(m.entries))
	for i, e := range m.entries {
		result[i] = Entry{Value: e.Value, Positions: append([]model.Position(nil), e.Positions...)}
	}
	return result
}

// Knows returns true if the position is remembered under any value
func (m *Memory) Knows(pos model.Position) bool {
	for _, e := range m.entries {
		for _, p := range e.Positions {
			if p == pos {
				return true
			}
		}
	}
	return false
}
