package bot

import "github.com/mcoot/pexeso/internal/model"

// Strategy decides the bot's picks from what it has seen of the board
type Strategy interface {
	// Observe is told about every card turned face up, by either side
	Observe(pos model.Position)
	// Forget drops knowledge made useless by a resolved turn
	Forget(outcome model.Outcome, a, b model.Position)
	// PruneUnreachable drops remembered positions that are no longer face down
	PruneUnreachable()
	// ChoosePosition picks a face-down position not in excluding
	ChoosePosition(excluding ...model.Position) (model.Position, error)
}

// Rule identifies which step of the move selection produced a pick
type Rule string

const (
	RuleKnownPair   Rule = "known_pair"
	RuleKnownSingle Rule = "known_single"
	RuleBlindGuess  Rule = "blind_guess"
)

// Decision is a chosen position along with the rule that chose it
type Decision struct {
	Position model.Position
	Rule     Rule
}
