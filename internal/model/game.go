package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GameState represents whose turn it is, or that the game has ended
type GameState string

const (
	GameStateHumanTurn GameState = "human_turn"
	GameStateBotTurn   GameState = "bot_turn"
	GameStateOver      GameState = "game_over"
)

// Actor is one of the two sides at the table
type Actor string

const (
	ActorHuman Actor = "human"
	ActorBot   Actor = "bot"
)

// Other returns the opposing actor
func (a Actor) Other() Actor {
	if a == ActorHuman {
		return ActorBot
	}
	return ActorHuman
}

// TurnState returns the game state in which this actor plays
func (a Actor) TurnState() GameState {
	if a == ActorBot {
		return GameStateBotTurn
	}
	return GameStateHumanTurn
}

// Score holds the matched pair counts for both sides
type Score struct {
	Human int
	Bot   int
}

// Total returns the number of pairs matched by either side
func (s Score) Total() int {
	return s.Human + s.Bot
}

// Of returns the score of the given actor
func (s Score) Of(actor Actor) int {
	if actor == ActorBot {
		return s.Bot
	}
	return s.Human
}

// Game is a single session: the board, the scores and whose turn it is
type Game struct {
	ID        GameID
	Board     *Board
	Score     Score
	State     GameState
	TurnCount int // Number of resolved turns

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGame starts a session on the given board with the human to move
func NewGame(id GameID, board *Board, now time.Time) *Game {
	return &Game{
		ID:        id,
		Board:     board,
		State:     GameStateHumanTurn,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalPairs returns the number of pairs that must be matched to finish
func (g *Game) TotalPairs() int {
	return g.Board.TotalPairs()
}

// IsComplete returns true once every pair has been matched
func (g *Game) IsComplete() bool {
	return g.Score.Total() == g.TotalPairs()
}

// CurrentActor returns the side to move
func (g *Game) CurrentActor() Actor {
	if g.State == GameStateBotTurn {
		return ActorBot
	}
	return ActorHuman
}

// Outcome is the result of comparing two picked cards
type Outcome string

const (
	OutcomeMatch   Outcome = "match"
	OutcomeNoMatch Outcome = "no_match"
)

// TurnResult describes one resolved turn
type TurnResult struct {
	Number      int
	Actor       Actor
	First       Position
	Second      Position
	FirstValue  CardValue
	SecondValue CardValue
	Outcome     Outcome
	Score       Score // Score after resolution
}

// Verdict names the winner of a finished game
type Verdict string

const (
	VerdictHuman Verdict = "human"
	VerdictBot   Verdict = "bot"
	VerdictTie   Verdict = "tie"
)

// GameSummary is a lightweight record of a completed game
type GameSummary struct {
	ID          GameID
	Score       Score
	Verdict     Verdict
	Turns       int
	CompletedAt time.Time
}
