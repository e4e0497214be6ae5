package model

import "errors"

// Common errors used across the application
var (
	// Setup errors
	ErrConfiguration = errors.New("invalid configuration")

	// Move errors
	ErrInvalidMove     = errors.New("invalid move")
	ErrOutOfBounds     = errors.New("position is off the board")
	ErrAlreadyRevealed = errors.New("card is already face up")

	// Bot errors
	ErrNoMovesAvailable = errors.New("no hidden positions left to pick")

	// Input errors
	ErrInputClosed = errors.New("input closed")

	// Game errors
	ErrGameNotFound = errors.New("game not found")
	ErrGameComplete = errors.New("game is already complete")
)
