package model

import (
	"fmt"
	"strings"
)

// Alphabet is the ordered set of symbols card values are drawn from
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// CardValue is the symbol printed on a card
type CardValue rune

func (v CardValue) String() string {
	return string(v)
}

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single card slot on the board
type Cell struct {
	Value    CardValue
	Revealed bool
}

// Board is the square grid of cards for one game
type Board struct {
	Size  int      // Grid dimension (e.g., 4 for 4x4)
	Cells [][]Cell // Row-major: Cells[row][col]
}

// ValidateSize checks that a board of the given size can be filled with pairs
func ValidateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrConfiguration, size)
	}
	if (size*size)%2 != 0 {
		return fmt.Errorf("%w: size %d gives an odd number of cells", ErrConfiguration, size)
	}
	if (size*size)/2 > len(Alphabet) {
		return fmt.Errorf("%w: size %d needs more than %d card values", ErrConfiguration, size, len(Alphabet))
	}
	return nil
}

// NewBoard lays out two of each card value in row-major order, all hidden.
// The caller is responsible for shuffling.
func NewBoard(size int) (*Board, error) {
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	cells := make([][]Cell, size)
	for i := range cells {
		cells[i] = make([]Cell, size)
	}
	for i := 0; i < size*size; i++ {
		cells[i/size][i%size] = Cell{Value: CardValue(Alphabet[i/2])}
	}
	return &Board{Size: size, Cells: cells}, nil
}

// BoardFromRows builds an unshuffled board from one string per row,
// e.g. BoardFromRows("ABAB", "CDCD", "EFEF", "GHGH")
func BoardFromRows(rows ...string) (*Board, error) {
	size := len(rows)
	if err := ValidateSize(size); err != nil {
		return nil, err
	}
	counts := make(map[CardValue]int)
	cells := make([][]Cell, size)
	for r, row := range rows {
		symbols := []rune(row)
		if len(symbols) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrConfiguration, r, len(symbols), size)
		}
		cells[r] = make([]Cell, size)
		for c, sym := range symbols {
			cells[r][c] = Cell{Value: CardValue(sym)}
			counts[CardValue(sym)]++
		}
	}
	for value, n := range counts {
		if n != 2 {
			return nil, fmt.Errorf("%w: value %s appears %d times", ErrConfiguration, value, n)
		}
	}
	return &Board{Size: size, Cells: cells}, nil
}

// InBounds returns true if the position is within the grid
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.Size && pos.Col >= 0 && pos.Col < b.Size
}

// ValueAt returns the card value at the given position, or 0 if out of bounds.
// Hidden cells are included; renderers must check IsRevealed first.
func (b *Board) ValueAt(pos Position) CardValue {
	if !b.InBounds(pos) {
		return 0
	}
	return b.Cells[pos.Row][pos.Col].Value
}

// IsRevealed returns true if the card at the position is face up
func (b *Board) IsRevealed(pos Position) bool {
	if !b.InBounds(pos) {
		return false
	}
	return b.Cells[pos.Row][pos.Col].Revealed
}

// SetRevealed turns the card at the position face up or down
func (b *Board) SetRevealed(pos Position, revealed bool) {
	if b.InBounds(pos) {
		b.Cells[pos.Row][pos.Col].Revealed = revealed
	}
}

// TotalPairs returns the number of pairs on the board
func (b *Board) TotalPairs() int {
	return b.Size * b.Size / 2
}

// Positions returns every position in row-major order
func (b *Board) Positions() []Position {
	result := make([]Position, 0, b.Size*b.Size)
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			result = append(result, Position{Row: row, Col: col})
		}
	}
	return result
}

// HiddenPositions returns all face-down positions in row-major order
func (b *Board) HiddenPositions() []Position {
	var result []Position
	for _, pos := range b.Positions() {
		if !b.Cells[pos.Row][pos.Col].Revealed {
			result = append(result, pos)
		}
	}
	return result
}

// RevealedCount returns the number of face-up cells
func (b *Board) RevealedCount() int {
	return b.Size*b.Size - len(b.HiddenPositions())
}

// Swap exchanges the contents of two cells
func (b *Board) Swap(a, c Position) {
	if b.InBounds(a) && b.InBounds(c) {
		b.Cells[a.Row][a.Col], b.Cells[c.Row][c.Col] = b.Cells[c.Row][c.Col], b.Cells[a.Row][a.Col]
	}
}

// String renders the board with all values visible, one row per line
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.Size; row++ {
		for col := 0; col < b.Size; col++ {
			sb.WriteRune(rune(b.Cells[row][col].Value))
		}
		if row < b.Size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
