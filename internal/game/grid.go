package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Alphabet is the filler letter set. It contains the Turkish uppercase
// letters, so every cell must be handled as a rune, never a byte.
var Alphabet = []rune("ABCÇDEFGĞHIİJKLMNOÖPRSŞTUÜVYZ")

var (
	ErrInvalidGridSize = errors.New("grid size must be positive")
	ErrWordTooLong     = errors.New("word does not fit the grid")
)

// Cell addresses one grid position.
type Cell struct {
	Row int
	Col int
}

// Grid is a square letter grid with the target words embedded in it.
type Grid struct {
	size  int
	cells [][]rune
}

// Generate builds a size x size grid of random filler letters, then lays
// each word over it horizontally or vertically at a random in-bounds start.
// Later words may overwrite earlier ones and filler may spell accidental
// words; neither is corrected. A nil rng falls back to the global source.
func Generate(size int, words []string, rng *rand.Rand) (*Grid, error) {
	if size <= 0 {
		return nil, ErrInvalidGridSize
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	cells := make([][]rune, size)
	for r := range cells {
		cells[r] = make([]rune, size)
		for c := range cells[r] {
			cells[r][c] = Alphabet[intn(len(Alphabet))]
		}
	}

	for _, word := range words {
		letters := []rune(strings.ToUpper(word))
		if len(letters) > size {
			return nil, fmt.Errorf("%q -> %w", word, ErrWordTooLong)
		}

		horizontal := intn(2) == 0
		if horizontal {
			row := intn(size)
			col := intn(size - len(letters) + 1)
			for i, letter := range letters {
				cells[row][col+i] = letter
			}
		} else {
			row := intn(size - len(letters) + 1)
			col := intn(size)
			for i, letter := range letters {
				cells[row+i][col] = letter
			}
		}
	}

	return &Grid{size: size, cells: cells}, nil
}

func (g *Grid) Size() int {
	return g.size
}

// At returns the letter at c. Out-of-bounds cells read as zero.
func (g *Grid) At(c Cell) rune {
	if c.Row < 0 || c.Row >= g.size || c.Col < 0 || c.Col >= g.size {
		return 0
	}

	return g.cells[c.Row][c.Col]
}

// Line extracts the straight run of letters between a and b inclusive,
// normalized so the walk always goes start to end. It returns false when
// the cells share neither a row nor a column, or either is out of bounds.
// A pair naming the same cell degenerates to a single letter.
func (g *Grid) Line(a, b Cell) (string, []Cell, bool) {
	if !g.inBounds(a) || !g.inBounds(b) {
		return "", nil, false
	}

	switch {
	case a.Row == b.Row:
		lo, hi := minmax(a.Col, b.Col)
		cells := make([]Cell, 0, hi-lo+1)
		var sb strings.Builder
		for col := lo; col <= hi; col++ {
			cell := Cell{Row: a.Row, Col: col}
			sb.WriteRune(g.At(cell))
			cells = append(cells, cell)
		}

		return sb.String(), cells, true
	case a.Col == b.Col:
		lo, hi := minmax(a.Row, b.Row)
		cells := make([]Cell, 0, hi-lo+1)
		var sb strings.Builder
		for row := lo; row <= hi; row++ {
			cell := Cell{Row: row, Col: a.Col}
			sb.WriteRune(g.At(cell))
			cells = append(cells, cell)
		}

		return sb.String(), cells, true
	default:
		return "", nil, false
	}
}

// Letters renders the grid as rows of single-letter strings, the shape the
// HTTP grid endpoint serves.
func (g *Grid) Letters() [][]string {
	rows := make([][]string, g.size)
	for r := range rows {
		rows[r] = make([]string, g.size)
		for c := range rows[r] {
			rows[r][c] = string(g.cells[r][c])
		}
	}

	return rows
}

func (g *Grid) inBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.size && c.Col >= 0 && c.Col < g.size
}

func minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}

	return b, a
}
