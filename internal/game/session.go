package game

import (
	"strings"
	"time"
)

// Session is the state of one play-through: the grid, which targets are
// still open and the clock. It is the reference model for the per-game
// state the embedded client keeps in web/static/app.js — the browser's
// ambient globals collapsed into one object, so a fresh load is just a
// fresh Session.
type Session struct {
	grid     *Grid
	targets  map[string]struct{}
	found    []string
	foundSet map[string]struct{}
	cells    map[Cell]struct{}
	started  time.Time
	finished time.Time
}

func NewSession(grid *Grid, words []string) *Session {
	targets := make(map[string]struct{}, len(words))
	for _, w := range words {
		targets[strings.ToUpper(w)] = struct{}{}
	}

	return &Session{
		grid:     grid,
		targets:  targets,
		foundSet: make(map[string]struct{}),
		cells:    make(map[Cell]struct{}),
		started:  time.Now(),
	}
}

// Select resolves a two-click selection. The pair must be row- or
// column-aligned; anything else resets the attempt with no match. The
// extracted run matches only an as-yet-unfound target, so re-selecting a
// found word changes nothing. On match the covered cells are marked for
// good.
func (s *Session) Select(a, b Cell) (string, bool) {
	word, cells, ok := s.grid.Line(a, b)
	if !ok {
		return "", false
	}

	if _, isTarget := s.targets[word]; !isTarget {
		return word, false
	}
	if _, already := s.foundSet[word]; already {
		return word, false
	}

	s.foundSet[word] = struct{}{}
	s.found = append(s.found, word)
	for _, cell := range cells {
		s.cells[cell] = struct{}{}
	}

	return word, true
}

// Found lists the found words in the order they were found.
func (s *Session) Found() []string {
	out := make([]string, len(s.found))
	copy(out, s.found)

	return out
}

func (s *Session) IsCellFound(c Cell) bool {
	_, ok := s.cells[c]

	return ok
}

// AllFound gates the submit action: true once every target is found.
func (s *Session) AllFound() bool {
	return len(s.foundSet) == len(s.targets)
}

// Elapsed is the running play time, frozen once Finish is called.
func (s *Session) Elapsed() time.Duration {
	if !s.finished.IsZero() {
		return s.finished.Sub(s.started)
	}

	return time.Since(s.started)
}

// Finish stops the clock. Called after the submission response lands,
// win or lose.
func (s *Session) Finish() {
	if s.finished.IsZero() {
		s.finished = time.Now()
	}
}
