package chess

import "github.com/corvidae/bitengine"

// RepetitionTracker counts how many times each position hash has been seen,
// the bookkeeping the core explicitly leaves to callers since it is layered
// entirely on top of the history stack rather than core invariants.
type RepetitionTracker struct {
	zobrist *Zobrist
	counts  map[uint64]int
}

// NewRepetitionTracker builds a tracker sized for b's piece-kind and square
// count, and records b's own current position as the first occurrence.
func NewRepetitionTracker(b *bitengine.Board) *RepetitionTracker {
	t := &RepetitionTracker{
		zobrist: NewZobrist(len(b.Game.Pieces), b.State.Squares),
		counts:  make(map[uint64]int),
	}
	t.Record(b)
	return t
}

// Record registers b's current position, to be called once per ply after
// MakeMove.
func (t *RepetitionTracker) Record(b *bitengine.Board) uint64 {
	h := t.zobrist.Hash(b)
	t.counts[h]++
	return h
}

// Forget reverses the most recent Record, to be called once per ply after
// UndoMove. Callers must call Forget exactly once per prior Record, in
// reverse order, or the counts drift from the actual game history.
func (t *RepetitionTracker) Forget(b *bitengine.Board) {
	h := t.zobrist.Hash(b)
	if t.counts[h] <= 1 {
		delete(t.counts, h)
		return
	}
	t.counts[h]--
}

// Count returns how many times b's current position has been recorded.
func (t *RepetitionTracker) Count(b *bitengine.Board) int {
	return t.counts[t.zobrist.Hash(b)]
}

// IsThreefold reports whether b's current position has occurred at least
// three times.
func (t *RepetitionTracker) IsThreefold(b *bitengine.Board) bool {
	return t.Count(b) >= 3
}
