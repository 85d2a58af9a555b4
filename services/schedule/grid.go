// Package schedule defines the fixed slot grid covering the business day.
// All duration arithmetic happens on integer slot indices, never on wall-clock
// math, so a 50-minute service simply occupies two 30-minute slots.
package schedule

import (
	"fmt"

	"espuma/config"
)

// Grid is an ordered, fixed-interval sequence of time labels between opening
// and closing, with a lunch-break sub-range that can never be booked.
type Grid struct {
	openMin     int // minutes from midnight
	closeMin    int
	lunchStart  int
	lunchEnd    int
	intervalMin int
	labels      []string
	index       map[string]int
}

// New builds a grid from minutes-from-midnight boundaries. The grid spans
// [open, close) at the given interval; the lunch break is clamped to the
// business day.
func New(openMin, closeMin, lunchStartMin, lunchEndMin, intervalMin int) *Grid {
	if intervalMin <= 0 {
		intervalMin = 30
	}
	g := &Grid{
		openMin:     openMin,
		closeMin:    closeMin,
		lunchStart:  lunchStartMin,
		lunchEnd:    lunchEndMin,
		intervalMin: intervalMin,
		index:       make(map[string]int),
	}
	for m := openMin; m < closeMin; m += intervalMin {
		label := Label(m)
		g.index[label] = len(g.labels)
		g.labels = append(g.labels, label)
	}
	return g
}

// FromConfig builds the grid from the loaded application config.
func FromConfig() *Grid {
	cfg := config.AppConfig
	return New(cfg.OpenTime, cfg.CloseTime, cfg.LunchStart, cfg.LunchEnd, cfg.SlotIntervalMin)
}

// Label formats minutes from midnight as a 24h "HH:MM" slot label.
func Label(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Slots returns the ordered slot labels for the business day.
func (g *Grid) Slots() []string {
	out := make([]string, len(g.labels))
	copy(out, g.labels)
	return out
}

// Len returns the number of slots in the grid.
func (g *Grid) Len() int { return len(g.labels) }

// Index returns the position of a slot label, or -1 if the label is not a
// grid slot.
func (g *Grid) Index(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	return -1
}

// SlotsNeeded converts a duration in minutes to a slot count, rounding up so
// partial slots are fully occupied.
func (g *Grid) SlotsNeeded(durationMin int) int {
	if durationMin <= 0 {
		return 1
	}
	return (durationMin + g.intervalMin - 1) / g.intervalMin
}

// LunchRange returns the lunch break as a half-open slot index range
// [start, end). An empty range means no lunch break falls inside the
// business day.
func (g *Grid) LunchRange() (int, int) {
	start := (g.lunchStart - g.openMin) / g.intervalMin
	end := (g.lunchEnd - g.openMin + g.intervalMin - 1) / g.intervalMin
	if start < 0 {
		start = 0
	}
	if end > len(g.labels) {
		end = len(g.labels)
	}
	if start >= end {
		return 0, 0
	}
	return start, end
}

// FitsBusinessDay reports whether a range starting at slot index start and
// spanning count slots ends on or before closing.
func (g *Grid) FitsBusinessDay(start, count int) bool {
	return start >= 0 && start+count <= len(g.labels)
}

// Overlaps reports whether two half-open slot index ranges intersect.
func Overlaps(aStart, aCount, bStart, bCount int) bool {
	return aStart < bStart+bCount && bStart < aStart+aCount
}
