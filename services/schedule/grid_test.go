package schedule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testGrid() *Grid {
	return New(8*60, 18*60, 12*60, 13*60, 30)
}

func TestGridSlots(t *testing.T) {
	g := testGrid()

	require.Equal(t, 20, g.Len())
	slots := g.Slots()
	require.Equal(t, "08:00", slots[0])
	require.Equal(t, "17:30", slots[len(slots)-1])

	require.Equal(t, 0, g.Index("08:00"))
	require.Equal(t, 19, g.Index("17:30"))
	require.Equal(t, -1, g.Index("18:00"))
	require.Equal(t, -1, g.Index("not a slot"))
}

func TestSlotsNeededRoundsUp(t *testing.T) {
	g := testGrid()

	cases := []struct {
		durationMin int
		want        int
	}{
		{30, 1},
		{45, 2},
		{60, 2},
		{90, 3},
		{50, 2},
		{0, 1},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, g.SlotsNeeded(tc.durationMin), "duration %d", tc.durationMin)
	}
}

func TestLunchRange(t *testing.T) {
	g := testGrid()

	start, end := g.LunchRange()
	require.Equal(t, 8, start)
	require.Equal(t, 10, end)
	require.Equal(t, "12:00", g.Slots()[start])
	require.Equal(t, "12:30", g.Slots()[end-1])
}

func TestLunchRangeOutsideDayIsEmpty(t *testing.T) {
	g := New(8*60, 18*60, 19*60, 20*60, 30)
	start, end := g.LunchRange()
	require.Equal(t, start, end)
}

func TestFitsBusinessDay(t *testing.T) {
	g := testGrid()

	require.True(t, g.FitsBusinessDay(0, 20))
	require.True(t, g.FitsBusinessDay(19, 1))
	require.False(t, g.FitsBusinessDay(19, 2))
	require.False(t, g.FitsBusinessDay(-1, 1))
}

func TestOverlapsSymmetry(t *testing.T) {
	ranges := []struct{ start, count int }{
		{0, 1}, {0, 3}, {2, 2}, {3, 1}, {5, 4}, {8, 2}, {19, 1},
	}
	for _, a := range ranges {
		for _, b := range ranges {
			require.Equal(t,
				Overlaps(a.start, a.count, b.start, b.count),
				Overlaps(b.start, b.count, a.start, a.count),
				"overlap symmetry for %v vs %v", a, b)
		}
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	// [0,2) and [2,4) share a boundary but no slot.
	require.False(t, Overlaps(0, 2, 2, 2))
	require.True(t, Overlaps(0, 2, 1, 2))
	require.True(t, Overlaps(1, 1, 0, 3))
}
