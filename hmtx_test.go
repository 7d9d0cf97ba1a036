package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestHmtxRoundTrip(t *testing.T) {
	h := Hmtx{
		HMetrics:        []LongHorMetric{{AdvanceWidth: 500, LeftSideBearing: 10}, {AdvanceWidth: 600, LeftSideBearing: -5}},
		LeftSideBearing: []int16{20, 30},
	}

	wt := NewWTape()
	test.Error(t, h.writeTape(wt))

	var got Hmtx
	test.Error(t, got.readTapeGiven(NewTape(wt.Bytes()), HmtxParams{NumberOfHMetrics: 2, NumGlyphs: 4}))
	test.T(t, got.AdvanceWidth(0), uint16(500))
	test.T(t, got.AdvanceWidth(1), uint16(600))
	test.T(t, got.AdvanceWidth(3), uint16(600)) // beyond hMetrics repeats the final advance

	test.T(t, got.LeftSideBearingFor(0), int16(10))
	test.T(t, got.LeftSideBearingFor(2), int16(20))
	test.T(t, got.LeftSideBearingFor(3), int16(30))
}

func TestHmtxLeftSideBearingForClampsPastTrailingArray(t *testing.T) {
	h := Hmtx{
		HMetrics:        []LongHorMetric{{AdvanceWidth: 500, LeftSideBearing: 10}},
		LeftSideBearing: []int16{20, 30},
	}
	// Glyph ids beyond len(HMetrics)+len(LeftSideBearing) clamp to the last entry.
	test.T(t, h.LeftSideBearingFor(10), int16(30))
}

func TestHmtxEmptyHasZeroDefaults(t *testing.T) {
	var h Hmtx
	test.T(t, h.AdvanceWidth(0), uint16(0))
	test.T(t, h.LeftSideBearingFor(0), int16(0))
}

func TestHmtxRejectsInconsistentCounts(t *testing.T) {
	var h Hmtx
	err := h.readTapeGiven(NewTape(nil), HmtxParams{NumberOfHMetrics: 5, NumGlyphs: 2})
	if err == nil {
		t.Fatal("expected numberOfHMetrics > numGlyphs to be rejected")
	}
}
