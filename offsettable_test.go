package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestTableChecksum(t *testing.T) {
	data := []byte{0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3}
	test.T(t, tableChecksum(data), uint32(6))
}

func TestDirectorySearchParams(t *testing.T) {
	// 103 tables: the largest power of two not above 103 is 64, and each
	// directory record is 16 bytes.
	searchRange, _, _ := directorySearchParams(103)
	test.T(t, searchRange, uint16(16*64))
}

func TestOffsetTableRoundTrip(t *testing.T) {
	wt := NewWTape()
	ot := OffsetTable{
		Version: TagTrueType,
		Records: []TableRecord{
			{Tag: mustTag("head"), CheckSum: 1, Offset: 100, Length: 54},
			{Tag: mustTag("cmap"), CheckSum: 2, Offset: 200, Length: 40},
		},
	}
	test.Error(t, Give(wt, &ot))

	got, err := Take[OffsetTable](NewTape(wt.Bytes()))
	test.Error(t, err)
	test.T(t, len(got.Records), 2)
	rec, ok := got.Find(mustTag("cmap"))
	test.T(t, ok, true)
	test.T(t, rec.Offset, uint32(200))
}
