package truetype

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestNameRoundTrip(t *testing.T) {
	n, err := NewName([]NameEntry{
		{PlatformID: PlatformWindows, EncodingID: 1, LanguageID: 0x0409, NameID: NameFamily, Value: "Example Sans"},
		{PlatformID: PlatformMacintosh, EncodingID: 0, LanguageID: 0, NameID: NameFamily, Value: "Example Sans"},
	})
	test.Error(t, err)
	test.T(t, n.Format, uint16(0))

	wt := NewWTape()
	test.Error(t, Give(wt, n))

	var got Name
	test.Error(t, got.readTape(NewTape(wt.Bytes())))
	test.T(t, len(got.Records), 2)

	s, ok := got.Get(NameFamily)
	test.T(t, ok, true)
	test.T(t, s, "Example Sans")
}

func TestNameFormat1LanguageTagUpgrade(t *testing.T) {
	n, err := NewName([]NameEntry{
		{PlatformID: PlatformUnicode, NameID: NameFamily, Value: "Custom", LanguageTag: "x-custom"},
	})
	test.Error(t, err)
	test.T(t, n.Format, uint16(1))
	test.T(t, len(n.LangTags), 1)

	wt := NewWTape()
	test.Error(t, Give(wt, n))

	var got Name
	test.Error(t, got.readTape(NewTape(wt.Bytes())))
	test.T(t, got.Format, uint16(1))

	tag, ok := got.LanguageTag(got.Records[0])
	test.T(t, ok, true)
	test.T(t, tag, "x-custom")
}

func TestNameUnknownMacintoshCharacterFails(t *testing.T) {
	_, err := NewName([]NameEntry{
		{PlatformID: PlatformMacintosh, EncodingID: 0, LanguageID: 0, NameID: NameFamily, Value: "中文"},
	})
	if err == nil {
		t.Fatal("expected an error encoding a non-Roman character into Macintosh Roman")
	}
}

func TestNameOutOfRangeLanguageIDIsRejectedStrictly(t *testing.T) {
	wt := NewWTape()
	wt.GiveU16(1)  // format
	wt.GiveU16(1)  // count
	wt.GiveU16(20) // string offset (header len 6 + 12*1 + 2 + 0*4)
	wt.GiveU16(PlatformWindows)
	wt.GiveU16(1)
	wt.GiveU16(0x8005) // language id indexes a language-tag record that doesn't exist
	wt.GiveU16(NameFamily)
	wt.GiveU16(4)
	wt.GiveU16(0)
	wt.GiveU16(0) // langTagCount
	wt.GiveBytes([]byte("Exam"))

	var n Name
	err := n.readTape(NewTape(wt.Bytes()).WithLenience(nil))
	if err == nil {
		t.Fatal("expected strict decode to reject an out-of-range language id")
	}

	var lenient Name
	err = lenient.readTape(NewTape(wt.Bytes()).WithLenience(&Lenience{IgnoreInvalidLanguageIDs: true}))
	test.Error(t, err)
	test.T(t, len(lenient.Records), 1)
}

func TestNameInvalidRecordIsRejectedStrictly(t *testing.T) {
	wt := NewWTape()
	wt.GiveU16(0) // format
	wt.GiveU16(1) // count
	wt.GiveU16(18) // string offset (header len 6 + 12*1)
	// one record pointing past the (empty) storage blob
	wt.GiveU16(PlatformWindows)
	wt.GiveU16(1)
	wt.GiveU16(0x0409)
	wt.GiveU16(NameFamily)
	wt.GiveU16(10)
	wt.GiveU16(0)

	var n Name
	err := n.readTape(NewTape(wt.Bytes()).WithLenience(nil))
	if err == nil {
		t.Fatal("expected strict decode to reject an out-of-range name record")
	}

	var lenient Name
	err = lenient.readTape(NewTape(wt.Bytes()).WithLenience(&Lenience{IgnoreInvalidNameRecords: true}))
	test.Error(t, err)
	test.T(t, len(lenient.Records), 0)
}
