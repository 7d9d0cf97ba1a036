package truetype

// Name IDs for the well-known predefined records every font is expected to
// carry (a small subset of the full registry; values beyond 25 are either
// vendor-specific or used only by variable/CJK fonts).
const (
	NameCopyright            uint16 = 0
	NameFamily               uint16 = 1
	NameSubfamily            uint16 = 2
	NameUniqueID             uint16 = 3
	NameFull                 uint16 = 4
	NameVersion              uint16 = 5
	NamePostScript           uint16 = 6
	NameTrademark            uint16 = 7
	NameManufacturer         uint16 = 8
	NameDesigner             uint16 = 9
	NameDescription          uint16 = 10
	NameLicense              uint16 = 13
	NameTypographicFamily    uint16 = 16
	NameTypographicSubfamily uint16 = 17
)

const (
	PlatformUnicode   uint16 = 0
	PlatformMacintosh uint16 = 1
	PlatformISO       uint16 = 2
	PlatformWindows   uint16 = 3
)

// NameRecord is one (platform, encoding, language, name) entry of the
// naming table, pointing at a run of the shared string storage.
type NameRecord struct {
	PlatformID uint16
	EncodingID uint16
	LanguageID uint16
	NameID     uint16
	Length     uint16
	Offset     uint16
}

func (r *NameRecord) readTape(t *Tape) error {
	if err := t.Require("name", 12); err != nil {
		return err
	}
	r.PlatformID = t.TakeU16()
	r.EncodingID = t.TakeU16()
	r.LanguageID = t.TakeU16()
	r.NameID = t.TakeU16()
	r.Length = t.TakeU16()
	r.Offset = t.TakeU16()
	return nil
}

func (r *NameRecord) writeTape(w *WTape) error {
	w.GiveU16(r.PlatformID)
	w.GiveU16(r.EncodingID)
	w.GiveU16(r.LanguageID)
	w.GiveU16(r.NameID)
	w.GiveU16(r.Length)
	w.GiveU16(r.Offset)
	return nil
}

// LangTagRecord points at a storage run holding a format 1 language tag
// string (a BCP 47 tag, for LanguageID values >= 0x8000).
type LangTagRecord struct {
	Length uint16
	Offset uint16
}

func (r *LangTagRecord) readTape(t *Tape) error {
	if err := t.Require("name", 4); err != nil {
		return err
	}
	r.Length = t.TakeU16()
	r.Offset = t.TakeU16()
	return nil
}

func (r *LangTagRecord) writeTape(w *WTape) error {
	w.GiveU16(r.Length)
	w.GiveU16(r.Offset)
	return nil
}

// Name is the naming table ("name"): a flat collection of localized
// strings describing the font, addressed by (platform, encoding,
// language, name id) and backed by a shared storage blob.
type Name struct {
	Format   uint16
	Records  []NameRecord
	LangTags []LangTagRecord
	storage  []byte
}

func (n *Name) readTape(t *Tape) error {
	if err := t.Require("name", 6); err != nil {
		return err
	}
	base := t.Position()
	n.Format = t.TakeU16()
	if n.Format != 0 && n.Format != 1 {
		return errorf("name", "unsupported format %d", n.Format)
	}
	count := t.TakeU16()
	storageOffset := t.TakeU16()
	records, err := TakeVec[NameRecord](t, int(count))
	if err != nil {
		return err
	}
	n.Records = records

	if n.Format == 1 {
		if err := t.Require("name", 2); err != nil {
			return err
		}
		langTagCount := t.TakeU16()
		langTags, err := TakeVec[LangTagRecord](t, int(langTagCount))
		if err != nil {
			return err
		}
		n.LangTags = langTags
	}

	storageStart := base + uint32(storageOffset)
	if err := t.Stay(func(t *Tape) error {
		t.Jump(storageStart)
		n.storage = t.TakeBytes(t.Len())
		return nil
	}); err != nil {
		return err
	}

	lenient := t.Lenience().ignoreInvalidNameRecords()
	lenientLanguageIDs := t.Lenience().ignoreInvalidLanguageIDs()
	kept := n.Records[:0]
	for _, r := range n.Records {
		if _, ok := n.slice(r.Offset, r.Length); !ok {
			if lenient {
				continue
			}
			return errorf("name", "record %d overruns the string storage blob", r.NameID)
		}
		if r.LanguageID >= 0x8000 {
			i := int(r.LanguageID) - 0x8000
			if n.Format != 1 || i >= len(n.LangTags) {
				if lenient || lenientLanguageIDs {
					kept = append(kept, r)
					continue
				}
				return errorf("name", "record %d references an out-of-range language id", r.NameID)
			}
		}
		kept = append(kept, r)
	}
	n.Records = kept
	return nil
}

func (n *Name) writeTape(w *WTape) error {
	w.GiveU16(n.Format)
	w.GiveU16(uint16(len(n.Records)))
	headerLen := 6 + 12*len(n.Records)
	if n.Format == 1 {
		headerLen += 2 + 4*len(n.LangTags)
	}
	w.GiveU16(uint16(headerLen))
	for i := range n.Records {
		if err := Give(w, &n.Records[i]); err != nil {
			return err
		}
	}
	if n.Format == 1 {
		w.GiveU16(uint16(len(n.LangTags)))
		for i := range n.LangTags {
			if err := Give(w, &n.LangTags[i]); err != nil {
				return err
			}
		}
	}
	w.GiveBytes(n.storage)
	return nil
}

func (n *Name) slice(offset, length uint16) ([]byte, bool) {
	start := int(offset)
	end := start + int(length)
	if start < 0 || end > len(n.storage) || start > end {
		return nil, false
	}
	return n.storage[start:end], true
}

// String decodes the text of a name record using the encoding implied by
// its platform and encoding ids: UTF-16BE for platform 0 (Unicode)
// encoding ids 3 and 4 and platform 3 (Windows) encoding ids 1 and 10, the
// matching Macintosh single-byte code page for platform 1, and raw bytes for
// anything else. Other platform 0 and platform 3 encoding ids are not
// decoded and return ("", false).
func (n *Name) String(r NameRecord) (string, bool) {
	raw, ok := n.slice(r.Offset, r.Length)
	if !ok {
		return "", false
	}
	switch r.PlatformID {
	case PlatformUnicode:
		if r.EncodingID == 3 || r.EncodingID == 4 {
			return decodeUTF16BE(raw), true
		}
		return "", false
	case PlatformWindows:
		if r.EncodingID == 1 || r.EncodingID == 10 {
			return decodeUTF16BE(raw), true
		}
		return "", false
	case PlatformMacintosh:
		table, ok := macintoshTable(r.EncodingID, r.LanguageID)
		if !ok {
			return string(raw), true
		}
		return decodeMacintosh(raw, table), true
	default:
		return string(raw), true
	}
}

// LanguageTag resolves a name record's LanguageID to a BCP 47 tag: the
// predefined Macintosh/Windows tables for language ids below 0x8000, or a
// format 1 language-tag record for ids at or above it.
func (n *Name) LanguageTag(r NameRecord) (string, bool) {
	if r.LanguageID >= 0x8000 {
		i := int(r.LanguageID) - 0x8000
		if i < 0 || i >= len(n.LangTags) {
			return "", false
		}
		raw, ok := n.slice(n.LangTags[i].Offset, n.LangTags[i].Length)
		if !ok {
			return "", false
		}
		return decodeUTF16BE(raw), true
	}
	switch r.PlatformID {
	case PlatformMacintosh:
		tag := MacintoshLanguageTag(r.LanguageID)
		return tag, tag != ""
	case PlatformWindows:
		tag := WindowsLanguageTag(r.LanguageID)
		return tag, tag != ""
	default:
		return "", false
	}
}

// Get returns the decoded text of the first record matching nameID under
// any platform, preferring Windows Unicode BMP records (the common case
// for modern fonts) over Macintosh ones.
func (n *Name) Get(nameID uint16) (string, bool) {
	var fallback *NameRecord
	for i := range n.Records {
		r := &n.Records[i]
		if r.NameID != nameID {
			continue
		}
		if r.PlatformID == PlatformWindows {
			return n.String(*r)
		}
		if fallback == nil {
			fallback = r
		}
	}
	if fallback == nil {
		return "", false
	}
	return n.String(*fallback)
}

// NameEntry is one semantic (platform, encoding, language, name id, text)
// tuple used to build a naming table with NewName. LanguageTag, when
// non-empty, is the BCP-47 string the record's language id should resolve
// to; it drives the table's format 1 upgrade and overrides LanguageID with
// the appropriate language-tag-array index.
type NameEntry struct {
	PlatformID  uint16
	EncodingID  uint16
	LanguageID  uint16
	NameID      uint16
	Value       string
	LanguageTag string
}

// NewName builds a naming table from entries, the write-side counterpart of
// Name.String/Name.LanguageTag: each string is encoded with the same
// (platform, encoding) rule its decoder uses, and the table format upgrades
// from 0 to 1 automatically as soon as any entry carries a LanguageTag.
func NewName(entries []NameEntry) (*Name, error) {
	format := uint16(0)
	for _, e := range entries {
		if e.LanguageTag != "" {
			format = 1
			break
		}
	}

	rawStrings := make([][]byte, len(entries))
	for i, e := range entries {
		raw, err := encodeNameString(e)
		if err != nil {
			return nil, err
		}
		rawStrings[i] = raw
	}

	var langTags []string
	langIndex := map[string]int{}
	if format == 1 {
		for _, e := range entries {
			if e.LanguageTag == "" {
				continue
			}
			if _, ok := langIndex[e.LanguageTag]; !ok {
				langIndex[e.LanguageTag] = len(langTags)
				langTags = append(langTags, e.LanguageTag)
			}
		}
	}

	n := &Name{Format: format, Records: make([]NameRecord, len(entries))}
	var storage []byte
	for i, e := range entries {
		offset := uint16(len(storage))
		storage = append(storage, rawStrings[i]...)
		languageID := e.LanguageID
		if e.LanguageTag != "" {
			languageID = uint16(0x8000 + langIndex[e.LanguageTag])
		}
		n.Records[i] = NameRecord{
			PlatformID: e.PlatformID,
			EncodingID: e.EncodingID,
			LanguageID: languageID,
			NameID:     e.NameID,
			Length:     uint16(len(rawStrings[i])),
			Offset:     offset,
		}
	}
	for _, tag := range langTags {
		raw := encodeUTF16BE(tag)
		n.LangTags = append(n.LangTags, LangTagRecord{Length: uint16(len(raw)), Offset: uint16(len(storage))})
		storage = append(storage, raw...)
	}
	n.storage = storage
	return n, nil
}

func encodeNameString(e NameEntry) ([]byte, error) {
	switch e.PlatformID {
	case PlatformUnicode, PlatformWindows:
		return encodeUTF16BE(e.Value), nil
	case PlatformMacintosh:
		table, ok := macintoshTable(e.EncodingID, e.LanguageID)
		if !ok {
			return []byte(e.Value), nil
		}
		return encodeMacintosh(e.Value, table)
	default:
		return []byte(e.Value), nil
	}
}
