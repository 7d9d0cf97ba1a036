package truetype

import (
	"golang.org/x/text/encoding/unicode"
)

var utf16BEEncoding = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// decodeUTF16BE decodes b (a name table string in platform 0 Unicode or
// platform 3 Windows encoding, both big-endian UTF-16) into a Go string.
// Decode errors are replaced with U+FFFD rather than rejecting the record,
// matching how real-world fonts with mildly malformed name strings are
// still read by other implementations.
func decodeUTF16BE(b []byte) string {
	s, err := utf16BEEncoding.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

// encodeUTF16BE encodes s into big-endian UTF-16 bytes.
func encodeUTF16BE(s string) []byte {
	b, err := utf16BEEncoding.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil
	}
	return b
}
