// Package truetype parses and emits the core tables of the TrueType/OpenType
// sfnt font container: the offset table, the flat metadata tables (head,
// hhea, maxp, hmtx, post, OS/2), the character-to-glyph mapping (cmap), the
// naming table (name), and the outline tables (loca, glyf).
//
// Every table type supports three operations: reading from a Tape (a
// seekable big-endian byte source), inspection through typed accessors, and
// writing back to a Tape. Tables that depend on other tables (hmtx on hhea
// and maxp; loca on head and maxp; glyf on loca) accept that context as an
// explicit parameter rather than reaching for global state.
//
// Out of scope: glyph rasterization, hinting-bytecode execution, font
// collection demultiplexing, CFF/CFF2 outlines, GPOS/GSUB layout, font
// subsetting, and text shaping.
package truetype
