// Package probe implements the predefined FormatProbe functions for the
// formats this module ships support for. Every probe here is a pure
// function over its FormatProbeInput: no I/O, no panics, FormatUnknown
// on any mismatch or undersized prefix.
package probe

import (
	"bytes"
	"encoding/binary"
	"regexp"

	"github.com/cadio-project/cadio/core"
)

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

func skipSpace(b []byte) []byte {
	i := 0
	for i < len(b) && isASCIISpace(b[i]) {
		i++
	}
	return b[i:]
}

// STEP recognizes the ISO-10303-21 STEP header:
// ^\s*ISO-10303-21\s*;\s*HEADER
func STEP(input core.FormatProbeInput) core.Format {
	const isoID = "ISO-10303-21"
	const headerToken = "HEADER"

	rest := skipSpace(input.ContentsPrefix)
	if !bytes.HasPrefix(rest, []byte(isoID)) {
		return core.FormatUnknown
	}
	rest = skipSpace(rest[len(isoID):])
	if len(rest) == 0 || rest[0] != ';' {
		return core.FormatUnknown
	}
	rest = skipSpace(rest[1:])
	if bytes.HasPrefix(rest, []byte(headerToken)) {
		return core.FormatSTEP
	}
	return core.FormatUnknown
}

// IGES recognizes the fixed-column IGES "S" start-section marker:
// byte 72 is 'S', bytes 73..79 are space/digit, byte 80 is a line
// terminator, and the right-justified decimal integer in bytes 73..79
// (leading spaces skipped, same as atoi) equals 1. Byte 80 is read, so
// the effective minimum sample length is 81.
func IGES(input core.FormatProbeInput) core.Format {
	sample := input.ContentsPrefix
	if len(sample) < 81 {
		return core.FormatUnknown
	}
	if sample[72] != 'S' {
		return core.FormatUnknown
	}
	for i := 73; i < 80; i++ {
		c := sample[i]
		if c != ' ' && (c < '0' || c > '9') {
			return core.FormatUnknown
		}
	}
	switch sample[80] {
	case '\n', '\r', '\f':
	default:
		return core.FormatUnknown
	}

	i := 73
	for i < 80 && sample[i] == ' ' {
		i++
	}
	value := 0
	for ; i < len(sample) && sample[i] >= '0' && sample[i] <= '9'; i++ {
		value = value*10 + int(sample[i]-'0')
	}
	if value == 1 {
		return core.FormatIGES
	}
	return core.FormatUnknown
}

// OCCBREP recognizes the OpenCascade BREP text marker:
// ^\s*DBRep_DrawableShape
func OCCBREP(input core.FormatProbeInput) core.Format {
	const token = "DBRep_DrawableShape"
	if bytes.HasPrefix(skipSpace(input.ContentsPrefix), []byte(token)) {
		return core.FormatOCCBREP
	}
	return core.FormatUnknown
}

const (
	binaryStlHeaderSize = 80 + 4 // header + uint32 facet count
	stlFacetSize         = (4 * 12) + 2 // 12 float32s + uint16 attribute byte count
)

// STL recognizes both the binary and ASCII STL variants. Binary is tried
// first: the facet count at offset 80 must make
// 84 + 50*facetCount exactly equal the file's real size. If that fails,
// falls back to the ASCII "solid" prefix.
func STL(input core.FormatProbeInput) core.Format {
	sample := input.ContentsPrefix
	if len(sample) >= binaryStlHeaderSize {
		facetCount := binary.LittleEndian.Uint32(sample[80:84])
		if int64(stlFacetSize)*int64(facetCount)+int64(binaryStlHeaderSize) == input.HintFullSize {
			return core.FormatSTL
		}
	}

	const asciiToken = "solid"
	if bytes.HasPrefix(skipSpace(sample), []byte(asciiToken)) {
		return core.FormatSTL
	}
	return core.FormatUnknown
}

// objDirectiveRegexp matches a line beginning (after leading whitespace)
// with one of the OBJ vertex directives followed by whitespace and a
// signed decimal number.
var objDirectiveRegexp = regexp.MustCompile(`(?m)^[ \t]*(v|vt|vn|vp|surf)[ \t]+[-+]?[0-9.]+[ \t]`)

// OBJ recognizes a Wavefront OBJ vertex-directive line.
func OBJ(input core.FormatProbeInput) core.Format {
	if objDirectiveRegexp.Match(input.ContentsPrefix) {
		return core.FormatOBJ
	}
	return core.FormatUnknown
}

// Predefined returns the probers this module ships, in order: STEP,
// IGES, OCC-BREP, STL, OBJ. This order is semantically significant —
// first non-Unknown wins.
func Predefined() []core.FormatProbe {
	return []core.FormatProbe{STEP, IGES, OCCBREP, STL, OBJ}
}
