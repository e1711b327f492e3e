// Package core defines the shared contracts of the I/O orchestration
// engine: the Format tag, the Reader/Writer/Document/ParametersProvider
// collaborator interfaces, and the probe input value. Concrete probers,
// the factory registry, and the import/export orchestrators live in
// sibling packages that depend on core, not the other way around.
package core

import "strings"

// Format identifies a CAD file format handled by the system. The zero
// value, FormatUnknown, is never the result of a successful probe.
//
// The set is open: callers extend it by defining new Format values and
// registering probers/factories that reference them. Values below 1000
// are reserved for the predefined formats this module ships.
type Format int

const (
	FormatUnknown Format = iota
	FormatSTEP
	FormatIGES
	FormatOCCBREP
	FormatSTL
	FormatOBJ

	// Demo report formats (see package report) — not real CAD geometry
	// formats, they exist to exercise the writer side of the registry.
	FormatMDReport
	FormatJSONReport
	FormatPDFReport
)

func (f Format) String() string {
	switch f {
	case FormatUnknown:
		return "Unknown"
	case FormatSTEP:
		return "STEP"
	case FormatIGES:
		return "IGES"
	case FormatOCCBREP:
		return "OCCBREP"
	case FormatSTL:
		return "STL"
	case FormatOBJ:
		return "OBJ"
	case FormatMDReport:
		return "MDReport"
	case FormatJSONReport:
		return "JSONReport"
	case FormatPDFReport:
		return "PDFReport"
	default:
		return "Format(" + itoa(int(f)) + ")"
	}
}

// itoa avoids pulling in strconv just for the rare unknown-format label.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// suffixTable holds the canonical, lower-case file suffixes (without the
// leading dot) associated with each predefined format. Suffix matching in
// the probe dispatcher is case-insensitive, classic/ASCII locale.
var suffixTable = map[Format][]string{
	FormatSTEP:       {"step", "stp"},
	FormatIGES:       {"iges", "igs"},
	FormatOCCBREP:    {"brep", "rle"},
	FormatSTL:        {"stl"},
	FormatOBJ:        {"obj"},
	FormatMDReport:   {"md"},
	FormatJSONReport: {"json"},
	FormatPDFReport:  {"pdf"},
}

// FormatFileSuffixes returns the canonical suffixes registered for format.
// Suffixes never include a leading dot. Returns nil for formats with no
// registered suffixes (including ones the caller invented but never
// registered via RegisterFormatSuffixes).
func FormatFileSuffixes(format Format) []string {
	return suffixTable[format]
}

// RegisterFormatSuffixes lets a caller extending the Format enum declare
// the canonical suffixes for a new tag. Registering the same format again
// replaces its suffix list; this is a package-level table shared by the
// whole process, matching the read-mostly, populated-at-startup nature of
// the format identity described in the data model.
func RegisterFormatSuffixes(format Format, suffixes ...string) {
	clean := make([]string, len(suffixes))
	for i, s := range suffixes {
		clean[i] = strings.ToLower(strings.TrimPrefix(s, "."))
	}
	suffixTable[format] = clean
}
