// Package registry implements an ordered, idempotent-by-identity
// collection of format probers and reader/writer factories, plus the
// format-probing resolution algorithm.
package registry

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cadio-project/cadio/core"
)

// Registry is the mutable home for everything the import/export
// orchestrators look up: probers, reader factories, writer factories. It
// is not safe for concurrent registration and lookup; registration is
// expected to happen once at startup before any pipeline runs.
type Registry struct {
	probes         []core.FormatProbe
	factoryReaders []core.FactoryReader
	factoryWriters []core.FactoryWriter
	readerFormats  []core.Format
	writerFormats  []core.Format
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{}
}

// AddFormatProbe appends probe to the ordered list probeFormat consults.
// Order is significant: the first probe to return a non-Unknown Format
// wins.
func (r *Registry) AddFormatProbe(probe core.FormatProbe) {
	if probe == nil {
		return
	}
	r.probes = append(r.probes, probe)
}

func containsFormat(formats []core.Format, format core.Format) bool {
	for _, f := range formats {
		if f == format {
			return true
		}
	}
	return false
}

func identicalFactoryReader(a, b core.FactoryReader) bool {
	return a == b
}

func identicalFactoryWriter(a, b core.FactoryWriter) bool {
	return a == b
}

// AddFactoryReader registers factory and folds its advertised formats
// into the reader-format lookup list, skipping formats already present.
// Re-registering the exact same factory value is a no-op.
func (r *Registry) AddFactoryReader(factory core.FactoryReader) {
	if factory == nil {
		return
	}
	for _, existing := range r.factoryReaders {
		if identicalFactoryReader(existing, factory) {
			return
		}
	}
	for _, format := range factory.Formats() {
		if !containsFormat(r.readerFormats, format) {
			r.readerFormats = append(r.readerFormats, format)
		}
	}
	r.factoryReaders = append(r.factoryReaders, factory)
}

// AddFactoryWriter is the writer-side mirror of AddFactoryReader.
func (r *Registry) AddFactoryWriter(factory core.FactoryWriter) {
	if factory == nil {
		return
	}
	for _, existing := range r.factoryWriters {
		if identicalFactoryWriter(existing, factory) {
			return
		}
	}
	for _, format := range factory.Formats() {
		if !containsFormat(r.writerFormats, format) {
			r.writerFormats = append(r.writerFormats, format)
		}
	}
	r.factoryWriters = append(r.factoryWriters, factory)
}

// FindFactoryReader returns the first registered reader factory that
// advertises format, or nil.
func (r *Registry) FindFactoryReader(format core.Format) core.FactoryReader {
	for _, factory := range r.factoryReaders {
		if containsFormat(factory.Formats(), format) {
			return factory
		}
	}
	return nil
}

// FindFactoryWriter is the writer-side mirror of FindFactoryReader.
func (r *Registry) FindFactoryWriter(format core.Format) core.FactoryWriter {
	for _, factory := range r.factoryWriters {
		if containsFormat(factory.Formats(), format) {
			return factory
		}
	}
	return nil
}

// CreateReader builds a new Reader for format via the first matching
// factory, or returns nil if none was registered.
func (r *Registry) CreateReader(format core.Format) core.Reader {
	factory := r.FindFactoryReader(format)
	if factory == nil {
		return nil
	}
	return factory.CreateReader(format)
}

// CreateWriter is the writer-side mirror of CreateReader.
func (r *Registry) CreateWriter(format core.Format) core.Writer {
	factory := r.FindFactoryWriter(format)
	if factory == nil {
		return nil
	}
	return factory.CreateWriter(format)
}

// ProbeFormat determines path's Format: read up to core.PrefixWindowSize
// bytes, zero-padded, run every registered prober in registration order,
// and fall back to a case-insensitive suffix match against every
// registered reader format and then every registered writer format. If
// the file cannot be opened or stat'd, probing proceeds on suffix
// matching alone rather than failing outright.
func (r *Registry) ProbeFormat(path string) core.Format {
	prefix, fullSize := readPrefix(path)
	if prefix != nil {
		input := core.FormatProbeInput{
			Filepath:       path,
			ContentsPrefix: prefix,
			HintFullSize:   fullSize,
		}
		for _, probe := range r.probes {
			if format := probe(input); format != core.FormatUnknown {
				return format
			}
		}
	}

	suffix := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if suffix == "" {
		return core.FormatUnknown
	}
	if format := matchSuffix(r.readerFormats, suffix); format != core.FormatUnknown {
		return format
	}
	if format := matchSuffix(r.writerFormats, suffix); format != core.FormatUnknown {
		return format
	}
	return core.FormatUnknown
}

func matchSuffix(formats []core.Format, suffix string) core.Format {
	for _, format := range formats {
		for _, candidate := range core.FormatFileSuffixes(format) {
			if strings.EqualFold(candidate, suffix) {
				return format
			}
		}
	}
	return core.FormatUnknown
}

func readPrefix(path string) ([]byte, int64) {
	file, err := os.Open(path)
	if err != nil {
		return nil, 0
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, 0
	}

	buf := make([]byte, core.PrefixWindowSize)
	n, _ := file.Read(buf)
	_ = n // buf stays zero-padded past n
	return buf, info.Size()
}
