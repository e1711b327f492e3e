package cmd

import (
	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/probe"
	"github.com/cadio-project/cadio/core/registry"
	"github.com/cadio-project/cadio/rawreader"
	"github.com/cadio-project/cadio/report"
)

// newRegistry builds the Registry the CLI drives: predefined format
// probers, a raw passthrough reader for every recognized CAD format, and
// the three demo report writers.
func newRegistry() *registry.Registry {
	reg := registry.New()
	for _, p := range probe.Predefined() {
		reg.AddFormatProbe(p)
	}

	reg.AddFactoryReader(rawreader.New(
		core.FormatSTEP,
		core.FormatIGES,
		core.FormatOCCBREP,
		core.FormatSTL,
		core.FormatOBJ,
	))

	reg.AddFactoryWriter(report.MarkdownFactory{})
	reg.AddFactoryWriter(report.JSONFactory{})
	reg.AddFactoryWriter(report.PDFFactory{})

	return reg
}
