package probe_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cadio-project/cadio/core"
	"github.com/cadio-project/cadio/core/probe"
)

func padded(content string) []byte {
	buf := make([]byte, core.PrefixWindowSize)
	copy(buf, content)
	return buf
}

func TestSTEPRecognizesHeader(t *testing.T) {
	content := "ISO-10303-21;\nHEADER;\nFILE_DESCRIPTION(());\nENDSEC;\n"
	input := core.FormatProbeInput{ContentsPrefix: padded(content)}
	assert.Equal(t, core.FormatSTEP, probe.STEP(input))
}

func TestSTEPRejectsOtherContent(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: padded("solid cube\n")}
	assert.Equal(t, core.FormatUnknown, probe.STEP(input))
}

func buildIGESPrefix() []byte {
	sample := make([]byte, 81)
	for i := range sample {
		sample[i] = ' '
	}
	sample[72] = 'S'
	sample[79] = '1'
	sample[80] = '\n'
	return sample
}

func TestIGESRecognizesStartSection(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: buildIGESPrefix()}
	assert.Equal(t, core.FormatIGES, probe.IGES(input))
}

func TestIGESRecognizesRightJustifiedSequenceNumber(t *testing.T) {
	sample := make([]byte, 81)
	for i := range sample {
		sample[i] = ' '
	}
	sample[72] = 'S'
	sample[79] = '1' // bytes 73..78 stay spaces, byte 79 carries the digit
	sample[80] = '\n'
	input := core.FormatProbeInput{ContentsPrefix: sample}
	assert.Equal(t, core.FormatIGES, probe.IGES(input))
}

func TestIGESRejectsShortPrefix(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: make([]byte, 40)}
	assert.Equal(t, core.FormatUnknown, probe.IGES(input))
}

func TestIGESRejectsWrongSequenceNumber(t *testing.T) {
	sample := buildIGESPrefix()
	sample[79] = '2'
	input := core.FormatProbeInput{ContentsPrefix: sample}
	assert.Equal(t, core.FormatUnknown, probe.IGES(input))
}

func TestOCCBREPRecognizesMarker(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: padded("  DBRep_DrawableShape\nCASCADE\n")}
	assert.Equal(t, core.FormatOCCBREP, probe.OCCBREP(input))
}

func TestSTLRecognizesBinaryByExactSize(t *testing.T) {
	const facetCount = 3
	const fullSize = 84 + 50*facetCount
	sample := make([]byte, fullSize)
	binary.LittleEndian.PutUint32(sample[80:84], facetCount)
	input := core.FormatProbeInput{ContentsPrefix: sample, HintFullSize: int64(fullSize)}
	assert.Equal(t, core.FormatSTL, probe.STL(input))
}

func TestSTLRejectsBinaryWhenSizeMismatches(t *testing.T) {
	const facetCount = 3
	sample := make([]byte, 84+50*facetCount)
	binary.LittleEndian.PutUint32(sample[80:84], facetCount)
	input := core.FormatProbeInput{ContentsPrefix: sample, HintFullSize: 999}
	assert.Equal(t, core.FormatUnknown, probe.STL(input))
}

func TestSTLRecognizesASCII(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: padded("solid cube\nfacet normal 0 0 1\n")}
	assert.Equal(t, core.FormatSTL, probe.STL(input))
}

func TestOBJRecognizesVertexDirective(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: padded("# comment\nv 0.0 1.0 2.0\nf 1 2 3\n")}
	assert.Equal(t, core.FormatOBJ, probe.OBJ(input))
}

func TestOBJRejectsNonDirectiveContent(t *testing.T) {
	input := core.FormatProbeInput{ContentsPrefix: padded("just plain text\n")}
	assert.Equal(t, core.FormatUnknown, probe.OBJ(input))
}

func TestPredefinedOrderIsSTEPIGESOCCBREPSTLOBJ(t *testing.T) {
	fns := probe.Predefined()
	require.Len(t, fns, 5)

	// Each predefined probe recognizes only its own format, so feeding
	// position i a sample of the expected format identifies the probe there.
	assert.Equal(t, core.FormatSTEP, fns[0](core.FormatProbeInput{ContentsPrefix: padded("ISO-10303-21;\nHEADER;\n")}))
	assert.Equal(t, core.FormatIGES, fns[1](core.FormatProbeInput{ContentsPrefix: buildIGESPrefix()}))
	assert.Equal(t, core.FormatOCCBREP, fns[2](core.FormatProbeInput{ContentsPrefix: padded("DBRep_DrawableShape\n")}))
	assert.Equal(t, core.FormatSTL, fns[3](core.FormatProbeInput{ContentsPrefix: padded("solid cube\n")}))
	assert.Equal(t, core.FormatOBJ, fns[4](core.FormatProbeInput{ContentsPrefix: padded("v 0.0 1.0 2.0\n")}))
}
