package core

// PrefixWindowSize is the authoritative number of bytes the probe
// dispatcher reads from the start of a file before running probers.
// Probers must never need more than this many bytes to reach a verdict.
const PrefixWindowSize = 2048

// FormatProbeInput is the immutable input handed to a FormatProbe for a
// single probe call. Filepath is informational only (probers must not
// reopen or otherwise touch the filesystem); ContentsPrefix is the bounded
// byte window read from the start of the file, zero-padded to
// PrefixWindowSize when the file is shorter; HintFullSize is the file's
// exact size in bytes as reported by the filesystem.
type FormatProbeInput struct {
	Filepath       string
	ContentsPrefix []byte
	HintFullSize   int64
}

// FormatProbe is a pure function that inspects a FormatProbeInput and
// returns the Format it recognizes, or FormatUnknown if undecided. A
// FormatProbe must not perform I/O beyond what the input already carries,
// must tolerate a ContentsPrefix shorter than any pattern it looks for,
// and must never panic on malformed input.
type FormatProbe func(FormatProbeInput) Format
