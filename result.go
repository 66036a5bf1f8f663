package compressor

// SpanKind identifies why a region of output text was preserved.
type SpanKind string

// Span kinds. Built-in pattern matches (URLs, emails, phone numbers, IDs)
// are reported as SpanPreserve; the finer-grained kinds exist for callers
// that classify spans themselves. Proper nouns and acronyms are guarded at
// the token level during word compression and never produce spans.
const (
	SpanURL           SpanKind = "url"
	SpanEmail         SpanKind = "email"
	SpanPhone         SpanKind = "phone"
	SpanUUID          SpanKind = "uuid"
	SpanHexID         SpanKind = "hex_id"
	SpanAlphanumID    SpanKind = "alphanum_id"
	SpanProperNoun    SpanKind = "proper_noun"
	SpanAcronym       SpanKind = "acronym"
	SpanCompressorOff SpanKind = "compressor_off"
	SpanFencedCode    SpanKind = "fenced_code"
	SpanInlineCode    SpanKind = "inline_code"
	SpanJSON          SpanKind = "json"
	SpanXML           SpanKind = "xml"
	SpanPreserve      SpanKind = "preserve"
	SpanCustomPattern SpanKind = "custom_pattern"
	SpanMarkdownHR    SpanKind = "markdown_hr"
)

// PreservedSpan is a region of the compressed output that was kept intact.
// Start and End are byte offsets into Result.Text, half-open; Text is always
// the exact substring Result.Text[Start:End].
type PreservedSpan struct {
	Start int      `json:"start"`
	End   int      `json:"end"`
	Text  string   `json:"text"`
	Kind  SpanKind `json:"kind"`
}

// Result holds the compressed text together with compression statistics.
// It is constructed once per call and must not be mutated afterwards.
type Result struct {
	Text             string          `json:"text"`
	OriginalLength   int             `json:"original_length"`
	CompressedLength int             `json:"compressed_length"`
	Ratio            float64         `json:"ratio"`
	SavingsPct       float64         `json:"savings_pct"`
	Level            int             `json:"level"`
	PreservedSpans   []PreservedSpan `json:"preserved_spans"`
}

func (r *Result) String() string { return r.Text }
