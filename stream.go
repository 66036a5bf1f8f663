package compressor

import (
	"fmt"
	"iter"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"
)

// boundaryLookback is how far back from the buffer end the stream searches
// for a whitespace split point, in runes.
const boundaryLookback = 100

// Stream incrementally compresses an unbounded sequence of text chunks with
// bounded memory. Chunks accumulate in an internal buffer; once the buffer
// reaches the configured size, everything up to the last whitespace within
// the lookback window is compressed and returned, and the remainder carries
// over. A word is never split across two emitted pieces.
//
// A Stream is single-pass and not safe for concurrent use. Abandoning it is
// harmless: the buffer is its only state.
type Stream struct {
	cfg config
	buf strings.Builder
}

// NewStream validates the options and returns a ready Stream. Use
// WithBufferSize to tune the emission threshold.
func NewStream(opts ...Option) (*Stream, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return &Stream{cfg: cfg}, nil
}

// Write appends chunk to the buffer and returns a compressed piece when the
// buffer has passed the threshold and a word boundary is in reach; otherwise
// it returns "". Empty chunks are ignored.
func (s *Stream) Write(chunk string) string {
	if chunk == "" {
		return ""
	}

	s.buf.WriteString(chunk)
	if s.buf.Len() < s.cfg.bufferSize {
		return ""
	}

	text := s.buf.String()
	split := lastWhitespaceBoundary(text)
	if split <= 0 {
		// No boundary within the lookback window: hold the whole buffer and
		// wait for more input rather than splitting a word.
		return ""
	}

	s.buf.Reset()
	s.buf.WriteString(text[split:])
	return s.compress(text[:split])
}

// Flush compresses and returns whatever remains buffered. The stream may be
// reused for a fresh sequence afterwards.
func (s *Stream) Flush() string {
	text := s.buf.String()
	s.buf.Reset()
	if text == "" {
		return ""
	}
	return s.compress(text)
}

func (s *Stream) compress(text string) string {
	work, level := applyPruning(text, s.cfg.level)
	return runPipeline(work, level, s.cfg, nil)
}

// lastWhitespaceBoundary returns the byte offset just after the nearest
// whitespace rune within boundaryLookback runes of the end of text, or -1.
func lastWhitespaceBoundary(text string) int {
	i := len(text)
	for n := 0; n < boundaryLookback && i > 0; n++ {
		r, size := utf8.DecodeLastRuneInString(text[:i])
		if unicode.IsSpace(r) {
			return i
		}
		i -= size
	}
	return -1
}

// CompressStream lazily compresses a sequence of chunks, yielding one
// compressed piece at a time. The returned sequence is finite if chunks is
// finite, makes a single forward pass, and may safely be abandoned early.
// Option errors surface before any chunk is consumed.
func CompressStream(chunks iter.Seq[string], opts ...Option) (iter.Seq[string], error) {
	s, err := NewStream(opts...)
	if err != nil {
		return nil, err
	}

	return func(yield func(string) bool) {
		for chunk := range chunks {
			if piece := s.Write(chunk); piece != "" {
				if !yield(piece) {
					return
				}
			}
		}
		if piece := s.Flush(); piece != "" {
			yield(piece)
		}
	}, nil
}

// CompressFile lazily compresses a file, reading it in WithChunkSize pieces
// and keeping one chunk plus the stream buffer resident at a time. A missing
// or unreadable file is reported immediately; test with
// errors.Is(err, fs.ErrNotExist).
func CompressFile(path string, opts ...Option) (iter.Seq[string], error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	// The read size doubles as the stream threshold, mirroring the
	// non-streaming defaults.
	cfg.bufferSize = cfg.chunkSize
	s := &Stream{cfg: cfg}

	return func(yield func(string) bool) {
		defer func() { _ = f.Close() }()

		buf := make([]byte, cfg.chunkSize)
		for {
			n, readErr := f.Read(buf)
			if n > 0 {
				if piece := s.Write(string(buf[:n])); piece != "" {
					if !yield(piece) {
						return
					}
				}
			}
			if readErr != nil {
				break
			}
		}
		if piece := s.Flush(); piece != "" {
			yield(piece)
		}
	}, nil
}
