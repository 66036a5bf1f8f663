package compressor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestNewStream_InvalidOptions(t *testing.T) {
	if _, err := NewStream(WithLevel(9)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got: %v", err)
	}
	if _, err := NewStream(WithPreservePattern("(")); !errors.Is(err, ErrInvalidPattern) {
		t.Errorf("expected ErrInvalidPattern, got: %v", err)
	}
}

func TestStream_BuffersBelowThreshold(t *testing.T) {
	s, err := NewStream()
	if err != nil {
		t.Fatalf("NewStream failed: %v", err)
	}
	if piece := s.Write("small chunk "); piece != "" {
		t.Errorf("emitted below threshold: %q", piece)
	}
	if piece := s.Write(""); piece != "" {
		t.Errorf("empty chunk emitted: %q", piece)
	}
}

func TestStream_EmitsAtWordBoundary(t *testing.T) {
	s, err := NewStream(WithBufferSize(4))
	if err != nil {
		t.Fatalf("NewStream failed: %v", err)
	}

	// Over threshold but no whitespace anywhere: hold the word.
	if piece := s.Write("under"); piece != "" {
		t.Errorf("split mid-word: %q", piece)
	}

	piece := s.Write("standing rest")
	if piece != "undrstandng" {
		t.Errorf("piece = %q, want %q", piece, "undrstandng")
	}

	if flushed := s.Flush(); flushed != "rst" {
		t.Errorf("flush = %q, want %q", flushed, "rst")
	}
}

func TestStream_FlushEmpty(t *testing.T) {
	s, err := NewStream()
	if err != nil {
		t.Fatalf("NewStream failed: %v", err)
	}
	if got := s.Flush(); got != "" {
		t.Errorf("flush of empty stream = %q", got)
	}
}

func TestCompressStream(t *testing.T) {
	chunks := slices.Values([]string{"this is a ", "test of streaming ", "compression."})

	pieces, err := CompressStream(chunks)
	if err != nil {
		t.Fatalf("CompressStream failed: %v", err)
	}

	var out strings.Builder
	for piece := range pieces {
		out.WriteString(piece)
	}

	want := mustCompress(t, "this is a test of streaming compression.")
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestCompressStream_InvalidOptions(t *testing.T) {
	chunks := slices.Values([]string{"text"})
	if _, err := CompressStream(chunks, WithLevel(0)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got: %v", err)
	}
}

func TestCompressStream_SmallBufferKeepsWordsWhole(t *testing.T) {
	text := "understanding the implications of streaming compression across small buffers"
	var chunks []string
	for _, w := range strings.SplitAfter(text, " ") {
		chunks = append(chunks, w)
	}

	pieces, err := CompressStream(slices.Values(chunks), WithBufferSize(8))
	if err != nil {
		t.Fatalf("CompressStream failed: %v", err)
	}

	for piece := range pieces {
		if piece == "" {
			t.Error("yielded empty piece")
		}
		// No piece may end in a fragment of "understanding" etc.; every
		// emitted word must be fully compressed.
		if strings.Contains(piece, "understanding") {
			t.Errorf("uncompressed word leaked: %q", piece)
		}
	}
}

func TestCompressFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	content := "understanding the behavior of file compression"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	pieces, err := CompressFile(path)
	if err != nil {
		t.Fatalf("CompressFile failed: %v", err)
	}

	var out strings.Builder
	for piece := range pieces {
		out.WriteString(piece)
	}

	want := mustCompress(t, content)
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestCompressFile_Missing(t *testing.T) {
	_, err := CompressFile(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected fs.ErrNotExist, got: %v", err)
	}
}

func TestCompressFile_InvalidOptions(t *testing.T) {
	if _, err := CompressFile("anything.txt", WithLevel(7)); !errors.Is(err, ErrInvalidLevel) {
		t.Errorf("expected ErrInvalidLevel, got: %v", err)
	}
}

func TestCompressFile_ChunkedReads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "large.txt")

	var b strings.Builder
	for i := 0; i < 400; i++ {
		b.WriteString("understanding compression behavior over larger inputs ")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("write temp file: %v", err)
	}

	pieces, err := CompressFile(path, WithChunkSize(1024))
	if err != nil {
		t.Fatalf("CompressFile failed: %v", err)
	}

	count := 0
	for piece := range pieces {
		count++
		if strings.Contains(piece, "understanding") {
			t.Errorf("uncompressed word leaked: %q", piece)
		}
	}
	if count < 2 {
		t.Errorf("expected multiple pieces for chunked input, got %d", count)
	}
}
