// Package compressor shrinks natural-language text so it consumes fewer LLM
// tokens while staying understandable, without corrupting machine-readable
// content embedded in it (URLs, emails, identifiers, code, JSON, XML).
//
// # Quick Start
//
//	out, err := compressor.Compress("understanding artificial intelligence",
//	    compressor.WithLevel(3))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out)
//
// Four levels are available: 1 collapses doubled letters, 2 also removes
// interior vowels, 3 also truncates long words, and 4 additionally prunes
// filler phrases and consecutive duplicate lines before compressing at
// level 3 strength.
//
// Text wrapped in literal [COMPRESSOR_OFF] ... [/COMPRESSOR_OFF] markers
// passes through byte-for-byte; the markers themselves are stripped.
//
// # Thread Safety
//
// Every call is purely functional: no call mutates state visible to another.
// The package-level vocabulary (compiled patterns, stop-word sets) is built
// once at init and is read-only afterwards, so Compress, CompressWithStats
// and independent Streams may run concurrently without locking.
package compressor
