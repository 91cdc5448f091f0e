// Package model defines the data structures for document transformation runs.
package model

// Path represents a file system path.
type Path string

// LineRecord represents a single line travelling through the rewrite pipeline.
type LineRecord struct {
	Number      int    // 1-based position in the source document
	Text        string // content without its line terminator
	Rewritten   string // content after token replacement
	Occurrences int    // occurrences replaced on this line
}
