package adapter

import (
	"bufio"
	"context"
	"io"
	"os"
	"strings"
)

// LineSource yields successive lines of a document without their terminators.
type LineSource interface {
	// Next returns the next line. ok is false once the document is exhausted.
	Next(ctx context.Context) (line string, ok bool, err error)

	// BytesRead reports how many raw bytes have been consumed, terminators
	// included.
	BytesRead() int64

	// Close releases the underlying document handle.
	Close() error
}

// lineReader reads lines of arbitrary length. bufio.Scanner is avoided on
// purpose: its fixed token limit would turn a long line into a read error.
type lineReader struct {
	file   *os.File
	reader *bufio.Reader
	bytes  int64
	done   bool
}

func newLineReader(file *os.File) *lineReader {
	return &lineReader{
		file:   file,
		reader: bufio.NewReader(file),
	}
}

// Next reads one line, normalizing CRLF and LF terminators away.
func (r *lineReader) Next(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	if r.done {
		return "", false, nil
	}

	raw, err := r.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}

	r.bytes += int64(len(raw))

	if err == io.EOF {
		r.done = true

		if raw == "" {
			return "", false, nil
		}
	}

	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, true, nil
}

// BytesRead implements LineSource.
func (r *lineReader) BytesRead() int64 {
	return r.bytes
}

// Close implements LineSource.
func (r *lineReader) Close() error {
	return r.file.Close()
}
