package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pierrec/lz4"
)

// maxLineSize bounds a single blob line. The largest encodable blob is well under it.
const maxLineSize = 8 << 20

// ReadBlobs reads newline separated hex blobs from r. Blank lines and lines
// starting with '#' are skipped. When compressed is set, r must hold an LZ4 frame.
func ReadBlobs(r io.Reader, compressed bool) ([]string, error) {
	if compressed {
		r = lz4.NewReader(r)
	}

	var blobs []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		blobs = append(blobs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blobs: %w", err)
	}
	return blobs, nil
}

// WriteBlobs writes blobs one per line, LZ4 framed when compressed is set.
func WriteBlobs(w io.Writer, blobs []string, compressed bool) error {
	var zw *lz4.Writer
	if compressed {
		zw = lz4.NewWriter(w)
		w = zw
	}

	bw := bufio.NewWriter(w)
	for _, b := range blobs {
		if _, err := bw.WriteString(b + "\n"); err != nil {
			return fmt.Errorf("failed to write blobs: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write blobs: %w", err)
	}
	if zw != nil {
		if err := zw.Close(); err != nil {
			return fmt.Errorf("failed to close lz4 frame: %w", err)
		}
	}
	return nil
}
