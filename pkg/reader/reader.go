package reader

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single line's buffer, mirroring the teacher's
// ScanStdin(maxCapacity) knob but fixed at a generous constant since
// this reader has no caller-supplied capacity parameter.
const maxLineBytes = 1024 * 1024

// Warning describes one skipped input line: its 1-based line number
// and the reason it was not read as an integer.
type Warning struct {
	Line   int
	Text   string
	Reason string
}

func (w Warning) String() string {
	return fmt.Sprintf("line %d: %q: %s", w.Line, w.Text, w.Reason)
}

// Read reads path line by line, skipping blank lines and accumulating
// a Warning for any non-blank line that does not parse as a signed
// 32-bit integer. It returns every successfully parsed integer (zero,
// negative, math.MinInt32, and math.MaxInt32 all accepted) alongside
// the warnings, in file order. A file-open or scan failure is returned
// as the third value; callers route it to a non-zero exit code per
// spec.md §6.2.
func Read(path string) ([]int, []Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reader: opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, maxLineBytes)
	scanner.Buffer(buf, maxLineBytes)

	var (
		values   []int
		warnings []Warning
		lineNo   int
	)
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			warnings = append(warnings, Warning{Line: lineNo, Text: text, Reason: "not a signed 32-bit integer"})
			continue
		}
		values = append(values, int(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("reader: scanning %s: %w", path, err)
	}
	return values, warnings, nil
}
