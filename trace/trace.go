// Package trace produces address streams for the simulator: parsed from
// text traces or generated from a Zipf distribution.
package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/IvanBrykalov/cachesim"
	"github.com/IvanBrykalov/cachesim/internal/util"
)

// maxLine bounds a single trace line.
const maxLine = 1 << 20

// Read parses one address per line from r. Blank lines and lines starting
// with '#' are skipped; only the first whitespace-separated token of a line
// is used, so "0x7ffe10 R" style traces work unchanged.
//
// Numeric tokens (0x-prefixed hex or decimal) are aligned down to lineSize
// and re-rendered as lowercase 0x hex, so two accesses to the same cache line
// become the same address. Any other token is an opaque address and passes
// through verbatim. lineSize must be 0, 1 (no alignment) or a power of two.
func Read(r io.Reader, lineSize uint64) ([]string, error) {
	if err := ValidateLineSize(lineSize); err != nil {
		return nil, err
	}
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		out = append(out, Normalize(strings.Fields(line)[0], lineSize))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("trace: read line %d: %w", len(out)+1, err)
	}
	return out, nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string, lineSize uint64) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("trace: %w", err)
	}
	defer f.Close()
	return Read(f, lineSize)
}

// Normalize renders a numeric token as its line-aligned 0x address and
// returns any other token unchanged.
func Normalize(tok string, lineSize uint64) string {
	v, ok := parseAddr(tok)
	if !ok {
		return tok
	}
	return format(util.AlignDown(v, lineSize))
}

// ValidateLineSize accepts 0, 1 and powers of two.
func ValidateLineSize(lineSize uint64) error {
	if lineSize > 1 && !util.IsPowerOfTwo(lineSize) {
		return fmt.Errorf("%w: line size %d is not a power of two", cachesim.ErrInvalidArgument, lineSize)
	}
	return nil
}

func parseAddr(tok string) (uint64, bool) {
	if len(tok) > 2 && tok[0] == '0' && (tok[1] == 'x' || tok[1] == 'X') {
		v, err := strconv.ParseUint(tok[2:], 16, 64)
		return v, err == nil
	}
	v, err := strconv.ParseUint(tok, 10, 64)
	return v, err == nil
}

func format(v uint64) string { return "0x" + strconv.FormatUint(v, 16) }
