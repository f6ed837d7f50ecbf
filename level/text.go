package level

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"wallcast/model"
)

// ParseText reads a text map, one row per line:
//
//	#      wall
//	. or ' ' open
//	0-9    explicit cell code
//	P      open cell holding the player spawn
//
// Lines starting with ';' are comments and blank lines are skipped. Trailing
// spaces are kept, so every row must have the same width.
func ParseText(r io.Reader) (*Level, error) {
	var rows [][]int
	var spawn *[2]int

	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, ";") {
			continue
		}

		row := make([]int, 0, len(text))
		for col, ch := range text {
			switch {
			case ch == '#':
				row = append(row, Wall)
			case ch == '.' || ch == ' ':
				row = append(row, model.Open)
			case ch >= '0' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == 'P' || ch == 'p':
				spawn = &[2]int{len(row), len(rows)}
				row = append(row, model.Open)
			default:
				return nil, fmt.Errorf("line %d col %d %q: %w", line, col+1, ch, ErrBadCell)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return build(rows, spawn)
}
