package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a text board. 'S' marks the start, 'G' the goal, '|', '+', '-'
// and '#' are walls and every other character is open floor. Trailing "\r" is
// stripped and rows shorter than the longest one are padded with open cells.
// Blank trailing lines are ignored. '#' is a wall here although legacy boards
// treated it as floor, so Board.String output parses back to the same board.
func Parse(r io.Reader) (*Board, error) {
	sc := bufio.NewScanner(r)
	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: reading board: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	width := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > width {
			width = n
		}
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	var start, goal Cell
	var haveStart, haveGoal bool
	open := make([][]bool, len(lines))
	for row, line := range lines {
		open[row] = make([]bool, width)
		for col := range open[row] {
			open[row][col] = true
		}
		for col, ch := range []rune(line) {
			switch ch {
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: second one at %v", ErrDuplicateStart, Cell{row, col})
				}
				start, haveStart = Cell{Row: row, Col: col}, true
			case 'G':
				if haveGoal {
					return nil, fmt.Errorf("%w: second one at %v", ErrDuplicateGoal, Cell{row, col})
				}
				goal, haveGoal = Cell{Row: row, Col: col}, true
			case '|', '+', '-', '#':
				open[row][col] = false
			}
		}
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveGoal {
		return nil, ErrMissingGoal
	}

	return NewBoard(open, start, goal)
}

// ParseString is Parse over an in-memory board.
func ParseString(s string) (*Board, error) {
	return Parse(strings.NewReader(s))
}

// Load opens path and parses it as a text board.
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("grid: open board %s: %w", path, err)
	}
	defer f.Close()

	b, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("grid: load board %s: %w", path, err)
	}
	return b, nil
}
