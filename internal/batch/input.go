package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// maxLine bounds one expression line; long factorial chains fit easily.
const maxLine = 1 << 20

// Item is one expression to evaluate.
type Item struct {
	Label string // e.g. "sums.txt:4"
	Expr  string
}

// ReadItems reads one expression per line. Blank lines and lines starting
// with '#' are skipped; labels carry name and 1-based line number.
func ReadItems(r io.Reader, name string) ([]Item, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLine)

	var items []Item
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		items = append(items, Item{Label: fmt.Sprintf("%s:%d", name, line), Expr: text})
	}
	if err := sc.Err(); err != nil {
		return items, fmt.Errorf("read %s: %w", name, err)
	}
	return items, nil
}
