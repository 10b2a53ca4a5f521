package pdf

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/docsage-labs/docsage-cli/internal/core/domain"
)

// Table detection works on extracted text: runs of consecutive lines
// whose cells are separated by tab stops or wide space gaps are taken
// as tables, with the first line as the header row.

var (
	pageMarkerRe = regexp.MustCompile(`^--- Page (\d+) ---$`)
	cellSplitRe  = regexp.MustCompile(`\t+| {2,}`)
)

const minTableRows = 2

func detectTables(text string) []domain.Table {
	var (
		tables  []domain.Table
		rows    [][]string
		page    = 1
		perPage = map[int]int{}
	)

	flush := func() {
		if len(rows) >= minTableRows {
			perPage[page]++
			tables = append(tables, domain.Table{
				Page:     page,
				Index:    perPage[page],
				Headers:  rows[0],
				Rows:     rows[1:],
				RowCount: len(rows) - 1,
				ColCount: len(rows[0]),
			})
		}
		rows = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)

		if m := pageMarkerRe.FindStringSubmatch(trimmed); m != nil {
			flush()
			page = atoiOr(m[1], page)
			continue
		}

		cells := splitCells(trimmed)
		if len(cells) >= 2 {
			rows = append(rows, cells)
			continue
		}
		flush()
	}
	flush()

	return tables
}

func splitCells(line string) []string {
	if line == "" {
		return nil
	}

	var cells []string
	for _, cell := range cellSplitRe.Split(line, -1) {
		if cell = strings.TrimSpace(cell); cell != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}

func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
