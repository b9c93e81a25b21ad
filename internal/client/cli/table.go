package cli

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/usercatalog/internal/client/models"
	"github.com/dmitrijs2005/usercatalog/internal/client/services"
	"golang.org/x/term"
	"golang.org/x/text/width"
)

// test seams for terminal detection
var (
	isTerminal = term.IsTerminal
	getSize    = term.GetSize
)

const (
	columnGap      = "  "
	minColumnWidth = 4
)

// terminalWidth returns the width of w when it is a terminal, 0 otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	fd := int(f.Fd())
	if !isTerminal(fd) {
		return 0
	}
	width, _, err := getSize(fd)
	if err != nil || width <= 0 {
		return 0
	}
	return width
}

func sortMarker(d models.SortDirection) string {
	if d == models.Descending {
		return "▼"
	}
	return "▲"
}

var columnTitles = map[models.SortKey]string{
	models.SortByName:  "Name",
	models.SortByEmail: "Email",
	models.SortByRole:  "Role",
}

// renderTable prints v as a table. Loading, error and empty states replace
// the rows with a single line. A positive width caps the table width.
func renderTable(w io.Writer, v services.View, width int) {
	header := []string{"ID"}
	for _, k := range models.Columns {
		title := columnTitles[k]
		if v.Sort.Key == k {
			title += " " + sortMarker(v.Sort.Direction)
		}
		header = append(header, title)
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, u := range v.Rows {
		row := []string{u.ID.String()}
		for _, k := range models.Columns {
			row = append(row, k.Field(u))
		}
		rows = append(rows, row)
	}

	widths := columnWidths(header, rows)
	fitWidths(widths, width)

	fmt.Fprintln(w, formatRow(header, widths))
	fmt.Fprintln(w, strings.Repeat("-", tableWidth(widths)))

	switch v.Kind {
	case services.ViewRows:
		for _, r := range rows {
			fmt.Fprintln(w, formatRow(r, widths))
		}
		return
	case services.ViewIdle:
		fmt.Fprintln(w, fit("Not loaded", width))
	case services.ViewLoading:
		fmt.Fprintln(w, fit("Loading...", width))
	case services.ViewError:
		fmt.Fprintln(w, fit("Error: "+v.Message, width))
	case services.ViewEmpty:
		fmt.Fprintln(w, fit("No users found", width))
	}
}

func columnWidths(header []string, rows [][]string) []int {
	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = displayWidth(h)
	}
	for _, r := range rows {
		for i, cell := range r {
			widths[i] = max(widths[i], displayWidth(cell))
		}
	}
	return widths
}

func tableWidth(widths []int) int {
	total := len(columnGap) * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	return total
}

// fitWidths narrows the widest columns until the table fits limit or every
// column is at minColumnWidth.
func fitWidths(widths []int, limit int) {
	if limit <= 0 {
		return
	}
	for tableWidth(widths) > limit {
		widest := 0
		for i := range widths {
			if widths[i] > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= minColumnWidth {
			return
		}
		widths[widest]--
	}
}

func formatRow(cells []string, widths []int) string {
	out := make([]string, len(cells))
	for i, c := range cells {
		c = fit(c, widths[i])
		out[i] = c + strings.Repeat(" ", widths[i]-displayWidth(c))
	}
	return strings.TrimRight(strings.Join(out, columnGap), " ")
}

// runeWidth is the number of terminal cells r occupies: 2 for East Asian
// wide and fullwidth runes, 0 for combining marks and controls.
func runeWidth(r rune) int {
	if unicode.In(r, unicode.Mn, unicode.Me, unicode.Cc, unicode.Cf) {
		return 0
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return 2
	}
	return 1
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		n += runeWidth(r)
	}
	return n
}

// fit truncates s to at most n cells, marking the cut with an ellipsis.
// n <= 0 means no limit.
func fit(s string, n int) string {
	if n <= 0 || displayWidth(s) <= n {
		return s
	}
	var b strings.Builder
	used := 0
	for _, r := range s {
		w := runeWidth(r)
		if used+w > n-1 {
			break
		}
		b.WriteRune(r)
		used += w
	}
	return b.String() + "…"
}
