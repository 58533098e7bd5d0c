// Package render turns a completed search.Result into printable output,
// following the table-based rendering style of internal/tui/view.go
// (github.com/jedib0t/go-pretty/v6/table, StyleRounded, SeparateRows)
// rather than inventing a new formatting approach.
package render

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/rbscholtus/layoutgen/internal/keygrid"
	"github.com/rbscholtus/layoutgen/internal/search"
)

// Layout renders a completed Result as a 3x10 grid, with alphabet[c]
// giving the character placed at Result.KeyOf[c].
func Layout(result *search.Result, alphabet []rune) (string, error) {
	if len(alphabet) != len(result.KeyOf) {
		return "", fmt.Errorf("render: alphabet has %d characters, result has %d", len(alphabet), len(result.KeyOf))
	}

	keys := keygrid.Keys()
	grid := make(map[keygrid.Key]rune, len(result.KeyOf))
	for charIdx, keyIdx := range result.KeyOf {
		grid[keys[keyIdx]] = alphabet[charIdx]
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateRows = true
	colConfigs := make([]table.ColumnConfig, 10)
	for i := range colConfigs {
		colConfigs[i] = table.ColumnConfig{Number: i + 1, AlignHeader: text.AlignCenter, Align: text.AlignCenter}
	}
	tw.SetColumnConfigs(colConfigs)

	for row := 0; row < 3; row++ {
		line := make(table.Row, 10)
		for col := 0; col < 10; col++ {
			if r, ok := grid[keygrid.Key{Row: row, Col: col}]; ok {
				line[col] = string(r)
			} else {
				line[col] = " "
			}
		}
		tw.AppendRow(line)
	}
	return tw.Render(), nil
}

// Summary renders a one-row score table alongside the layout grid.
func Summary(result *search.Result) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Score", "Keys placed"})
	tw.AppendRow(table.Row{result.Score, len(result.KeyOf)})
	return tw.Render()
}
