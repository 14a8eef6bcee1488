package tui

import (
	table "github.com/charmbracelet/bubbles/table"
)

// refreshMeasurements fills the table from the current report.
func (m *Model) refreshMeasurements() {
	r := m.rep
	if r == nil {
		m.showMeasure = false
		m.status = "no measurements yet"
		return
	}
	rows := make([]table.Row, 0, len(r.Rows)+len(r.Properties)+len(r.Notes)+1)
	for _, row := range r.Rows {
		rows = append(rows, table.Row{row.Label, row.Value})
	}
	if r.Failed {
		rows = append(rows, table.Row{"Error", r.Verdict})
	} else {
		rows = append(rows, table.Row{"Type", r.Verdict})
	}
	for _, n := range r.Properties {
		rows = append(rows, table.Row{"Property", n})
	}
	for _, n := range r.Notes {
		rows = append(rows, table.Row{"Note", n})
	}
	valW := len("Value")
	for _, row := range rows {
		valW = max(valW, len(row[1]))
	}
	// clear rows before changing columns so the table never sees a mismatch
	m.tbl.SetRows(nil)
	m.tbl.SetColumns([]table.Column{
		{Title: "Measure", Width: 14},
		{Title: "Value", Width: min(valW+2, 60)},
	})
	m.tbl.SetRows(rows)
}
