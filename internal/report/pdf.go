// Package report renders task lists as printable documents.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/fastygo/tasklist/domain"
)

// BuildTasksPDF renders tasks, in the given order, as an A4 checklist.
func BuildTasksPDF(tasks []*domain.Task, generatedAt time.Time) ([]byte, error) {
	p := gofpdf.New("P", "mm", "A4", "")
	p.SetTitle("Task list", true)
	p.AddPage()

	// Core fonts only cover cp1252; titles are transcoded and unknown runes degrade.
	tr := p.UnicodeTranslatorFromDescriptor("")

	p.SetFont("Arial", "B", 16)
	p.Cell(0, 10, "Task list")
	p.Ln(10)

	done := 0
	for _, t := range tasks {
		if t.IsCompleted() {
			done++
		}
	}

	p.SetFont("Arial", "", 10)
	p.Cell(0, 6, fmt.Sprintf("Generated %s - %d of %d completed",
		generatedAt.UTC().Format(time.RFC3339), done, len(tasks)))
	p.Ln(10)

	p.SetFont("Arial", "B", 11)
	p.CellFormat(20, 8, "ID", "B", 0, "L", false, 0, "")
	p.CellFormat(25, 8, "Done", "B", 0, "L", false, 0, "")
	p.CellFormat(0, 8, "Title", "B", 1, "L", false, 0, "")

	p.SetFont("Arial", "", 11)
	for _, t := range tasks {
		mark := "[ ]"
		if t.IsCompleted() {
			mark = "[x]"
		}
		p.CellFormat(20, 7, fmt.Sprintf("%d", t.ID()), "", 0, "L", false, 0, "")
		p.CellFormat(25, 7, mark, "", 0, "L", false, 0, "")
		p.MultiCell(0, 7, tr(t.Title()), "", "L", false)
	}

	if len(tasks) == 0 {
		p.SetFont("Arial", "I", 11)
		p.Cell(0, 8, "No tasks.")
	}

	var buf bytes.Buffer
	if err := p.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
