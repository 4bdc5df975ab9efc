// Package maintenance implements the offline glossary jobs: seeding from a
// data file, syncing a data file into existing terms, and removing
// duplicate terms. Jobs are run by cmd/seed and cmd/dedup, never by the
// server.
package maintenance

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Stephan-Heuscher/2026-Insel-Glossar/internal/domain"
)

// minColumns is the number of leading columns a data row must have:
// term, context, definitionDe, definitionEn, einfacheSprache, eselsleiter.
// source and sourceUrl are optional.
const minColumns = 6

const maxLineBytes = 1 << 20

// Row is one glossary entry read from a data file.
type Row struct {
	Term            string
	Context         string
	DefinitionDe    string
	DefinitionEn    string
	EinfacheSprache string
	Eselsleiter     string
	Source          string
	SourceURL       string
}

// Eselsleitern returns the mnemonic as a one-element list, or an empty list.
func (r Row) Eselsleitern() []string {
	if r.Eselsleiter == "" {
		return []string{}
	}
	return []string{r.Eselsleiter}
}

// toTerm builds a new glossary term from the row.
func (r Row) toTerm(createdBy string, status domain.TermStatus) domain.GlossaryTerm {
	return domain.GlossaryTerm{
		Term:            r.Term,
		Context:         r.Context,
		DefinitionDe:    r.DefinitionDe,
		DefinitionEn:    r.DefinitionEn,
		EinfacheSprache: r.EinfacheSprache,
		Eselsleitern:    r.Eselsleitern(),
		Source:          r.Source,
		SourceURL:       r.SourceURL,
		Status:          status,
		CreatedBy:       createdBy,
		CreatedByName:   createdBy,
	}
}

// patch overwrites every content field. Attribution and creation time are kept.
func (r Row) patch() domain.TermPatch {
	eselsleitern := r.Eselsleitern()
	return domain.TermPatch{
		Term:            &r.Term,
		Context:         &r.Context,
		DefinitionDe:    &r.DefinitionDe,
		DefinitionEn:    &r.DefinitionEn,
		EinfacheSprache: &r.EinfacheSprache,
		Eselsleitern:    &eselsleitern,
		Source:          &r.Source,
		SourceURL:       &r.SourceURL,
	}
}

// Rows is the parse result of a data file.
type Rows struct {
	Rows []Row
	// Malformed lists the first cell of every row with too few columns or
	// a blank term.
	Malformed []string
}

// LoadFile parses path as a spreadsheet when it ends in .xlsx and as
// tab-separated text otherwise.
func LoadFile(path string) (Rows, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return Rows{}, fmt.Errorf("open workbook: %w", err)
		}
		defer f.Close()
		return parseWorkbook(f)
	}

	f, err := os.Open(path)
	if err != nil {
		return Rows{}, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return ParseTSV(f)
}

// ParseTSV reads one entry per line, columns separated by tabs. Lines are
// trimmed and blank lines ignored.
func ParseTSV(r io.Reader) (Rows, error) {
	var out Rows

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out.add(strings.Split(line, "\t"))
	}
	if err := sc.Err(); err != nil {
		return Rows{}, fmt.Errorf("read data file: %w", err)
	}
	return out, nil
}

// ParseXLSX reads the first sheet of a workbook with the same column layout
// as the tab-separated format. A leading header row whose first cell reads
// "term" is skipped. Trailing empty cells may be omitted.
func ParseXLSX(r io.Reader) (Rows, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Rows{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return parseWorkbook(f)
}

func parseWorkbook(f *excelize.File) (Rows, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Rows{}, nil
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return Rows{}, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}

	var out Rows
	for i, row := range cells {
		if i == 0 && len(row) > 0 && strings.EqualFold(strings.TrimSpace(row[0]), "term") {
			continue
		}
		if isBlank(row) {
			continue
		}
		// The workbook reader drops trailing empty cells.
		for len(row) < minColumns {
			row = append(row, "")
		}
		out.add(row)
	}
	return out, nil
}

func (rs *Rows) add(cols []string) {
	if len(cols) < minColumns || strings.TrimSpace(cols[0]) == "" {
		first := "(empty)"
		if len(cols) > 0 && strings.TrimSpace(cols[0]) != "" {
			first = strings.TrimSpace(cols[0])
		}
		rs.Malformed = append(rs.Malformed, first)
		return
	}

	col := func(i int) string {
		if i < len(cols) {
			return strings.TrimSpace(cols[i])
		}
		return ""
	}
	rs.Rows = append(rs.Rows, Row{
		Term:            col(0),
		Context:         col(1),
		DefinitionDe:    col(2),
		DefinitionEn:    col(3),
		EinfacheSprache: col(4),
		Eselsleiter:     col(5),
		Source:          col(6),
		SourceURL:       col(7),
	})
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
