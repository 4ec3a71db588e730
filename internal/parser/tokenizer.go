// Package parser turns raw text pasted from a student portal into typed
// assignment records. It is a two-stage pipeline: Tokenize splits and
// validates candidate rows, Build maps surviving rows onto records.
package parser

import (
	"regexp"
	"strings"
)

// TokenRow is an ordered list of non-empty string fields extracted from one
// line of pasted input.
type TokenRow []string

// minFields is the smallest number of fields a line must produce to count
// as a data row. Pasted tables always carry at least serial number, class
// number, course code, course title and the dues column.
const minFields = 5

// fieldSep splits a data line on literal tabs or runs of two-or-more
// spaces. Single spaces stay inside fields such as course titles.
var fieldSep = regexp.MustCompile(`\t| {2,}`)

var allDigits = regexp.MustCompile(`^\d+$`)

// headerMarkers are lowercase substrings that identify the serial-number
// column label of a pasted header row.
var headerMarkers = []string{"sl.no", "sl. no", "sl no", "s.no", "serial no"}

// Tokenize splits raw pasted text into candidate record rows. Blank lines
// are skipped, a leading header row is dropped, and any line that does not
// look like a data row (fewer than minFields fields, or a non-numeric first
// field) is silently discarded. Silent dropping is deliberate: pasted
// portal output is full of titles and separator artifacts that are not
// errors, just noise.
func Tokenize(raw string) []TokenRow {
	lines := strings.Split(raw, "\n")

	rows := make([]TokenRow, 0, len(lines))
	seenContent := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !seenContent {
			seenContent = true
			if isHeader(line) {
				continue
			}
		}

		fields := splitFields(line)
		if len(fields) < minFields {
			continue
		}
		if !allDigits.MatchString(fields[0]) {
			continue
		}
		rows = append(rows, fields)
	}

	return rows
}

func isHeader(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range headerMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func splitFields(line string) TokenRow {
	parts := fieldSep.Split(line, -1)
	fields := make(TokenRow, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
