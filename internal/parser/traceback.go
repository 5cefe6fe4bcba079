package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"kut/internal/domain"
)

// TracebackMarker starts every unhandled-error report of a Python runtime
const TracebackMarker = "Traceback"

var _ Parser = (*TracebackParser)(nil)

// TracebackParser flags every line that starts a Python traceback
type TracebackParser struct{}

// NewTracebackParser creates a new TracebackParser
func NewTracebackParser() *TracebackParser {
	return &TracebackParser{}
}

// IsTracebackLine reports whether line starts with the traceback marker,
// optionally preceded by a single whitespace character. Some runtimes prefix
// the marker with one space when the output is captured as bytes.
func IsTracebackLine(line string) bool {
	if strings.HasPrefix(line, TracebackMarker) {
		return true
	}
	r, size := utf8.DecodeRuneInString(line)
	if size == 0 || !unicode.IsSpace(r) {
		return false
	}
	return strings.HasPrefix(line[size:], TracebackMarker)
}

// HasTraceback reports whether any of lines starts a traceback
func HasTraceback(lines []string) bool {
	for _, line := range lines {
		if IsTracebackLine(line) {
			return true
		}
	}
	return false
}

// ParseErrors returns one error record per traceback line of result. A
// module whose child never started yields a single record with LineIndex -1.
func (p *TracebackParser) ParseErrors(moduleIndex int, result domain.ModuleResult) []domain.ErrorRecord {
	var records []domain.ErrorRecord

	if !result.Launched() {
		records = append(records, domain.ErrorRecord{
			ModuleIndex: moduleIndex,
			LineIndex:   -1,
			Module:      result.Module.Name,
		})
	}

	for i, line := range result.Lines {
		if IsTracebackLine(line) {
			records = append(records, domain.ErrorRecord{
				ModuleIndex: moduleIndex,
				LineIndex:   i,
				Module:      result.Module.Name,
			})
		}
	}

	return records
}

// Classify scans every result in order and collects all error records
func (p *TracebackParser) Classify(results []domain.ModuleResult) []domain.ErrorRecord {
	var records []domain.ErrorRecord
	for i, result := range results {
		records = append(records, p.ParseErrors(i, result)...)
	}
	return records
}
