package ui

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fatih/color"

	"kut/internal/domain"
)

const (
	// ReportWidth is the width of the log banners
	ReportWidth = 70
	// SuccessMessage is printed when no module failed
	SuccessMessage = "SUCCESS!"

	bannerNameWidth = ReportWidth - 9
)

// Reporter prints the aggregated result of a run
type Reporter struct {
	out io.Writer
}

// NewReporter creates a Reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report prints one log banner per error record followed by the summary and
// returns the process exit status: 0 when no error record exists, 1 otherwise.
func (r *Reporter) Report(summary domain.RunSummary) int {
	banner := color.New(color.FgRed, color.Bold)

	for _, rec := range summary.Errors {
		rule := strings.Repeat("=", ReportWidth)
		banner.Fprintln(r.out, rule)
		banner.Fprintln(r.out, Banner(rec.Module))
		banner.Fprintln(r.out, rule)
		for _, line := range summary.Results[rec.ModuleIndex].Lines {
			fmt.Fprintln(r.out, line)
		}
	}

	fmt.Fprintln(r.out, RanLine(len(summary.Results), summary.Duration))

	if n := len(summary.Errors); n > 0 {
		color.New(color.FgRed).Fprintln(r.out, FailedLine(n))
		return 1
	}
	color.New(color.FgGreen).Fprintln(r.out, SuccessMessage)
	return 0
}

// Banner returns the "| name  LOG |" line, padded so that the trailing label
// ends at ReportWidth. Names longer than the padding push the label right.
func Banner(module string) string {
	pad := bannerNameWidth - utf8.RuneCountInString(module)
	if pad < 0 {
		pad = 0
	}
	return "| " + module + " " + strings.Repeat(" ", pad) + " LOG |"
}

// RanLine returns the "Ran N test(s) in Xs" summary
func RanLine(modules int, elapsed time.Duration) string {
	noun := "tests"
	if modules == 1 {
		noun = "test"
	}
	return fmt.Sprintf("Ran %d %s in %ss", modules, noun, Seconds(elapsed))
}

// FailedLine returns the failure summary for n error records
func FailedLine(n int) string {
	if n == 1 {
		return fmt.Sprintf("%d FAILED TEST!", n)
	}
	return fmt.Sprintf("%d FAILED TESTS!", n)
}

// Seconds formats d in seconds rounded to three decimals, keeping at least
// one decimal digit ("0.0", "1.5", "2.125").
func Seconds(d time.Duration) string {
	s := math.Round(d.Seconds()*1000) / 1000
	out := strconv.FormatFloat(s, 'f', -1, 64)
	if !strings.Contains(out, ".") {
		out += ".0"
	}
	return out
}
