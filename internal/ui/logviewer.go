package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"kut/internal/domain"
	"kut/internal/parser"
)

// LogViewer displays the logs of the last run in an interactive TUI
type LogViewer struct{}

// NewLogViewer creates a new LogViewer
func NewLogViewer() *LogViewer {
	return &LogViewer{}
}

type viewedLog struct {
	log    domain.ModuleLog
	lines  []string
	failed bool
}

func prepareLogs(logs []domain.ModuleLog) []viewedLog {
	viewed := make([]viewedLog, len(logs))
	for i, l := range logs {
		lines := parser.SplitLines(l.Text)
		viewed[i] = viewedLog{log: l, lines: lines, failed: parser.HasTraceback(lines)}
	}
	return viewed
}

// View displays logs with failing modules marked. Pressing f toggles between
// all modules and failing modules only.
func (lv *LogViewer) View(logs []domain.ModuleLog) error {
	if len(logs) == 0 {
		color.Yellow("No module logs to show")
		return nil
	}

	all := prepareLogs(logs)
	failedCount := 0
	for _, v := range all {
		if v.failed {
			failedCount++
		}
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	onlyFailed := false
	var shown []viewedLog

	updateHeader := func() {
		mode := "all"
		if onlyFailed {
			mode = "failed only"
		}
		headerView.SetText(fmt.Sprintf(
			" Module logs (%d modules, [red]%d failed[white], showing %s) | ↑↓ navigate, → view log, ← back, [yellow]F[white] toggle failed, Ctrl+C exit ",
			len(all), failedCount, mode))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(shown) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		statsView.SetText(formatLogStats(shown[index]))
		detailsView.SetText(formatLogDetails(shown[index].lines)).ScrollToBeginning()
	}

	fillList := func() {
		list.Clear()
		shown = shown[:0]
		for _, v := range all {
			if onlyFailed && !v.failed {
				continue
			}
			shown = append(shown, v)
			list.AddItem(formatListItem(v), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'f' || event.Rune() == 'F' {
				onlyFailed = !onlyFailed
				fillList()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	fillList()

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 2, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	body := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(body, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func formatListItem(v viewedLog) string {
	if v.failed {
		return fmt.Sprintf("[red]✗[white] [yellow]%d.[white] %s", v.log.Index+1, tview.Escape(v.log.Name))
	}
	return fmt.Sprintf("[green]✓[white] [yellow]%d.[white] %s", v.log.Index+1, tview.Escape(v.log.Name))
}

// formatLogStats formats the header above a module log
func formatLogStats(v viewedLog) string {
	status := "[green]passed[white]"
	if v.failed {
		status = "[red]failed[white]"
	}
	return fmt.Sprintf("[cyan]module:[white] [yellow]%s[white] | %s | %d lines\n",
		tview.Escape(v.log.Name), status, len(v.lines))
}

// formatLogDetails renders a log using tview color tags, highlighting
// traceback headers in red
func formatLogDetails(lines []string) string {
	var builder strings.Builder
	for _, line := range lines {
		escaped := tview.Escape(line)
		if parser.IsTracebackLine(line) {
			builder.WriteString("[red]" + escaped + "[white]\n")
			continue
		}
		builder.WriteString(escaped + "\n")
	}
	return builder.String()
}
