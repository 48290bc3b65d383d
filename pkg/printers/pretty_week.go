package printers

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/numa/pkg/mood"
	"tableflip.dev/numa/pkg/timeutil"
)

var nowFunc = time.Now

// Week prints the 7-day mood calendar, oldest day first. Days without a
// check-in render as an empty slot.
func (pp *PrettyPrint) Week(days []mood.DaySummary) {
	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)

	for _, d := range days {
		printer := l1
		if d.Entry != nil {
			printer = l2
		}
		_, _ = printer.Printf("%4s ", d.Day.Format("Mon"))
	}
	fmt.Print("\n")

	p := color.New()
	for _, d := range days {
		if d.Entry == nil {
			_, _ = l1.Print("   · ")
			continue
		}
		_, _ = p.Printf("%4s ", d.Entry.Emoji)
	}
	fmt.Print("\n")

	for _, d := range days {
		if d.Entry == nil {
			_, _ = l1.Print("     ")
			continue
		}
		band := mood.BandFor(d.Entry.Intensity)
		dot := color.New(band.Color())
		_, _ = dot.Printf("%4s ", "●")
	}
	fmt.Print("\n\n")
}

// CheckIns prints the most recent check-ins as a table.
func (pp *PrettyPrint) CheckIns(entries []mood.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" no check-ins yet\n\n")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "

	tbl.AddRow("WHEN", "MOOD", "INTENSITY", "BAND", "NOTE")
	for _, e := range entries {
		label := e.Emoji
		if m, ok := mood.Find(e.Emoji); ok {
			label = fmt.Sprintf("%s %s", m.Emoji, m.Label)
		}
		tbl.AddRow(
			timeutil.Ago(e.Date.Time, nowFunc()),
			label,
			fmt.Sprintf("%d/10", e.Intensity),
			mood.BandFor(e.Intensity).String(),
			e.Note,
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
