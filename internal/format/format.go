package format

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/stahnma/gh-showcase/internal/page"
	"github.com/stahnma/gh-showcase/internal/widget"
)

var (
	green  = color.New(color.FgHiGreen).SprintFunc()
	yellow = color.New(color.FgHiYellow).SprintFunc()
	red    = color.New(color.FgHiRed).SprintFunc()
)

// WriteJSON writes indented JSON to w.
func WriteJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// StyleColor colours s by status style.
func StyleColor(style page.Style, s string) string {
	switch style {
	case page.StyleOK:
		return green(s)
	case page.StyleWarn:
		return yellow(s)
	case page.StyleError:
		return red(s)
	default:
		return s
	}
}

// StatusLine summarises a gate status on one line.
func StatusLine(st widget.GateStatus) string {
	if st.Snapshot == nil || st.Style == page.StyleUnknown {
		return StyleColor(page.StyleUnknown, widget.MsgStatusUnavailable)
	}

	var verdict string
	switch st.Style {
	case page.StyleError:
		verdict = fmt.Sprintf("Rate limit reached. Please try again after %d minute(s).", st.WaitMinutes)
	case page.StyleWarn:
		verdict = "Warning: API limit nearly exhausted."
	case page.StyleOK:
		verdict = "API healthy."
	default:
		verdict = string(st.Style)
	}
	return fmt.Sprintf("Remaining Requests: %d / %d, Reset Time: %s, %s",
		st.Snapshot.Remaining, st.Snapshot.Limit,
		st.Snapshot.Reset.Local().Format("15:04:05"),
		StyleColor(st.Style, verdict))
}

// Table creates a borderless left-aligned table on w.
func Table(w io.Writer, headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
