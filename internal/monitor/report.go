package monitor

import (
	"fmt"
	"io"
	"time"

	"github.com/yildizm/go-termfmt"
)

// WriteReport writes a session summary as a tree
func WriteReport(w io.Writer, s Snapshot, opts *termfmt.TerminalOptions) error {
	if opts == nil {
		opts = termfmt.DefaultOptions()
	}

	items := []termfmt.TreeItem{
		{Label: "Uptime", Value: s.Uptime.Round(time.Millisecond).String()},
		{Label: "Runs", Value: fmt.Sprintf("%d (%d failed)", s.Runs, s.FailedRuns)},
		{Label: "Tokens Analyzed", Value: fmt.Sprintf("%d", s.Tokens)},
	}

	if len(s.Operations) > 0 {
		children := make([]termfmt.TreeItem, 0, len(s.Operations))
		for i, op := range s.Operations {
			children = append(children, termfmt.TreeItem{
				Label: string(op.Operation),
				Value: fmt.Sprintf("%d× avg %s max %s", op.Count, round(op.AvgTime), round(op.MaxTime)),
				Last:  i == len(s.Operations)-1,
			})
		}
		items = append(items, termfmt.TreeItem{Label: "Timings", Children: children})
	}
	items[len(items)-1].Last = true

	_, err := fmt.Fprintf(w, "%s Session Summary\n%s\n", termfmt.GetEmoji("statistics", opts), termfmt.TreeViewWithOptions(items, opts))
	return err
}

func round(d time.Duration) time.Duration {
	if d >= time.Millisecond {
		return d.Round(time.Millisecond)
	}
	return d.Round(time.Microsecond)
}
