package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/donaldgifford/price-alert-api/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAlertTable(alerts []domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPRODUCT\tTARGET\tEMAIL\tFREQUENCY\tACTIVE\tLAST CHECKED\n")
	for i := range alerts {
		a := &alerts[i]
		lastChecked := "-"
		if a.LastChecked != nil {
			lastChecked = a.LastChecked.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t£%v\t%s\t%s\t%v\t%s\n",
			a.ID,
			truncate(a.ProductURL, 40),
			a.TargetPrice,
			a.Email,
			a.Frequency,
			a.IsActive,
			lastChecked,
		)
	}
	return tw.finish()
}

func printAlertDetail(a *domain.Alert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", a.ID)
	tw.writef("Product:\t%s\n", a.ProductURL)
	tw.writef("Target:\t£%v\n", a.TargetPrice)
	tw.writef("Email:\t%s\n", a.Email)
	tw.writef("Frequency:\t%s\n", a.Frequency)
	tw.writef("Active:\t%v\n", a.IsActive)
	if a.UserID != "" {
		tw.writef("User:\t%s\n", a.UserID)
	}
	tw.writef("Created:\t%s\n", a.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printNotificationTable(notifications []domain.Notification) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ALERT\tEMAIL\tCURRENT\tTARGET\tPRODUCT\n")
	for i := range notifications {
		n := &notifications[i]
		tw.writef("%s\t%s\t£%d\t£%v\t%s\n",
			n.AlertID,
			n.Email,
			n.CurrentPrice,
			n.TargetPrice,
			truncate(n.ProductURL, 40),
		)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
