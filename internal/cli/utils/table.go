package utils

import (
	"strings"
	"time"

	"gb2gh/internal/domain/record"

	"github.com/gosuri/uitable"
)

const maxTitleWidth = 60

func newTable() *uitable.Table {
	table := uitable.New()
	table.MaxColWidth = maxTitleWidth

	return table
}

func RecordTable(records []record.Record) string {
	table := newTable()
	table.AddRow("#", "KIND", "STATE", "COMMENTS", "ASSIGNEES", "TITLE")
	for _, r := range records {
		h := r.Info()
		table.AddRow(h.Number, r.Kind(), h.State, len(h.Comments), assignees(r), h.Title)
	}

	return table.String()
}

func assignees(r record.Record) string {
	issue, ok := r.(*record.Issue)
	if !ok || len(issue.Assignees) == 0 {
		return "-"
	}

	return strings.Join(issue.Assignees, ",")
}

// CommentTable lists the comments of every record under its number.
func CommentTable(records []record.Record) string {
	table := newTable()
	table.AddRow("#", "USER", "CREATED", "BODY")
	for _, r := range records {
		h := r.Info()
		for _, c := range h.Comments {
			table.AddRow(h.Number, c.User, c.Created.Format(time.RFC3339), firstLine(c.Body))
		}
	}

	return table.String()
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")

	return line
}

func PlanTable(actions []*record.Action) string {
	table := newTable()
	table.AddRow("#", "ACTION", "BASE", "COMMENTS", "CLOSE", "TITLE")
	for _, a := range actions {
		base := a.Base
		if base == "" {
			base = "-"
		}
		table.AddRow(a.Number, a.Kind, base, a.Comments, a.Close, a.Title)
	}

	return table.String()
}

func SummaryTable(s *record.Summary) string {
	table := newTable()
	table.AddRow("records", s.Records)
	table.AddRow("issues", s.Issues)
	table.AddRow("pull requests", s.PullRequests)
	table.AddRow("placeholders", s.Placeholders)
	table.AddRow("comments", s.Comments)
	table.AddRow("closed", s.Closed)

	return table.String()
}
