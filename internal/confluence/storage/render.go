// Package storage renders transcripts into Confluence storage-format XHTML.
package storage

import (
	"html"
	"strings"
	"time"

	"meeting-minutes/internal/model"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// Render converts t into a storage-format document. Every piece of transcript
// text is escaped. A nil loc renders the creation time in UTC.
func Render(t model.Transcript, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	var b strings.Builder

	b.WriteString("<h1>" + html.EscapeString(t.Title) + "</h1>\n")

	b.WriteString("<h2>Summary</h2>\n")
	b.WriteString("<p>" + html.EscapeString(t.Summary) + "</p>\n")

	writeList(&b, "Participants", t.Participants)
	writeList(&b, "Key Points", t.KeyPoints)
	writeList(&b, "Action Items", t.ActionItems)

	b.WriteString("<h2>Details</h2>\n<div>")
	for _, line := range strings.Split(t.Content, "\n") {
		b.WriteString("<p>" + html.EscapeString(strings.TrimRight(line, "\r")) + "</p>")
	}
	b.WriteString("</div>\n")

	b.WriteString("<hr/>\n")
	if !t.CreatedAt.IsZero() {
		b.WriteString("<p><em>Created: " + html.EscapeString(t.CreatedAt.In(loc).Format(timeLayout)) + "</em></p>\n")
	}
	b.WriteString("<p><em>Transcript ID: " + html.EscapeString(t.ID) + "</em></p>")

	return b.String()
}

func writeList(b *strings.Builder, heading string, entries []string) {
	b.WriteString("<h2>" + heading + "</h2>\n<ul>")
	for _, e := range entries {
		b.WriteString("<li>" + html.EscapeString(e) + "</li>")
	}
	b.WriteString("</ul>\n")
}
