// Package renderer turns calendar views into markdown documents.
package renderer

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"text/template"
)

//go:embed *.md
var templates embed.FS

// RenderCalendar renders the whole calendar, one section per month.
//
// Records outside of the calendar year are listed at the end.
func RenderCalendar(c *Calendar) string {
	partials := map[string]string{
		"calendar_month": "calendar_month.md",
	}
	var b strings.Builder
	b.WriteString(renderTemplate("calendar", "calendar.md", partials, c))
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintf(w, "\n## Other dates\n\n")
		fmt.Fprintf(w, "| Date | Underlying | Profit (%s) | Trades |\n", c.Currency)
		fmt.Fprintf(w, "|:---|:---|---:|---:|\n")
		for _, o := range c.Others {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", o.Date, o.Record.Underlying, o.Record.Profit, o.Record.Trades)
		}
		return len(c.Others) > 0
	})
	return b.String()
}

// RenderMonth renders a single month section.
func RenderMonth(m Month) string {
	return renderTemplate("calendar_month", "calendar_month.md", nil, m)
}

// RenderStats renders the monthly statistics table.
func RenderStats(s *Stats) string {
	return renderTemplate("stats", "stats.md", nil, s)
}

// RenderHolidays renders the list of market holidays.
func RenderHolidays(h *Holidays) string {
	return renderTemplate("holidays", "holidays.md", nil, h)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
