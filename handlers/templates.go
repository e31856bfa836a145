package handlers

import (
	"bytes"
	"embed"
	"html/template"

	"videothingy/caption-board/internal/supabase"
	"videothingy/caption-board/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	captionsTemplate = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/captions.html"))
	helloTemplate    = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/hello.html"))
)

const pageHeading = "Caption Board"

type captionEntry struct {
	Key     string
	Content string
	Likes   int64
	Time    string
}

type captionsView struct {
	Title   string
	Heading string
	Limit   int
	Error   string
	Entries []captionEntry
}

type helloView struct {
	Title   string
	Heading string
	Message string
}

func newCaptionsView(outcome supabase.FetchOutcome) captionsView {
	view := captionsView{
		Title:   pageHeading,
		Heading: pageHeading,
		Limit:   supabase.CaptionsLimit,
		Error:   outcome.Message(),
	}
	if outcome.Err != nil {
		return view
	}
	view.Entries = make([]captionEntry, 0, len(outcome.Captions))
	for i, c := range outcome.Captions {
		view.Entries = append(view.Entries, newCaptionEntry(c, i))
	}
	return view
}

func newCaptionEntry(c models.Caption, index int) captionEntry {
	return captionEntry{
		Key:     c.Key(index),
		Content: c.DisplayContent(),
		Likes:   c.DisplayLikes(),
		Time:    c.DisplayTime(),
	}
}

func renderTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
