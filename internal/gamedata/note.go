package gamedata

import (
	"strings"
	"text/template"
)

// NoteData fills in the intro note.
type NoteData struct {
	MaxMisses   int
	SaveCommand string
	SaveDir     string
}

// RenderNote returns the intro note shown when a session starts.
func RenderNote(data NoteData) (string, error) {
	text, err := loadText("note.txt")
	if err != nil {
		return "", err
	}
	tmpl, err := template.New("note").Parse(text)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}
