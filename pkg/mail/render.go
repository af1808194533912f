package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"marketbrief/internal/model"
)

const (
	paragraphStyle = "margin:8px 0; font-family:Arial,Helvetica,sans-serif; line-height:1.6;"
	footer         = "Source: WSJ RSS feeds (headlines/abstracts only). This email summarizes permitted feed fields."
)

var htmlTemplate = template.Must(template.New("brief").Parse(`<html><body>
  <h2 style="margin:0 0 10px;">{{.Title}} — {{.Date}}</h2>
  <div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;line-height:1.6;">
    <strong>{{.Origin}}</strong>
  </div>
{{range .Paragraphs}}  <p style="{{$.ParagraphStyle}}">{{if .Lead}}<strong>{{.Lead}}</strong> {{end}}{{.Body}}</p>
{{end}}  <h4 style="margin-top:14px;">References</h4>
  <div style="font-family:Arial,Helvetica,sans-serif;font-size:13px;line-height:1.6;">
    {{if .References}}{{range $i, $r := .References}}{{if $i}}<br>{{end}}[{{$r.Index}}] <a href="{{$r.Link}}">{{$r.Title}}</a>{{end}}{{else}}{{.NoReferences}}{{end}}
  </div>
  <hr style="margin-top:16px;">
  <div style="font-size:12px;color:#888;">{{.Footer}}</div>
</body></html>
`))

type paragraph struct {
	Lead string
	Body string
}

type htmlData struct {
	Title          string
	Date           string
	Origin         string
	Paragraphs     []paragraph
	References     []model.Reference
	NoReferences   string
	Footer         string
	ParagraphStyle template.CSS
}

// Message is a rendered brief ready to send.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

// Render lays out the brief as plain text and HTML. title heads both
// bodies and the subject line.
func Render(b model.Brief, title string) (*Message, error) {
	date := b.Date.Format("Monday, Jan 02, 2006")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s — %s\n\n", title, date))
	sb.WriteString(fmt.Sprintf("%s\n%s\n\n", b.Origin, b.Text))
	sb.WriteString("References:\n")
	sb.WriteString(referencesText(b.References))

	data := htmlData{
		Title:          title,
		Date:           date,
		Origin:         b.Origin,
		Paragraphs:     splitParagraphs(b.Text),
		References:     b.References,
		NoReferences:   model.NoReferences,
		Footer:         footer,
		ParagraphStyle: template.CSS(paragraphStyle),
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}

	return &Message{
		Subject: fmt.Sprintf("%s — %s", title, b.Date.Format("Jan 02")),
		Text:    sb.String(),
		HTML:    buf.String(),
	}, nil
}

func referencesText(refs []model.Reference) string {
	if len(refs) == 0 {
		return model.NoReferences
	}
	lines := make([]string, len(refs))
	for i, r := range refs {
		lines[i] = fmt.Sprintf("[%d] %s %s", r.Index, r.Title, r.Link)
	}
	return strings.Join(lines, "\n")
}

// splitParagraphs breaks text on blank lines and separates a leading "N)"
// marker so it can be emphasised.
func splitParagraphs(text string) []paragraph {
	var paragraphs []paragraph
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		p := strings.TrimSpace(strings.Join(current, "\n"))
		current = nil
		if p == "" {
			return
		}
		lead, body := splitLead(p)
		paragraphs = append(paragraphs, paragraph{Lead: lead, Body: body})
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return paragraphs
}

func splitLead(p string) (string, string) {
	i := 0
	for i < len(p) && p[i] >= '0' && p[i] <= '9' {
		i++
	}
	if i == 0 || i >= len(p) || p[i] != ')' {
		return "", p
	}
	return p[:i+1], strings.TrimSpace(p[i+1:])
}
