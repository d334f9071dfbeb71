package mail

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/asconalumni/alumni-server/internal/model"
)

const resetSubject = "Reset your ASCON Alumni password"

var resetText = template.Must(template.New("reset.txt").Parse(`Hello {{.Name}},

We received a request to reset the password for your ASCON Alumni account.
Open the link below to choose a new password. It expires in {{.Expires}}.

{{.Link}}

If you did not ask for this, you can ignore this message.
`))

var resetHTML = htmltemplate.Must(htmltemplate.New("reset.html").Parse(`<p>Hello {{.Name}},</p>
<p>We received a request to reset the password for your ASCON Alumni account.
Open the link below to choose a new password. It expires in {{.Expires}}.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not ask for this, you can ignore this message.</p>
`))

type resetData struct {
	Name    string
	Link    string
	Expires string
}

// ResetMessage renders the password reset message for an account.
func ResetMessage(to, name, link string, ttl time.Duration) (model.MailMessage, error) {
	if name == "" {
		name = "there"
	}
	data := resetData{Name: name, Link: link, Expires: humanize(ttl)}

	var text, html bytes.Buffer
	if err := resetText.Execute(&text, data); err != nil {
		return model.MailMessage{}, fmt.Errorf("failed to render reset mail: %w", err)
	}
	if err := resetHTML.Execute(&html, data); err != nil {
		return model.MailMessage{}, fmt.Errorf("failed to render reset mail: %w", err)
	}

	return model.MailMessage{
		To:      to,
		Subject: resetSubject,
		Text:    text.String(),
		HTML:    html.String(),
	}, nil
}

func humanize(d time.Duration) string {
	switch {
	case d >= time.Hour && d%time.Hour == 0:
		if d == time.Hour {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", d/time.Hour)
	case d >= time.Minute && d%time.Minute == 0:
		if d == time.Minute {
			return "1 minute"
		}
		return fmt.Sprintf("%d minutes", d/time.Minute)
	default:
		return d.String()
	}
}
