package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	ht "html/template"
	"io"
	"strconv"
	"strings"
	tt "text/template"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/go-mail/mail/v2"
)

const sendAttempts = 3

//go:embed "templates"
var templateFS embed.FS

var templateFuncs = map[string]any{
	"seats": func(seats []int) string {
		parts := make([]string, len(seats))
		for i, seat := range seats {
			parts[i] = strconv.Itoa(seat)
		}
		return strings.Join(parts, ", ")
	},
	"datetime": func(t time.Time) string {
		return t.Format("Mon, 02 Jan 2006 15:04 MST")
	},
}

// SMTPMailer renders embedded templates and delivers them over SMTP. Each
// template defines a "subject", a "plainBody" and an "htmlBody".
type SMTPMailer struct {
	sender     string
	send       func(m ...*mail.Message) error
	newBackOff func() backoff.BackOff
}

func NewSMTPMailer(host string, port int, username, password, sender string) *SMTPMailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 5 * time.Second

	return &SMTPMailer{
		sender:     sender,
		send:       dialer.DialAndSend,
		newBackOff: defaultBackOff,
	}
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 2 * time.Second

	return b
}

func (m *SMTPMailer) Send(recipient, templateFile string, data any) error {
	subject, plainBody, htmlBody, err := render(templateFile, data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", recipient)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.AddAlternative("text/html", htmlBody)

	_, err = backoff.Retry(context.Background(), func() (struct{}, error) {
		return struct{}{}, m.send(msg)
	},
		backoff.WithBackOff(m.newBackOff()),
		backoff.WithMaxTries(sendAttempts),
	)
	if err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", templateFile, recipient, err)
	}

	return nil
}

func render(templateFile string, data any) (subject, plainBody, htmlBody string, err error) {
	textTmpl, err := tt.New("email").Funcs(templateFuncs).ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", "", err
	}

	subject, err = execute(textTmpl.ExecuteTemplate, "subject", data)
	if err != nil {
		return "", "", "", err
	}

	plainBody, err = execute(textTmpl.ExecuteTemplate, "plainBody", data)
	if err != nil {
		return "", "", "", err
	}

	htmlTmpl, err := ht.New("email").Funcs(templateFuncs).ParseFS(templateFS, "templates/"+templateFile)
	if err != nil {
		return "", "", "", err
	}

	htmlBody, err = execute(htmlTmpl.ExecuteTemplate, "htmlBody", data)
	if err != nil {
		return "", "", "", err
	}

	return strings.TrimSpace(subject), plainBody, htmlBody, nil
}

func execute(fn func(w io.Writer, name string, data any) error, name string, data any) (string, error) {
	buf := new(bytes.Buffer)

	err := fn(buf, name, data)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}
