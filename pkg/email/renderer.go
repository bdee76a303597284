package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// ReceivedLayout is how submission timestamps are printed in notification emails.
const ReceivedLayout = "Monday, January 2, 2006 at 3:04 PM MST"

const acknowledgmentSubject = "Thank you for reaching out!"

// RendererConfig holds the operator-side values every rendered email needs.
type RendererConfig struct {
	FromAddress string         // Sending account, used as From on every message
	Recipient   string         // Notification inbox; empty means FromAddress
	OwnerName   string         // Persona signing acknowledgments
	OwnerTitle  string         // Signature line under OwnerName
	Location    *time.Location // Zone for ReceivedLayout; nil means UTC
}

// Renderer builds notification and acknowledgment messages. It holds no mutable state and
// is safe for concurrent use.
type Renderer struct {
	cfg RendererConfig
}

// NewRenderer creates a renderer with defaults applied.
func NewRenderer(cfg RendererConfig) *Renderer {
	if cfg.Recipient == "" {
		cfg.Recipient = cfg.FromAddress
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Renderer{cfg: cfg}
}

type notificationView struct {
	ContactEmailData
	ReceivedAt string
}

type acknowledgmentView struct {
	ContactEmailData
	OwnerName  string
	OwnerTitle string
}

// Notification renders the email that tells the operator about a new submission.
// The sender's address goes to Reply-To; From stays on the operator's account.
func (r *Renderer) Notification(data ContactEmailData, now time.Time) (*Message, error) {
	view := notificationView{
		ContactEmailData: data,
		ReceivedAt:       now.In(r.cfg.Location).Format(ReceivedLayout),
	}

	html, err := executeHTML(notificationHTML, view)
	if err != nil {
		return nil, err
	}
	text, err := executeText(notificationText, view)
	if err != nil {
		return nil, err
	}

	subject := data.Subject
	if subject == "" {
		subject = fmt.Sprintf("New Portfolio Contact from %s", data.SenderName)
	}

	return &Message{
		FromName: data.SenderName,
		From:     r.cfg.FromAddress,
		To:       r.cfg.Recipient,
		ReplyTo:  data.SenderEmail,
		Subject:  subject,
		HTML:     html,
		Text:     text,
	}, nil
}

// Acknowledgment renders the auto-reply sent back to the submitter.
func (r *Renderer) Acknowledgment(data ContactEmailData) (*Message, error) {
	view := acknowledgmentView{
		ContactEmailData: data,
		OwnerName:        r.cfg.OwnerName,
		OwnerTitle:       r.cfg.OwnerTitle,
	}

	html, err := executeHTML(acknowledgmentHTML, view)
	if err != nil {
		return nil, err
	}
	text, err := executeText(acknowledgmentText, view)
	if err != nil {
		return nil, err
	}

	return &Message{
		FromName: r.cfg.OwnerName,
		From:     r.cfg.FromAddress,
		To:       data.SenderEmail,
		Subject:  acknowledgmentSubject,
		HTML:     html,
		Text:     text,
	}, nil
}

func executeHTML(tmpl *htmltemplate.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

func executeText(tmpl *texttemplate.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}

// quote prefixes every line with "> ".
func quote(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "> " + line
	}
	return strings.Join(lines, "\n")
}

var (
	notificationHTML   = htmltemplate.Must(htmltemplate.New("notification.html").Parse(notificationHTMLSource))
	notificationText   = texttemplate.Must(texttemplate.New("notification.txt").Parse(notificationTextSource))
	acknowledgmentHTML = htmltemplate.Must(htmltemplate.New("acknowledgment.html").Parse(acknowledgmentHTMLSource))
	acknowledgmentText = texttemplate.Must(texttemplate.New("acknowledgment.txt").Funcs(texttemplate.FuncMap{"quote": quote}).Parse(acknowledgmentTextSource))
)

const notificationHTMLSource = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>New Contact Form Submission</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%); color: white; padding: 30px 20px; border-radius: 12px 12px 0 0; text-align: center; }
        .content { padding: 30px 20px; background: #f8fafc; }
        .card { background: white; padding: 20px; border-radius: 10px; margin-bottom: 20px; }
        .label { font-weight: bold; color: #1e293b; }
        .message-box { background: #f8fafc; padding: 15px; border-radius: 8px; border: 1px solid #e2e8f0; white-space: pre-wrap; }
        .footer { background: #1e293b; color: #94a3b8; padding: 25px 20px; border-radius: 0 0 12px 12px; text-align: center; font-size: 13px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>New Portfolio Contact</h1>
            <p>Someone wants to work with you!</p>
        </div>
        <div class="content">
            <div class="card">
                <h3>Contact Information</h3>
                <p><span class="label">Name:</span> {{.SenderName}}</p>
                <p><span class="label">Email:</span> <a href="mailto:{{.SenderEmail}}">{{.SenderEmail}}</a></p>
                {{- if .Subject}}
                <p><span class="label">Subject:</span> {{.Subject}}</p>
                {{- end}}
            </div>
            <div class="card">
                <h3>Message</h3>
                <div class="message-box">{{.Message}}</div>
            </div>
        </div>
        <div class="footer">
            <p><strong>Received:</strong> {{.ReceivedAt}}</p>
            <p>Reply to this email to respond directly to {{.SenderName}}</p>
            <p>Sent from your Portfolio Contact Form</p>
        </div>
    </div>
</body>
</html>`

const notificationTextSource = `New Contact Form Submission

Name: {{.SenderName}}
Email: {{.SenderEmail}}
Subject: {{if .Subject}}{{.Subject}}{{else}}No subject{{end}}

Message:
{{.Message}}

---
Received: {{.ReceivedAt}}
Reply to this email to respond directly to {{.SenderName}}.
`

const acknowledgmentHTMLSource = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you for reaching out!</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; color: #374151; }
        .container { max-width: 600px; margin: 0 auto; border-radius: 12px; overflow: hidden; }
        .header { background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%); color: white; padding: 30px 20px; text-align: center; }
        .content { padding: 30px 20px; background: white; font-size: 16px; line-height: 1.6; }
        .quote { background: #f8fafc; padding: 20px; border-radius: 10px; margin: 20px 0; border-left: 4px solid #6366f1; }
        .quote-body { color: #64748b; white-space: pre-wrap; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Thank you for reaching out!</h1>
            <p>I'll get back to you soon</p>
        </div>
        <div class="content">
            <p>Hi {{.SenderName}},</p>
            <p>Thank you for your message! I've received your inquiry and will get back to you within 24-48 hours.</p>
            <div class="quote">
                <p><strong>Your message:</strong></p>
                <blockquote class="quote-body">{{.Message}}</blockquote>
            </div>
            <p>
                Best regards,<br>
                <strong>{{.OwnerName}}</strong><br>
                {{.OwnerTitle}}
            </p>
        </div>
    </div>
</body>
</html>`

const acknowledgmentTextSource = `Hi {{.SenderName}},

Thank you for your message! I've received your inquiry and will get back to you within 24-48 hours.

Your message:
{{quote .Message}}

Best regards,
{{.OwnerName}}
{{.OwnerTitle}}
`
