package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
	}
}

type teamNotificationData struct {
	Lead        LeadNotification
	SubmittedAt string
	Dashboard   string
}

// SendTeamNotification emails every team recipient the full enquiry, with
// reply-to set to the customer so staff can answer directly.
func (s *EmailSender) SendTeamNotification(lead LeadNotification) error {
	displayName := lead.Company
	if displayName == "" {
		displayName = lead.FirstName + " " + lead.LastName
	}

	body, err := renderTemplate("team_notification.html", teamNotificationData{
		Lead:        lead,
		SubmittedAt: lead.CreatedAt.Format("Mon, 2 Jan 2006 15:04 MST"),
		Dashboard:   s.DashboardURL,
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.TeamFrom, s.FromName))
	m.SetHeader("To", s.TeamRecipients...)
	m.SetHeader("Reply-To", lead.Email)
	m.SetHeader("Subject", fmt.Sprintf("New Lead from %s", displayName))
	m.SetBody("text/html", body)

	return s.dialAndSend(m)
}

type customerAutoReplyData struct {
	Lead         LeadNotification
	Reference    string
	WhatsAppLink string
}

// SendCustomerAutoReply confirms receipt to the customer with a reference
// number and the 48-hour response promise.
func (s *EmailSender) SendCustomerAutoReply(lead LeadNotification, referenceNumber string) error {
	subject := "Your Tropico Retreats Enquiry"
	if lead.Destination != "" {
		subject = fmt.Sprintf("Your %s Retreat Enquiry", lead.Destination)
	}

	body, err := renderTemplate("customer_auto_reply.html", customerAutoReplyData{
		Lead:         lead,
		Reference:    referenceNumber,
		WhatsAppLink: whatsAppLink(s.WhatsAppNumber, referenceNumber),
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.CustomerFrom, s.FromName))
	m.SetHeader("To", lead.Email)
	m.SetHeader("Reply-To", s.CustomerFrom)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return s.dialAndSend(m)
}

func (s *EmailSender) dialAndSend(m *gomail.Message) error {
	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("SMTP send failed: %w", err)
	}
	return nil
}

func renderTemplate(name string, data interface{}) (string, error) {
	t, err := template.New(name).
		Funcs(template.FuncMap{"nl2br": NewlineToBr}).
		ParseFiles(filepath.Join("templates", name))
	if err != nil {
		return "", fmt.Errorf("failed to read email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return body.String(), nil
}

var nonDigits = regexp.MustCompile(`\D`)

func whatsAppLink(number, reference string) string {
	msg := url.QueryEscape(fmt.Sprintf(
		"Hi! I just submitted an enquiry on your website (Ref: %s) and had a quick question.", reference,
	))
	return fmt.Sprintf("https://wa.me/%s?text=%s", nonDigits.ReplaceAllString(number, ""), msg)
}

// NewlineToBr is exposed to the templates for message bodies.
func NewlineToBr(s string) template.HTML {
	escaped := template.HTMLEscapeString(s)
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}
