package utils_mail

import (
	"fmt"
	"strings"

	"github.com/emersion/go-sasl"
	"github.com/emersion/go-smtp"
)

// Mailer delivers plain-text mail over SMTP with PLAIN auth.
type Mailer struct {
	Addr     string // host:port of the SMTP server
	From     string
	Password string
}

func New(addr, from, password string) *Mailer {
	return &Mailer{
		Addr:     addr,
		From:     from,
		Password: password,
	}
}

func (m *Mailer) Send(to, subject, body string) error {
	auth := sasl.NewPlainClient("", m.From, m.Password)

	msg := strings.NewReader(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.From, to, subject, body))

	return smtp.SendMail(m.Addr, auth, m.From, []string{to}, msg)
}

// SendResetCode mails a password-reset confirmation code.
func (m *Mailer) SendResetCode(to, code string) error {
	return m.Send(to, "Confirm Email", fmt.Sprintf("Your confirmation code is %s", code))
}
