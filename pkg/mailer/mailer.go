package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"go.uber.org/zap"
)

// Mailer sends plain-text notification mail. A nil *Mailer is a valid
// no-op instance, used when SMTP is not configured.
type Mailer struct {
	host string
	port string
	from string
	auth smtp.Auth
}

func New(host, port, user, password string) *Mailer {
	if host == "" {
		return nil
	}
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &Mailer{host: host, port: port, from: user, auth: auth}
}

// Send delivers mail asynchronously. Failures are logged, never returned:
// mail is a notification channel, not part of any transaction.
func (m *Mailer) Send(to []string, subject, body string) {
	if m == nil || len(to) == 0 {
		return
	}
	go func() {
		msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
			m.from, strings.Join(to, ", "), subject, body)
		addr := m.host + ":" + m.port
		if err := smtp.SendMail(addr, m.auth, m.from, to, []byte(msg)); err != nil {
			zap.L().Warn("mail send failed", zap.String("subject", subject), zap.Error(err))
		}
	}()
}
