package audit

import (
	"strings"

	"github.com/rs/zerolog"
)

// Logger records business events (registrations, logins, account and product
// mutations) as structured audit entries. It backs the services' audit hook.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{
		log: log.With().Bool("audit", true).Logger(),
	}
}

// Event is the sink wired into Service.WithAudit. Email values are masked
// before they reach the log stream.
func (l *Logger) Event(action string, fields map[string]string) {
	evt := l.log.Info().Str("action", action)
	for k, v := range fields {
		if k == "email" || k == "owner" {
			v = maskEmail(v)
		}
		evt = evt.Str(k, v)
	}
	evt.Msg("audit")
}

// maskEmail partially masks an email for privacy in logs.
func maskEmail(email string) string {
	at := strings.IndexByte(email, '@')
	if at < 0 || len(email) < 5 {
		return "***"
	}
	if at < 2 {
		return email[:1] + "***" + email[at:]
	}
	return email[:2] + "***" + email[at:]
}
