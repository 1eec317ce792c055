package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rpupo63/portfolio-site/config"
	"github.com/rs/zerolog/log"
)

// PasswordChangeNotifier tells the site owner that the admin password changed.
type PasswordChangeNotifier interface {
	NotifyPasswordChanged(ctx context.Context, at time.Time) error
}

// NewPasswordChangeNotifier emails ADMIN_NOTIFY_EMAIL through Resend when it is configured and
// otherwise returns a notifier that does nothing.
func NewPasswordChangeNotifier(cfg map[string]string) PasswordChangeNotifier {
	recipient := config.GetString(cfg, "ADMIN_NOTIFY_EMAIL", "")
	mailer, ok := NewMailer(cfg)
	if !ok || recipient == "" {
		log.Debug().Msg("password change notifications disabled")
		return noopNotifier{}
	}
	return emailNotifier{mailer: mailer, recipient: recipient}
}

type noopNotifier struct{}

func (noopNotifier) NotifyPasswordChanged(context.Context, time.Time) error { return nil }

type emailNotifier struct {
	mailer    Mailer
	recipient string
}

func (n emailNotifier) NotifyPasswordChanged(ctx context.Context, at time.Time) error {
	body := fmt.Sprintf("<p>The portfolio admin password was changed at %s.</p>"+
		"<p>If this was not you, sign in and change it again.</p>", at.UTC().Format(time.RFC1123))
	return n.mailer.SendEmail(ctx, "Portfolio admin password changed", body, []string{n.recipient})
}
