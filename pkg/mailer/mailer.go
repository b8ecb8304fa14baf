package mailer

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/emersion/go-message/mail"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// Mailer sends re-engagement emails through the Gmail API using a service
// sender account (OAuth2 refresh token).
type Mailer struct {
	senderName    string
	senderAddress string
	clientID      string
	clientSecret  string
	refreshToken  string
}

// New creates a new Mailer for the configured sender account
func New(senderName, senderAddress, clientID, clientSecret, refreshToken string) *Mailer {
	return &Mailer{
		senderName:    senderName,
		senderAddress: senderAddress,
		clientID:      clientID,
		clientSecret:  clientSecret,
		refreshToken:  refreshToken,
	}
}

// Send composes a MIME message and dispatches it to the given recipients
func (m *Mailer) Send(ctx context.Context, to []string, subject, body string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients")
	}

	raw, err := m.compose(to, subject, body)
	if err != nil {
		return fmt.Errorf("failed to compose message: %w", err)
	}

	conf := &oauth2.Config{
		ClientID:     m.clientID,
		ClientSecret: m.clientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmail.GmailSendScope},
	}
	tokenSource := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: m.refreshToken})

	svc, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return fmt.Errorf("failed to create gmail service: %w", err)
	}

	message := &gmail.Message{
		Raw: base64.URLEncoding.EncodeToString(raw),
	}
	if _, err := svc.Users.Messages.Send("me", message).Do(); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("[Mailer] Sent email %q to %d recipient(s)", subject, len(to))
	return nil
}

// compose builds the RFC 822 message body
func (m *Mailer) compose(to []string, subject, body string) ([]byte, error) {
	var buf bytes.Buffer

	from := []*mail.Address{{Name: m.senderName, Address: m.senderAddress}}
	toAddrs := make([]*mail.Address, 0, len(to))
	for _, addr := range to {
		toAddrs = append(toAddrs, &mail.Address{Address: addr})
	}

	var h mail.Header
	h.SetDate(time.Now())
	h.SetAddressList("From", from)
	h.SetAddressList("To", toAddrs)
	h.SetSubject(subject)
	h.Set("Content-Type", "text/plain; charset=utf-8")

	w, err := mail.CreateSingleInlineWriter(&buf, h)
	if err != nil {
		return nil, err
	}
	if _, err := io.WriteString(w, body); err != nil {
		w.Close()
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
