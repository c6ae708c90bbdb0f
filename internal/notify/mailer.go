package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/safar/storefront/internal/config"
	"github.com/wneessen/go-mail"
)

// Sender delivers a single HTML message.
type Sender interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPSender builds a fresh client per send. Pooled SMTP connections go stale
// in a request-per-invocation hosting model, so nothing is reused between
// dispatches.
type SMTPSender struct {
	cfg      config.MailConfig
	fromName string
}

func NewSMTPSender(cfg config.MailConfig, fromName string) *SMTPSender {
	return &SMTPSender{cfg: cfg, fromName: fromName}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) error {
	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.User),
		mail.WithPassword(s.cfg.Password),
		mail.WithTimeout(15 * time.Second),
	}
	if s.cfg.Port == 465 {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create mail client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.cfg.User); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set recipient: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

// AdminEmail notifies the administrative address about a new order.
type AdminEmail struct {
	sender    Sender
	recipient string
}

func NewAdminEmail(sender Sender, recipient string) *AdminEmail {
	return &AdminEmail{sender: sender, recipient: recipient}
}

func (a *AdminEmail) Name() string { return "admin-email" }

func (a *AdminEmail) Notify(ctx context.Context, ev Event) error {
	body, err := renderAdminBody(ev)
	if err != nil {
		return fmt.Errorf("render admin mail: %w", err)
	}
	subject := fmt.Sprintf("New order received: #%s", ev.Order.OrderNumber)
	return a.sender.Send(ctx, a.recipient, subject, body)
}

// CustomerEmail sends the order confirmation to the customer.
type CustomerEmail struct {
	sender   Sender
	whatsapp string
}

func NewCustomerEmail(sender Sender, whatsappNumber string) *CustomerEmail {
	return &CustomerEmail{sender: sender, whatsapp: whatsappNumber}
}

func (c *CustomerEmail) Name() string { return "customer-email" }

func (c *CustomerEmail) Notify(ctx context.Context, ev Event) error {
	body, err := renderCustomerBody(ev, c.whatsapp)
	if err != nil {
		return fmt.Errorf("render customer mail: %w", err)
	}
	subject := fmt.Sprintf("Order Confirmation - #%s", ev.Order.OrderNumber)
	return c.sender.Send(ctx, ev.Order.CustomerEmail, subject, body)
}
