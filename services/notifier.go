package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/utils"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// TextSender delivers one SMS or WhatsApp message and returns the provider id.
type TextSender interface {
	SendText(ctx context.Context, channel, to, body string) (string, error)
}

// EmailClient sends one plain-text e-mail.
type EmailClient interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

type TwilioSender struct {
	client       *twilio.RestClient
	from         string
	whatsAppFrom string
}

func NewTwilioSender(accountSID, authToken, from, whatsAppFrom string) *TwilioSender {
	return &TwilioSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from:         from,
		whatsAppFrom: whatsAppFrom,
	}
}

func (s *TwilioSender) SendText(_ context.Context, channel, to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetBody(body)
	if channel == models.ChannelWhatsApp {
		params.SetTo("whatsapp:" + to)
		params.SetFrom("whatsapp:" + s.whatsAppFrom)
	} else {
		params.SetTo(to)
		params.SetFrom(s.from)
	}

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid == nil {
		return "", nil
	}
	return *resp.Sid, nil
}

type SendGridClient struct {
	apiKey string
}

func NewSendGridClient(apiKey string) *SendGridClient {
	return &SendGridClient{apiKey: apiKey}
}

func (c *SendGridClient) Send(_ context.Context, from, to, subject, body string) error {
	if c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if from == "" || to == "" {
		return fmt.Errorf("sendgrid: from and to are required")
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("Digital Tailor", from),
		subject,
		mail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)
	response, err := sendgrid.NewSendClient(c.apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", response.StatusCode, response.Body)
	}
	return nil
}

// Channels are the outbound channels the shop has switched on.
type Channels struct {
	SMS         bool
	WhatsApp    bool
	EmailDigest bool
}

// ChannelSettings reports the shop's current channel switches.
type ChannelSettings interface {
	Channels(ctx context.Context) (Channels, error)
}

// AccountChannels enables a channel when any tailor account enabled it.
type AccountChannels struct {
	Users repository.UserStore
}

func (a AccountChannels) Channels(ctx context.Context) (Channels, error) {
	users, err := a.Users.ListUsers(ctx)
	if err != nil {
		return Channels{}, err
	}
	var ch Channels
	for _, u := range users {
		ch.SMS = ch.SMS || u.SMSNotifications
		ch.WhatsApp = ch.WhatsApp || u.WhatsAppNotifications
		ch.EmailDigest = ch.EmailDigest || u.EmailDigest
	}
	return ch, nil
}

// Notifier pushes order messages to customers and records every attempt.
// A nil sender disables that transport.
type Notifier struct {
	texts       TextSender
	email       EmailClient
	settings    ChannelSettings
	logs        repository.NotificationLogStore
	logger      *zap.Logger
	countryCode string
	fromEmail   string
	now         func() time.Time
}

type NotifierConfig struct {
	Texts       TextSender
	Email       EmailClient
	Settings    ChannelSettings
	Logs        repository.NotificationLogStore
	Logger      *zap.Logger
	CountryCode string
	FromEmail   string
}

func NewNotifier(cfg NotifierConfig) *Notifier {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Notifier{
		texts:       cfg.Texts,
		email:       cfg.Email,
		settings:    cfg.Settings,
		logs:        cfg.Logs,
		logger:      logger,
		countryCode: cfg.CountryCode,
		fromEmail:   cfg.FromEmail,
		now:         time.Now,
	}
}

// NotifyCustomer sends msg over every enabled text channel. Delivery
// failures are logged and recorded, never returned.
func (n *Notifier) NotifyCustomer(ctx context.Context, c models.Customer, orderID string, msg models.Message) {
	if n == nil || n.texts == nil || n.settings == nil {
		return
	}
	ch, err := n.settings.Channels(ctx)
	if err != nil {
		n.logger.Error("Failed to load notification settings", zap.Error(err))
		return
	}

	to := utils.NormalizePhone(c.MobileNumber, n.countryCode)
	body := strings.TrimSpace(msg.English + "\n" + msg.Urdu)

	var channels []string
	if ch.WhatsApp {
		channels = append(channels, models.ChannelWhatsApp)
	}
	if ch.SMS {
		channels = append(channels, models.ChannelSMS)
	}

	for _, channel := range channels {
		sid, err := n.texts.SendText(ctx, channel, to, body)
		entry := models.NotificationLog{
			OrderID:    orderID,
			CustomerID: c.ID,
			MessageID:  msg.ID,
			Recipient:  to,
			Body:       body,
			Channel:    channel,
			Status:     models.NotificationSent,
			SentAt:     n.now(),
		}
		if err != nil {
			n.logger.Warn("Failed to send message",
				zap.String("order_id", orderID),
				zap.String("channel", channel),
				zap.Error(err))
			entry.Status = models.NotificationFailed
			entry.ErrorMessage = err.Error()
		} else {
			n.logger.Info("Message sent",
				zap.String("order_id", orderID),
				zap.String("channel", channel),
				zap.String("sid", sid))
		}
		n.record(ctx, entry)
	}
}

// SendDigest e-mails body to every address when the digest is enabled.
func (n *Notifier) SendDigest(ctx context.Context, to []string, subject, body string) int {
	if n == nil || n.email == nil || n.settings == nil {
		return 0
	}
	ch, err := n.settings.Channels(ctx)
	if err != nil || !ch.EmailDigest {
		return 0
	}

	sent := 0
	for _, addr := range to {
		entry := models.NotificationLog{
			Recipient: addr,
			Body:      body,
			Channel:   models.ChannelEmail,
			Status:    models.NotificationSent,
			SentAt:    n.now(),
		}
		if err := n.email.Send(ctx, n.fromEmail, addr, subject, body); err != nil {
			n.logger.Warn("Failed to send digest", zap.String("to", addr), zap.Error(err))
			entry.Status = models.NotificationFailed
			entry.ErrorMessage = err.Error()
		} else {
			sent++
		}
		n.record(ctx, entry)
	}
	return sent
}

func (n *Notifier) record(ctx context.Context, entry models.NotificationLog) {
	if n.logs == nil {
		return
	}
	if err := n.logs.CreateNotificationLog(ctx, entry); err != nil {
		n.logger.Error("Failed to log notification",
			zap.String("order_id", entry.OrderID),
			zap.Error(err))
	}
}
