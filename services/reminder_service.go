package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"digitaltailor-backend/models"
	"digitaltailor-backend/repository"
	"digitaltailor-backend/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const DefaultReminderSchedule = "0 9 * * *"

// ReminderService reminds customers the day before their delivery date and
// mails the tailor a digest of what is due.
type ReminderService struct {
	store     repository.DirectoryReader
	templates repository.TemplateStore
	users     repository.UserStore
	orders    *OrderService
	notifier  *Notifier
	logger    *zap.Logger
	cron      *cron.Cron
	now       func() time.Time
}

func NewReminderService(
	store repository.DirectoryReader,
	templates repository.TemplateStore,
	users repository.UserStore,
	orders *OrderService,
	notifier *Notifier,
	logger *zap.Logger,
) *ReminderService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderService{
		store:     store,
		templates: templates,
		users:     users,
		orders:    orders,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
	}
}

// StartScheduler registers the daily job on schedule and starts the cron
// runner. Stop it with Stop.
func (s *ReminderService) StartScheduler(schedule string) error {
	if schedule == "" {
		schedule = DefaultReminderSchedule
	}
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		s.SendDeliveryReminders(ctx)
	}); err != nil {
		return fmt.Errorf("invalid reminder schedule %q: %w", schedule, err)
	}

	c.Start()
	s.cron = c
	s.logger.Info("Reminder scheduler started", zap.String("schedule", schedule))
	return nil
}

func (s *ReminderService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// ReminderResult counts what one run did.
type ReminderResult struct {
	Due        int `json:"due"`
	Reminded   int `json:"reminded"`
	Skipped    int `json:"skipped"`
	DigestSent int `json:"digestSent"`
}

// SendDeliveryReminders handles every undelivered order due tomorrow.
// An order already reminded today is skipped so reruns are harmless.
func (s *ReminderService) SendDeliveryReminders(ctx context.Context) ReminderResult {
	s.logger.Info("Starting delivery reminder processing...")
	var result ReminderResult

	now := s.now()
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch orders", zap.Error(err))
		return result
	}
	customers, err := s.store.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch customers", zap.Error(err))
		return result
	}

	tmpl := s.reminderTemplate(ctx)
	due := DueTomorrow(orders, now)
	result.Due = len(due)

	var digest []string
	for _, o := range due {
		name := CustomerDisplayName(customers, o.CustomerID)
		digest = append(digest, fmt.Sprintf("%s  %s  %s  due %s",
			o.ID, name, o.Measurements.SuitType, o.Payment.RemainingAmount.StringFixed(0)))

		urdu, english := tmpl.Render(name, o)
		if remindedToday(o, english, now) {
			result.Skipped++
			continue
		}
		if _, err := s.orders.SendMessage(ctx, o.ID, urdu, english); err != nil {
			s.logger.Error("Failed to send delivery reminder",
				zap.String("order_id", o.ID), zap.Error(err))
			continue
		}
		result.Reminded++
	}

	if len(due) > 0 {
		result.DigestSent = s.sendDigest(ctx, now, digest)
	}

	s.logger.Info("Delivery reminder processing completed",
		zap.Int("due", result.Due),
		zap.Int("reminded", result.Reminded),
		zap.Int("skipped", result.Skipped))
	return result
}

// DueTomorrow keeps undelivered orders whose delivery date is the day after now.
func DueTomorrow(orders []models.Order, now time.Time) []models.Order {
	out := []models.Order{}
	for _, o := range orders {
		if o.Status == models.StatusDelivered {
			continue
		}
		d, err := utils.ParseISODate(o.Measurements.DeliveryDate, now.Location())
		if err != nil {
			continue
		}
		if utils.DaysBetween(now, d) == 1 {
			out = append(out, o)
		}
	}
	return out
}

func remindedToday(o models.Order, english string, now time.Time) bool {
	for _, m := range o.Messages {
		if utils.DaysBetween(m.Timestamp, now) != 0 {
			// newest first, so nothing older can match
			return false
		}
		if m.English == english {
			return true
		}
	}
	return false
}

func (s *ReminderService) reminderTemplate(ctx context.Context) models.MessageTemplate {
	if s.templates == nil {
		return models.DefaultDeliveryReminder
	}
	t, err := s.templates.GetTemplateByKey(ctx, models.TemplateDeliveryReminder)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("Failed to load reminder template, using default", zap.Error(err))
		}
		return models.DefaultDeliveryReminder
	}
	if !t.IsActive {
		return models.DefaultDeliveryReminder
	}
	return t
}

func (s *ReminderService) sendDigest(ctx context.Context, now time.Time, lines []string) int {
	if s.users == nil {
		return 0
	}
	users, err := s.users.ListUsers(ctx)
	if err != nil {
		s.logger.Error("Failed to fetch users for digest", zap.Error(err))
		return 0
	}

	var to []string
	for _, u := range users {
		if u.EmailDigest && u.Email != "" {
			to = append(to, u.Email)
		}
	}
	if len(to) == 0 {
		return 0
	}

	subject := fmt.Sprintf("Orders due %s", now.AddDate(0, 0, 1).Format(utils.ISODate))
	body := strings.Join(lines, "\n")
	return s.notifier.SendDigest(ctx, to, subject, body)
}
