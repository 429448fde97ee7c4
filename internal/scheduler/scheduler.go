package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/ellinika/internal/database"
	"github.com/go-co-op/gocron"
)

// Default reminder window, inclusive, in the configured time zone
const (
	DefaultNotificationStartHour = 9
	DefaultNotificationEndHour   = 21
)

// DueSource reports how many reviews each user has waiting
type DueSource interface {
	DueCountsByUser(ctx context.Context, now time.Time) ([]database.UserDueCount, error)
}

// Notifier delivers a reminder to a user
type Notifier interface {
	SendReminder(ctx context.Context, user database.UserDueCount) error
}

// Config controls when reminders go out
type Config struct {
	StartHour int
	EndHour   int
	Location  *time.Location
}

// Scheduler manages scheduled tasks for the application
type Scheduler struct {
	scheduler *gocron.Scheduler
	source    DueSource
	notifier  Notifier
	config    Config
	log       *slog.Logger
	now       func() time.Time
}

// New creates a new scheduler instance
func New(source DueSource, notifier Notifier, config Config, log *slog.Logger) *Scheduler {
	if config.Location == nil {
		config.Location = time.UTC
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(config.Location),
		source:    source,
		notifier:  notifier,
		config:    config,
		log:       log.With("component", "scheduler"),
		now:       time.Now,
	}
}

// Start begins running all scheduled tasks
func (s *Scheduler) Start() error {
	// Schedule hourly check for users who need notifications
	_, err := s.scheduler.Every(1).Hour().Do(func() {
		if _, err := s.CheckAndSendReminders(context.Background()); err != nil {
			s.log.Error("reminder check failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule reminders: %w", err)
	}

	// Start the scheduler in a non-blocking manner
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// CheckAndSendReminders notifies every user with due reviews, if the current
// hour is inside the reminder window. It returns the number of reminders sent.
func (s *Scheduler) CheckAndSendReminders(ctx context.Context) (int, error) {
	now := s.now()
	currentHour := now.In(s.config.Location).Hour()

	if currentHour < s.config.StartHour || currentHour > s.config.EndHour {
		s.log.Debug("outside notification hours, skipping reminders",
			"hour", currentHour,
			"start_hour", s.config.StartHour,
			"end_hour", s.config.EndHour)
		return 0, nil
	}

	users, err := s.source.DueCountsByUser(ctx, now.UTC().Truncate(time.Second))
	if err != nil {
		return 0, fmt.Errorf("failed to get users with due reviews: %w", err)
	}

	sent := 0
	for _, user := range users {
		if user.DueCount == 0 {
			continue
		}
		if err := s.notifier.SendReminder(ctx, user); err != nil {
			s.log.Error("failed to send reminder", "user_id", user.UserID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

// LogNotifier writes reminders to the log; delivery is left to whatever consumes it
type LogNotifier struct {
	log *slog.Logger
}

// NewLogNotifier creates a notifier backed by log
func NewLogNotifier(log *slog.Logger) *LogNotifier {
	if log == nil {
		log = slog.Default()
	}
	return &LogNotifier{log: log.With("component", "reminders")}
}

// SendReminder implements Notifier
func (n *LogNotifier) SendReminder(ctx context.Context, user database.UserDueCount) error {
	n.log.InfoContext(ctx, "reviews due",
		"user_id", user.UserID,
		"code", user.Code,
		"display_name", user.DisplayName,
		"due_count", user.DueCount)
	return nil
}
