package gcal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"express-sms/internal/model"
	"express-sms/internal/pickup/repository"
	"express-sms/pkg/gcalendar"
	pkgLog "express-sms/pkg/log"
)

const (
	propList     = "list"
	propPriority = "priority"

	// reminderSpan keeps a created reminder inside the upcoming view for a day.
	reminderSpan = 24 * time.Hour
)

// ErrInvalidTimezone is returned when the configured timezone cannot be loaded.
var ErrInvalidTimezone = errors.New("invalid calendar timezone")

// CalendarClient abstracts the Google Calendar API for mocking.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
}

type implRepository struct {
	client     CalendarClient
	calendarID string
	timezone   string
	now        func() time.Time
	l          pkgLog.Logger
}

// New creates a reminder repository backed by Google Calendar events.
// Reminder list and priority are stored as private extended properties.
func New(client CalendarClient, calendarID, timezone string, l pkgLog.Logger) repository.ReminderRepository {
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
		now:        time.Now,
		l:          l,
	}
}

func (r *implRepository) GetUpcoming(ctx context.Context, daysAhead int) ([]model.Reminder, error) {
	now := r.now()
	events, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, daysAhead),
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: failed to list events: %v", err)
		return nil, err
	}

	reminders := make([]model.Reminder, 0, len(events))
	for _, ev := range events {
		reminders = append(reminders, eventToReminder(ev))
	}
	r.l.Debugf(ctx, "gcal repository: %d upcoming reminders in the next %d days", len(reminders), daysAhead)
	return reminders, nil
}

func (r *implRepository) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	start := r.now()
	if r.timezone != "" {
		loc, err := time.LoadLocation(r.timezone)
		if err != nil {
			r.l.Errorf(ctx, "gcal repository: invalid timezone %q: %v", r.timezone, err)
			return model.Reminder{}, fmt.Errorf("%w %q: %w", ErrInvalidTimezone, r.timezone, err)
		}
		start = start.In(loc)
	}

	ev, err := r.client.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.calendarID,
		Summary:     opt.Title,
		Description: opt.Notes,
		StartTime:   start,
		EndTime:     start.Add(reminderSpan),
		Timezone:    r.timezone,
		Private: map[string]string{
			propList:     opt.ListTitle,
			propPriority: strconv.Itoa(opt.Priority),
		},
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: failed to create event %q: %v", opt.Title, err)
		return model.Reminder{}, fmt.Errorf("create calendar event: %w", err)
	}
	return eventToReminder(*ev), nil
}

func eventToReminder(ev gcalendar.Event) model.Reminder {
	priority, _ := strconv.Atoi(ev.Private[propPriority])
	return model.Reminder{
		ID:       ev.ID,
		Title:    ev.Summary,
		Notes:    ev.Description,
		List:     ev.Private[propList],
		Priority: priority,
		DueAt:    ev.StartTime,
		Link:     ev.HtmlLink,
	}
}
