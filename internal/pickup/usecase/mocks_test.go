package usecase_test

import (
	"context"
	"errors"
	"strings"

	"express-sms/internal/model"
	"express-sms/internal/pickup/repository"
)

type mockSource struct {
	messages []model.Message
	err      error
	limit    int
}

func (m *mockSource) ReadRecent(ctx context.Context, limit int) ([]model.Message, error) {
	m.limit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.messages, nil
}

type mockReminders struct {
	upcoming      []model.Reminder
	created       []repository.CreateReminderOptions
	upcomingCalls int
	daysAhead     int
	failOn        string // fail CreateReminder when the title contains this
	failUpcoming  bool
}

func (m *mockReminders) GetUpcoming(ctx context.Context, daysAhead int) ([]model.Reminder, error) {
	m.upcomingCalls++
	m.daysAhead = daysAhead
	if m.failUpcoming {
		return nil, errors.New("calendar unavailable")
	}
	return m.upcoming, nil
}

func (m *mockReminders) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	if m.failOn != "" && strings.Contains(opt.Title, m.failOn) {
		return model.Reminder{}, errors.New("calendar insert failed")
	}
	m.created = append(m.created, opt)
	return model.Reminder{ID: "r-1", Title: opt.Title}, nil
}

type mockNotifier struct {
	sent []repository.NotifyOptions
	fail bool
}

func (m *mockNotifier) Send(ctx context.Context, opt repository.NotifyOptions) error {
	if m.fail {
		return errors.New("telegram down")
	}
	m.sent = append(m.sent, opt)
	return nil
}

type mockStore struct {
	data    map[string][]string
	history [][]string // every value written, in order
	getErr  error
	setErr  error
}

func newMockStore() *mockStore {
	return &mockStore{data: map[string][]string{}}
}

func (m *mockStore) Get(ctx context.Context, key string) ([]string, bool, error) {
	if m.getErr != nil {
		return nil, false, m.getErr
	}
	v, ok := m.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]string, len(v))
	copy(out, v)
	return out, true, nil
}

func (m *mockStore) Set(ctx context.Context, key string, values []string) error {
	if m.setErr != nil {
		return m.setErr
	}
	v := make([]string, len(values))
	copy(v, values)
	m.data[key] = v
	m.history = append(m.history, v)
	return nil
}
