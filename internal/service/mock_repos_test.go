package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/JamesR367/DigiDar/internal/model"
	"github.com/JamesR367/DigiDar/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users     map[int]*model.User
	nextID    int
	createErr error
	listErr   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	for _, u := range m.users {
		if u.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// ── Mock EventRepository ──

type mockEventRepo struct {
	users   *mockUserRepo
	recs    *mockRecurrenceRepo
	events  map[int]*model.Event
	nextID  int
	listErr error
}

func newMockEventRepo(users *mockUserRepo, recs *mockRecurrenceRepo) *mockEventRepo {
	return &mockEventRepo{users: users, recs: recs, events: make(map[int]*model.Event), nextID: 1}
}

func (m *mockEventRepo) Create(_ context.Context, event *model.Event) error {
	if _, ok := m.users.users[event.UserID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	event.ID = m.nextID
	m.nextID++
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepo) GetByID(_ context.Context, id int) (*model.Event, error) {
	if e, ok := m.events[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEventRepo) List(_ context.Context) ([]model.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	result := make([]model.Event, 0, len(m.events))
	for _, e := range m.events {
		result = append(result, *e)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *mockEventRepo) ListWithRecurrence(ctx context.Context) ([]model.Event, error) {
	events, err := m.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range events {
		if rec, ok := m.recs.recs[events[i].ID]; ok {
			events[i].Recurrence = rec
		}
	}
	return events, nil
}

// ── Mock RecurrenceRepository ──

type mockRecurrenceRepo struct {
	events *mockEventRepo
	recs   map[int]*model.EventRecurrence
}

func newMockRecurrenceRepo() *mockRecurrenceRepo {
	return &mockRecurrenceRepo{recs: make(map[int]*model.EventRecurrence)}
}

func (m *mockRecurrenceRepo) Create(_ context.Context, rec *model.EventRecurrence) error {
	if _, ok := m.events.events[rec.EventID]; !ok {
		return gorm.ErrForeignKeyViolated
	}
	if _, ok := m.recs[rec.EventID]; ok {
		return gorm.ErrDuplicatedKey
	}
	m.recs[rec.EventID] = rec
	return nil
}

func (m *mockRecurrenceRepo) GetByEventID(_ context.Context, eventID int) (*model.EventRecurrence, error) {
	if r, ok := m.recs[eventID]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// ── 聚合 ──

type mockRepos struct {
	users  *mockUserRepo
	events *mockEventRepo
	recs   *mockRecurrenceRepo
}

func newMockRepository() (*repository.Repository, *mockRepos) {
	users := newMockUserRepo()
	recs := newMockRecurrenceRepo()
	events := newMockEventRepo(users, recs)
	recs.events = events

	repo := &repository.Repository{
		User:       users,
		Event:      events,
		Recurrence: recs,
	}
	return repo, &mockRepos{users: users, events: events, recs: recs}
}
