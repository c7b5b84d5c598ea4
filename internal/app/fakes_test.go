package app

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"projectpad/internal/model"
)

// fakeUserStore is an in-memory UserStore keyed by email and id.
type fakeUserStore struct {
	mu      sync.Mutex
	users   []*model.User
	err     error // returned by every method when set
	created int
}

func (f *fakeUserStore) Create(user *model.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	copied := *user
	f.users = append(f.users, &copied)
	f.created++
	return nil
}

func (f *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetByID(id string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

// fakeProjectStore is an in-memory ProjectStore preserving insertion order.
type fakeProjectStore struct {
	mu       sync.Mutex
	projects []*model.Project
	err      error
	listed   int
}

func (f *fakeProjectStore) Create(project *model.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if project.ID == "" {
		project.ID = uuid.NewString()
	}
	copied := *project
	f.projects = append(f.projects, &copied)
	return nil
}

func (f *fakeProjectStore) ListByUserID(userID string) ([]model.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.listed++
	out := make([]model.Project, 0)
	for _, p := range f.projects {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProjectStore) GetByID(id string) (*model.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.projects {
		if p.ID == id {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectStore) DeleteByID(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	kept := f.projects[:0]
	for _, p := range f.projects {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.projects = kept
	return nil
}

// fakeCache records cache traffic.
type fakeCache struct {
	mu          sync.Mutex
	lists       map[string][]model.Project
	invalidated []string
	setCalls    int
}

func newFakeCache() *fakeCache {
	return &fakeCache{lists: make(map[string][]model.Project)}
}

func (f *fakeCache) GetList(ctx context.Context, userID string) ([]model.Project, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	list, ok := f.lists[userID]
	return list, ok, nil
}

func (f *fakeCache) SetList(ctx context.Context, userID string, projects []model.Project) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists[userID] = projects
	f.setCalls++
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.lists, userID)
	f.invalidated = append(f.invalidated, userID)
	return nil
}

// fakePublisher records published activity events.
type fakePublisher struct {
	mu     sync.Mutex
	events []model.ActivityEvent
	err    error
}

func (f *fakePublisher) Publish(ctx context.Context, event model.ActivityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.events = append(f.events, event)
	return nil
}

func (f *fakePublisher) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e.Action)
	}
	return out
}
