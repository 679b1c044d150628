package service

import (
	"sync"
	"time"

	"github.com/HenricoTaiete/trabalho-Scar/internal/models"
	"github.com/HenricoTaiete/trabalho-Scar/internal/repository"
)

// fakeUserRepo is an in-memory UserRepository with the same sentinel
// semantics as the Postgres implementation, including unique-username
// enforcement.
type fakeUserRepo struct {
	mu     sync.Mutex
	nextID int64
	users  map[int64]models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]models.User)}
}

func (f *fakeUserRepo) CreateUser(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) GetUserByUsername(username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			found := u
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetUserByID(id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	found := u
	return &found, nil
}

func (f *fakeUserRepo) UpdateUser(user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	for id, u := range f.users {
		if id != user.ID && u.Username == user.Username {
			return repository.ErrDuplicate
		}
	}
	user.CreatedAt = existing.CreatedAt
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) DeleteUser(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

func (f *fakeUserRepo) ListUsers() ([]models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]models.User, 0, len(f.users))
	for id := int64(1); id <= f.nextID; id++ {
		if u, ok := f.users[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

type fakeTagRepo struct {
	mu     sync.Mutex
	nextID int64
	tags   map[int64]models.RFIDTag
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[int64]models.RFIDTag)}
}

func (f *fakeTagRepo) CreateTag(tag *models.RFIDTag) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.TagUID == tag.TagUID {
			return repository.ErrDuplicate
		}
	}
	f.nextID++
	tag.ID = f.nextID
	tag.CreatedAt = time.Now()
	f.tags[tag.ID] = *tag
	return nil
}

func (f *fakeTagRepo) GetTagByUID(tagUID string) (*models.RFIDTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, t := range f.tags {
		if t.TagUID == tagUID {
			found := t
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTagRepo) ListTags() ([]models.RFIDTag, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tags := make([]models.RFIDTag, 0, len(f.tags))
	for id := int64(1); id <= f.nextID; id++ {
		if t, ok := f.tags[id]; ok {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (f *fakeTagRepo) DeleteTag(id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.tags[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.tags, id)
	return nil
}
