package store

import (
	"context"
	"sync"
	"time"

	"github.com/Orbtrix-Space/Orbtrix-website/internal/models"
	apperrors "github.com/Orbtrix-Space/Orbtrix-website/pkg/errors"
	"github.com/google/uuid"
)

// MemoryStore keeps everything in process memory. A single mutex guards both
// collections so the waitlist check-and-insert is atomic.
type MemoryStore struct {
	mu sync.RWMutex

	contacts     map[string]models.ContactSubmission
	contactOrder []string

	waitlist      map[string]models.WaitlistEntry
	waitlistOrder []string
	// waitlistKeys maps the lowercased email to the entry id.
	waitlistKeys map[string]string

	now   func() time.Time
	newID func() string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contacts:     make(map[string]models.ContactSubmission),
		waitlist:     make(map[string]models.WaitlistEntry),
		waitlistKeys: make(map[string]string),
		now:          func() time.Time { return time.Now().UTC() },
		newID:        uuid.NewString,
	}
}

func (s *MemoryStore) CreateContactSubmission(_ context.Context, input models.ContactInput) (models.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.freshID(func(id string) bool {
		_, taken := s.contacts[id]
		return taken
	})
	if err != nil {
		return models.ContactSubmission{}, err
	}

	submission := models.ContactSubmission{
		ID:           id,
		Name:         input.Name,
		Organization: input.Organization,
		Email:        input.Email,
		Message:      input.Message,
		CreatedAt:    s.now(),
	}

	s.contacts[id] = submission
	s.contactOrder = append(s.contactOrder, id)

	return submission, nil
}

func (s *MemoryStore) ListContactSubmissions(_ context.Context) ([]models.ContactSubmission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submissions := make([]models.ContactSubmission, 0, len(s.contactOrder))
	for _, id := range s.contactOrder {
		submissions = append(submissions, s.contacts[id])
	}

	return submissions, nil
}

func (s *MemoryStore) AddToWaitlist(_ context.Context, input models.WaitlistInput) (models.WaitlistEntry, error) {
	key := models.WaitlistKey(input.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.waitlistKeys[key]; exists {
		return models.WaitlistEntry{}, apperrors.NewAlreadyExistsError(alreadyOnWaitlistMessage, nil)
	}

	id, err := s.freshID(func(id string) bool {
		_, taken := s.waitlist[id]
		return taken
	})
	if err != nil {
		return models.WaitlistEntry{}, err
	}

	entry := models.WaitlistEntry{
		ID:        id,
		Email:     input.Email,
		EmailKey:  key,
		CreatedAt: s.now(),
	}

	s.waitlist[id] = entry
	s.waitlistOrder = append(s.waitlistOrder, id)
	s.waitlistKeys[key] = id

	return entry, nil
}

func (s *MemoryStore) IsOnWaitlist(_ context.Context, email string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, exists := s.waitlistKeys[models.WaitlistKey(email)]
	return exists, nil
}

func (s *MemoryStore) ListWaitlistEntries(_ context.Context) ([]models.WaitlistEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]models.WaitlistEntry, 0, len(s.waitlistOrder))
	for _, id := range s.waitlistOrder {
		entries = append(entries, s.waitlist[id])
	}

	return entries, nil
}

func (s *MemoryStore) Ping(_ context.Context) error {
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}

// freshID must be called with the write lock held. Repeated collisions are
// reported as an internal fault.
func (s *MemoryStore) freshID(taken func(string) bool) (string, error) {
	const attempts = 3

	for i := 0; i < attempts; i++ {
		if id := s.newID(); id != "" && !taken(id) {
			return id, nil
		}
	}

	return "", apperrors.NewInternalServerError("unable to allocate a unique id", nil)
}
