// internal/store/store.go
package store

import (
	"sync"
	"time"

	"github.com/Taha-HB/sit-council-system/internal/models"
)

// Store holds every mutable collection in process memory. It is
// constructed once in main and passed into the handler set; there is no
// ambient global instance. State does not survive a restart.
//
// The net/http server runs handlers on separate goroutines, so each
// collection carries its own RWMutex.
type Store struct {
	now func() time.Time

	usersMu sync.RWMutex
	users   []models.User

	meetingsMu sync.RWMutex
	meetings   []models.Meeting

	minutesMu sync.RWMutex
	minutes   []models.Minutes

	announcementsMu sync.RWMutex
	announcements   []models.Announcement
}

func New() *Store {
	return NewWithClock(time.Now)
}

// NewWithClock lets tests control id and timestamp generation.
func NewWithClock(now func() time.Time) *Store {
	return &Store{
		now:   now,
		users: seedUsers(),
	}
}

func (s *Store) Users() []models.User {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users
}

func (s *Store) UserByEmail(email string) (models.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) UserByID(id int64) (models.User, bool) {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()

	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (s *Store) MemberCount() int {
	s.usersMu.RLock()
	defer s.usersMu.RUnlock()
	return len(s.users)
}

func (s *Store) Meetings() []models.Meeting {
	s.meetingsMu.RLock()
	defer s.meetingsMu.RUnlock()

	meetings := make([]models.Meeting, len(s.meetings))
	copy(meetings, s.meetings)
	return meetings
}

// AddMeeting assigns the id and timestamps and appends. Ids are the
// creation time in milliseconds, so two submissions inside the same
// millisecond collide; known limitation carried over from the original
// deployment, not papered over here.
func (s *Store) AddMeeting(m models.Meeting) models.Meeting {
	s.meetingsMu.Lock()
	defer s.meetingsMu.Unlock()

	now := s.now()
	m.ID = now.UnixMilli()
	m.CreatedAt = now
	m.UpdatedAt = now
	s.meetings = append(s.meetings, m)
	return m
}

// ArchiveMeeting flips the one-way archived transition. Re-archiving an
// already archived meeting just restamps it.
func (s *Store) ArchiveMeeting(id int64) (models.Meeting, bool) {
	s.meetingsMu.Lock()
	defer s.meetingsMu.Unlock()

	for i := range s.meetings {
		if s.meetings[i].ID == id {
			now := s.now()
			s.meetings[i].Archived = true
			s.meetings[i].ArchivedAt = &now
			s.meetings[i].UpdatedAt = now
			return s.meetings[i], true
		}
	}
	return models.Meeting{}, false
}

func (s *Store) Minutes() []models.Minutes {
	s.minutesMu.RLock()
	defer s.minutesMu.RUnlock()

	minutes := make([]models.Minutes, len(s.minutes))
	copy(minutes, s.minutes)
	return minutes
}

func (s *Store) AddMinutes(m models.Minutes) models.Minutes {
	s.minutesMu.Lock()
	defer s.minutesMu.Unlock()

	now := s.now()
	m.ID = now.UnixMilli()
	m.CreatedAt = now
	s.minutes = append(s.minutes, m)
	return m
}

func (s *Store) Announcements() []models.Announcement {
	s.announcementsMu.RLock()
	defer s.announcementsMu.RUnlock()

	announcements := make([]models.Announcement, len(s.announcements))
	copy(announcements, s.announcements)
	return announcements
}

func (s *Store) AddAnnouncement(a models.Announcement) models.Announcement {
	s.announcementsMu.Lock()
	defer s.announcementsMu.Unlock()

	now := s.now()
	a.ID = now.UnixMilli()
	a.CreatedAt = now
	s.announcements = append(s.announcements, a)
	return a
}
