package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/NisithAkalanka/SportNest-sub001/internal/email"
	"github.com/NisithAkalanka/SportNest-sub001/internal/metrics"
	"github.com/NisithAkalanka/SportNest-sub001/internal/user"
	"github.com/NisithAkalanka/SportNest-sub001/internal/venue"
)

var (
	ErrNotFound         = errors.New("session not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrInvalidDate      = errors.New("invalid date")
	ErrForbidden        = errors.New("can only modify own sessions")
	ErrStoreUnavailable = errors.New("session store unavailable")
)

type Service interface {
	CreateSession(ctx context.Context, ownerID int, role string, req SessionRequest) (*Session, error)
	UpdateSession(ctx context.Context, id, callerID int, role string, req SessionRequest) (*Session, error)
	DeleteSession(ctx context.Context, id, callerID int, role string) error
	GetSession(ctx context.Context, id int) (*Session, error)
	ListSessionsForOwner(ctx context.Context, ownerID int) ([]Session, error)
	ListAll(ctx context.Context) ([]Session, error)
}

type service struct {
	repo        Repository
	users       user.Repository
	email       *email.Service
	coachPolicy BookingWindowPolicy
	adminPolicy BookingWindowPolicy
}

func NewService(
	repo Repository,
	users user.Repository,
	emailService *email.Service,
	coachPolicy BookingWindowPolicy,
	adminPolicy BookingWindowPolicy,
) Service {
	return &service{
		repo:        repo,
		users:       users,
		email:       emailService,
		coachPolicy: coachPolicy,
		adminPolicy: adminPolicy,
	}
}

func (s *service) policyFor(role string) BookingWindowPolicy {
	if role == "admin" {
		return s.adminPolicy
	}
	return s.coachPolicy
}

// parseRequest turns the wire payload into a candidate session, rejecting
// malformed fields before any validation against the store.
func parseRequest(ownerID int, req SessionRequest) (Session, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return Session{}, ErrTitleRequired
	}

	v, err := venue.Parse(req.Venue)
	if err != nil {
		return Session{}, err
	}

	date, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	start, err := ParseTimeOfDay(req.StartTime)
	if err != nil {
		return Session{}, err
	}

	end, err := ParseTimeOfDay(req.EndTime)
	if err != nil {
		return Session{}, err
	}

	if _, err := NewTimeInterval(start, end); err != nil {
		return Session{}, err
	}

	return Session{
		OwnerID:   ownerID,
		Title:     title,
		Venue:     v,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	}, nil
}

// validate runs the full acceptance pipeline against the store snapshot.
// Nothing is written until every step passes.
func (s *service) validate(ctx context.Context, candidate Session, role string, excludeID int) error {
	if err := s.policyFor(role).Validate(candidate.Date); err != nil {
		metrics.RecordSessionRejection("window")
		return err
	}

	existing, err := s.repo.FindByVenueAndDate(ctx, candidate.Venue, candidate.Date)
	if err != nil {
		return storeError(err)
	}

	if err := CheckConflict(candidate, existing, excludeID); err != nil {
		metrics.RecordSessionRejection("conflict")
		return err
	}

	return nil
}

func (s *service) CreateSession(ctx context.Context, ownerID int, role string, req SessionRequest) (*Session, error) {
	candidate, err := parseRequest(ownerID, req)
	if err != nil {
		return nil, err
	}

	if err := s.validate(ctx, candidate, role, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.Insert(ctx, candidate)
	if err != nil {
		return nil, storeError(err)
	}

	metrics.RecordSessionCreated(created.Venue.String())
	s.notifyBooked(ctx, created)

	return created, nil
}

func (s *service) UpdateSession(ctx context.Context, id, callerID int, role string, req SessionRequest) (*Session, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}

	if current.OwnerID != callerID && role != "admin" {
		return nil, ErrForbidden
	}

	// Owner and creation time survive the edit; the rest is replaced.
	candidate, err := parseRequest(current.OwnerID, req)
	if err != nil {
		return nil, err
	}
	candidate.ID = id

	if err := s.validate(ctx, candidate, role, id); err != nil {
		return nil, err
	}

	updated, err := s.repo.Replace(ctx, id, candidate)
	if err != nil {
		return nil, storeError(err)
	}

	metrics.RecordSessionUpdated()

	return updated, nil
}

func (s *service) DeleteSession(ctx context.Context, id, callerID int, role string) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return storeError(err)
	}

	if current.OwnerID != callerID && role != "admin" {
		return ErrForbidden
	}

	// Deletion is unconditional: no window or conflict re-validation.
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(err)
	}

	metrics.RecordSessionDeleted()
	s.notifyCancelled(ctx, current)

	return nil
}

func (s *service) GetSession(ctx context.Context, id int) (*Session, error) {
	sess, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err)
	}
	return sess, nil
}

func (s *service) ListSessionsForOwner(ctx context.Context, ownerID int) ([]Session, error) {
	sessions, err := s.repo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, storeError(err)
	}

	// Newest work first is a product decision, applied here rather than
	// relied on from storage ordering.
	sort.SliceStable(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt.Equal(sessions[j].CreatedAt) {
			return sessions[i].ID > sessions[j].ID
		}
		return sessions[i].CreatedAt.After(sessions[j].CreatedAt)
	})

	return sessions, nil
}

func (s *service) ListAll(ctx context.Context) ([]Session, error) {
	sessions, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	return sessions, nil
}

func (s *service) notifyBooked(ctx context.Context, sess *Session) {
	if s.email == nil || s.users == nil {
		return
	}

	owner, err := s.users.FindByID(ctx, sess.OwnerID)
	if err != nil {
		return
	}

	// Best-effort; a failed notification never fails the booking.
	_ = s.email.SendSessionBooked(ctx, owner.Email, owner.Name,
		sess.Title, sess.Venue.String(), sess.StartTime.On(sess.Date))
}

func (s *service) notifyCancelled(ctx context.Context, sess *Session) {
	if s.email == nil || s.users == nil {
		return
	}

	owner, err := s.users.FindByID(ctx, sess.OwnerID)
	if err != nil {
		return
	}

	_ = s.email.SendSessionCancelled(ctx, owner.Email, owner.Name,
		sess.Title, sess.Venue.String())
}

// storeError classifies repository failures: logical rejections pass
// through untouched, anything else is a transient store outage the caller
// may retry.
func storeError(err error) error {
	var conflict *ConflictError
	if errors.Is(err, ErrNotFound) || errors.As(err, &conflict) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
}
