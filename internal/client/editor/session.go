package editor

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/crystalpad/internal/client/models"
	"github.com/dmitrijs2005/crystalpad/internal/common"
	"github.com/dmitrijs2005/crystalpad/internal/logging"
	"github.com/google/uuid"
)

// Store is the subset of the note store a session talks to.
type Store interface {
	Insert(ctx context.Context, note *models.Note) (int64, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
}

// Navigator leaves the editor screen.
type Navigator interface {
	Back()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) Back() { f() }

type State string

const (
	StateNew     State = "new"
	StateLoaded  State = "loaded"
	StateDeleted State = "deleted"
)

// Outcome reports what a save did to the store.
type Outcome string

const (
	OutcomeNoop    Outcome = "noop"
	OutcomeCreated Outcome = "created"
	OutcomeUpdated Outcome = "updated"
)

// Session is one editor session. It is safe for use from several goroutines,
// though a host normally drives it from one.
type Session struct {
	store Store
	nav   Navigator
	log   logging.Logger

	mu       sync.Mutex
	id       int64
	title    string
	content  string
	original models.Note
	deleted  bool
}

// NewSession starts a New session.
func NewSession(store Store, nav Navigator, log logging.Logger) *Session {
	return &Session{
		store: store,
		nav:   nav,
		log:   log.With("session", uuid.NewString()),
	}
}

// Open binds the session to the note with the given id and loads it into
// the draft. A missing note leaves the session Loaded with an empty draft.
func (s *Session) Open(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = id
	s.deleted = false
	s.title, s.content = "", ""
	s.original = models.Note{}

	note, err := s.store.GetByID(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		s.log.Debug(ctx, "opened missing note", "id", id)
		return nil
	}
	if err != nil {
		return fmt.Errorf("open note %d: %w", id, err)
	}

	s.title, s.content = note.Title, note.Content
	s.original = models.Note{Title: note.Title, Content: note.Content}
	s.log.Debug(ctx, "opened note", "id", id)
	return nil
}

func (s *Session) SetTitle(title string) {
	s.mu.Lock()
	s.title = title
	s.mu.Unlock()
}

func (s *Session) SetContent(content string) {
	s.mu.Lock()
	s.content = content
	s.mu.Unlock()
}

// Draft returns the current draft. ID is 0 while the session is New.
func (s *Session) Draft() models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Note{ID: s.id, Title: s.title, Content: s.content}
}

func (s *Session) ID() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state()
}

func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty()
}

// Save persists the draft if there is something to persist.
func (s *Session) Save(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// Flush is Save for a session that is losing visibility. It does nothing
// once the note has been deleted from this session.
func (s *Session) Flush(ctx context.Context) (Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleted {
		return OutcomeNoop, nil
	}
	return s.save(ctx)
}

// Back flushes the draft and leaves the editor. The navigator is not called
// when the flush fails.
func (s *Session) Back(ctx context.Context) error {
	if _, err := s.Flush(ctx); err != nil {
		return err
	}
	s.nav.Back()
	return nil
}

// Delete removes the stored note, if any, and leaves the editor. The
// navigator is not called when the store fails.
func (s *Session) Delete(ctx context.Context) error {
	s.mu.Lock()
	err := s.delete(ctx)
	s.mu.Unlock()
	if err != nil {
		return err
	}
	s.nav.Back()
	return nil
}

func (s *Session) state() State {
	switch {
	case s.deleted:
		return StateDeleted
	case s.id > 0:
		return StateLoaded
	default:
		return StateNew
	}
}

func (s *Session) dirty() bool {
	if s.id == 0 {
		return !models.Note{Title: s.title, Content: s.content}.IsBlank()
	}
	return s.title != s.original.Title || s.content != s.original.Content
}

func (s *Session) save(ctx context.Context) (Outcome, error) {
	if s.id == 0 {
		draft := &models.Note{Title: s.title, Content: s.content}
		if draft.IsBlank() {
			return OutcomeNoop, nil
		}
		id, err := s.store.Insert(ctx, draft)
		if err != nil {
			return OutcomeNoop, fmt.Errorf("create note: %w", err)
		}
		s.id = id
		s.deleted = false
		s.resetOriginal()
		s.log.Info(ctx, "note created", "id", id)
		return OutcomeCreated, nil
	}

	if !s.dirty() {
		return OutcomeNoop, nil
	}

	stored, err := s.store.GetByID(ctx, s.id)
	if errors.Is(err, common.ErrNotFound) {
		s.resetOriginal()
		s.log.Debug(ctx, "save skipped, note is gone", "id", s.id)
		return OutcomeNoop, nil
	}
	if err != nil {
		return OutcomeNoop, fmt.Errorf("load note %d: %w", s.id, err)
	}

	stored.Title, stored.Content = s.title, s.content
	if err := s.store.Update(ctx, stored); err != nil {
		return OutcomeNoop, fmt.Errorf("update note %d: %w", s.id, err)
	}
	s.resetOriginal()
	s.log.Info(ctx, "note updated", "id", s.id)
	return OutcomeUpdated, nil
}

func (s *Session) delete(ctx context.Context) error {
	if s.id == 0 {
		s.deleted = true
		return nil
	}

	stored, err := s.store.GetByID(ctx, s.id)
	switch {
	case errors.Is(err, common.ErrNotFound):
	case err != nil:
		return fmt.Errorf("load note %d: %w", s.id, err)
	default:
		if err := s.store.Delete(ctx, stored); err != nil {
			return fmt.Errorf("delete note %d: %w", s.id, err)
		}
		s.log.Info(ctx, "note deleted", "id", s.id)
	}
	s.deleted = true
	return nil
}

func (s *Session) resetOriginal() {
	s.original = models.Note{Title: s.title, Content: s.content}
}
