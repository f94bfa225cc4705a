// Package services contains the application services of the crystalpad
// client: the note store with its live listing and the preference store.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/crystalpad/internal/client/live"
	"github.com/dmitrijs2005/crystalpad/internal/client/models"
	"github.com/dmitrijs2005/crystalpad/internal/client/repositories/notes"
	"github.com/dmitrijs2005/crystalpad/internal/common"
	"github.com/dmitrijs2005/crystalpad/internal/dbx"
	"github.com/dmitrijs2005/crystalpad/internal/logging"
)

// DB is what the services need from the database handle. *sql.DB satisfies it.
type DB interface {
	dbx.DBTX
	dbx.Beginner
}

// NoteService is the note store contract used by the editor and the host.
//
// Contract:
//   - Insert: stamps the note with the current time, stores it and sets note.ID.
//   - Update: stamps the note and overwrites the stored record; a missing id is a no-op.
//   - Delete: removes the record with note.ID.
//   - GetByID: returns common.ErrNotFound when absent.
//   - List: returns all notes, most recently modified first.
//   - Watch: streams List snapshots, one now and one after every mutation,
//     until ctx is done.
type NoteService interface {
	Insert(ctx context.Context, note *models.Note) (int64, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id int64) (*models.Note, error)
	List(ctx context.Context) ([]models.Note, error)
	Watch(ctx context.Context) (<-chan []models.Note, error)
}

type noteService struct {
	db    DB
	repo  notes.Repository
	feed  *live.Feed[[]models.Note]
	log   logging.Logger
	clock func() time.Time
}

// NoteOption customises a NoteService.
type NoteOption func(*noteService)

// WithClock overrides the time source used to stamp notes.
func WithClock(clock func() time.Time) NoteOption {
	return func(s *noteService) { s.clock = clock }
}

// WithRepository makes the service read and write notes through repo
// outside transactions. Transactional paths always bind a repository to the
// transaction itself.
func WithRepository(repo notes.Repository) NoteOption {
	return func(s *noteService) { s.repo = repo }
}

func NewNoteService(db DB, log logging.Logger, opts ...NoteOption) NoteService {
	s := &noteService{
		db:    db,
		repo:  notes.NewSQLiteRepository(db),
		log:   log,
		clock: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.feed = live.NewFeed(s.repo.GetAll)
	return s
}

func (s *noteService) Insert(ctx context.Context, note *models.Note) (int64, error) {
	note.Timestamp = s.clock().UnixMilli()

	id, err := s.repo.Insert(ctx, note)
	if err != nil {
		return 0, fmt.Errorf("saving error: %w", err)
	}
	note.ID = id

	s.log.Debug(ctx, "note inserted", "id", id)
	s.publish(ctx)
	return id, nil
}

func (s *noteService) Update(ctx context.Context, note *models.Note) error {
	ts := s.clock().UnixMilli()
	updated := false

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := notes.NewSQLiteRepository(tx)
		if _, err := repo.GetByID(ctx, note.ID); err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return nil
			}
			return err
		}
		stamped := *note
		stamped.Timestamp = ts
		if err := repo.Update(ctx, &stamped); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if err != nil {
		return fmt.Errorf("updating error: %w", err)
	}
	if !updated {
		s.log.Debug(ctx, "update skipped, note is gone", "id", note.ID)
		return nil
	}

	note.Timestamp = ts
	s.log.Debug(ctx, "note updated", "id", note.ID)
	s.publish(ctx)
	return nil
}

func (s *noteService) Delete(ctx context.Context, note *models.Note) error {
	if err := s.repo.Delete(ctx, note.ID); err != nil {
		return fmt.Errorf("error deleting note: %w", err)
	}
	s.log.Debug(ctx, "note deleted", "id", note.ID)
	s.publish(ctx)
	return nil
}

func (s *noteService) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error retrieving note: %w", err)
	}
	return n, nil
}

func (s *noteService) List(ctx context.Context) ([]models.Note, error) {
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return list, nil
}

func (s *noteService) Watch(ctx context.Context) (<-chan []models.Note, error) {
	ch, err := s.feed.Subscribe(ctx)
	if err != nil {
		return nil, fmt.Errorf("error watching notes: %w", err)
	}
	return ch, nil
}

// publish refreshes observers after a committed mutation. A failed refresh
// does not undo the mutation, so it is only logged.
func (s *noteService) publish(ctx context.Context) {
	if err := s.feed.Publish(ctx); err != nil {
		s.log.Warn(ctx, "note listing refresh failed", "error", err)
	}
}
