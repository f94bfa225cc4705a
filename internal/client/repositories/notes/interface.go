package notes

import (
	"context"

	"github.com/dmitrijs2005/crystalpad/internal/client/models"
)

// Repository describes CRUD and listing operations for notes.
type Repository interface {
	// Insert stores a new note and returns the id assigned to it.
	// note.ID is ignored.
	Insert(ctx context.Context, note *models.Note) (int64, error)

	// Update overwrites title, content and timestamp of the note with note.ID.
	// A missing id is not an error.
	Update(ctx context.Context, note *models.Note) error

	// Delete removes the note with the given id. A missing id is not an error.
	Delete(ctx context.Context, id int64) error

	// GetByID returns common.ErrNotFound when no note has the id.
	GetByID(ctx context.Context, id int64) (*models.Note, error)

	// GetAll returns every note, most recently modified first.
	GetAll(ctx context.Context) ([]models.Note, error)
}
