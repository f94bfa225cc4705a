// Package notes provides the local persistence layer for notes.
//
// # Overview
//
// The package defines a Repository interface for CRUD and listing of Note
// models (see internal/client/models). SQLiteRepository persists them in the
// notes table through a dbx.DBTX, so the same code runs on *sql.DB and inside
// a transaction.
//
// # Data Model
//
// Each row has an auto-assigned integer id, a title, a content body and an
// epoch-millisecond timestamp of the last modification. Ids are never reused.
//
// Listing order is timestamp descending, then id descending, so the most
// recently modified note comes first.
//
// Typical Usage
//
//	repo := notes.NewSQLiteRepository(db)
//	id, _ := repo.Insert(ctx, &models.Note{Title: "t", Timestamp: now})
//	one, _ := repo.GetByID(ctx, id)
//	all, _ := repo.GetAll(ctx)
//	_ = repo.Delete(ctx, id)
package notes
