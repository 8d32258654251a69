package importer

import (
	"context"
	"errors"
	"maps"

	"github.com/google/uuid"

	"github.com/fractionalquest/fractional-quest/internal/db"
)

// fakeStore is an in-memory Store with the same matching and slug-conflict
// behaviour as the Postgres statements; an external id match wins over a URL
// match. A transaction works on a copy of the rows that replaces the originals
// only when fn succeeds.
type fakeStore struct {
	rows  map[uuid.UUID]fakeRow
	order []uuid.UUID

	// failWrite, if set, fails UpdateJob and InsertJob for the inputs it returns an error for.
	failWrite func(in *db.JobInput) error
	// txCalls counts WithJobTx invocations.
	txCalls int
}

type fakeRow struct {
	input    db.JobInput
	isActive bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{rows: make(map[uuid.UUID]fakeRow)}
}

func (s *fakeStore) WithJobTx(ctx context.Context, fn func(db.JobWriter) error) error {
	s.txCalls++
	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &fakeTx{store: s, rows: maps.Clone(s.rows), order: append([]uuid.UUID(nil), s.order...)}
	if err := fn(tx); err != nil {
		return err
	}
	s.rows, s.order = tx.rows, tx.order
	return nil
}

func (s *fakeStore) bySlug(slug string) (fakeRow, bool) {
	for _, row := range s.rows {
		if row.input.Slug == slug {
			return row, true
		}
	}
	return fakeRow{}, false
}

type fakeTx struct {
	store *fakeStore
	rows  map[uuid.UUID]fakeRow
	order []uuid.UUID
}

func (t *fakeTx) FindExistingJob(_ context.Context, externalID, url string) (*db.ExistingJob, error) {
	if externalID == "" && url == "" {
		return nil, errors.New("external id or url is required")
	}
	if externalID != "" {
		for _, id := range t.order {
			if row := t.rows[id]; row.input.ExternalID == externalID {
				return &db.ExistingJob{ID: id, Slug: row.input.Slug}, nil
			}
		}
	}
	if url != "" {
		for _, id := range t.order {
			if row := t.rows[id]; row.input.URL == url {
				return &db.ExistingJob{ID: id, Slug: row.input.Slug}, nil
			}
		}
	}
	return nil, nil
}

func (t *fakeTx) UpdateJob(_ context.Context, id uuid.UUID, in *db.JobInput) error {
	if t.store.failWrite != nil {
		if err := t.store.failWrite(in); err != nil {
			return err
		}
	}
	row, ok := t.rows[id]
	if !ok {
		return db.ErrNotFound
	}
	updated := *in
	updated.Slug = row.input.Slug
	t.rows[id] = fakeRow{input: updated, isActive: true}
	return nil
}

func (t *fakeTx) InsertJob(_ context.Context, in *db.JobInput) (db.InsertResult, error) {
	if t.store.failWrite != nil {
		if err := t.store.failWrite(in); err != nil {
			return db.InsertResult{}, err
		}
	}
	for _, id := range t.order {
		row := t.rows[id]
		if row.input.Slug == in.Slug {
			row.input.Title = in.Title
			row.input.CompanyName = in.CompanyName
			row.input.SeenAt = in.SeenAt
			row.isActive = true
			t.rows[id] = row
			return db.InsertResult{ID: id, Merged: true}, nil
		}
	}
	id := uuid.New()
	t.rows[id] = fakeRow{input: *in, isActive: true}
	t.order = append(t.order, id)
	return db.InsertResult{ID: id}, nil
}
