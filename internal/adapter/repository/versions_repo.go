package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cv-exporter/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4/pgxpool"
)

// VersionsRepo persists immutable snapshots of CMS records for the
// diff/restore surface.
type VersionsRepo struct {
	pool *pgxpool.Pool
}

func NewVersionsRepo(pool *pgxpool.Pool) *VersionsRepo {
	return &VersionsRepo{pool: pool}
}

// Save stores a new snapshot under the next version number for the
// entity and returns the stored record. Two concurrent saves for the
// same entity can compute the same next version; the loser of that
// race hits the unique constraint and the insert is retried with a
// freshly computed number.
func (r *VersionsRepo) Save(ctx context.Context, entity string, entityID uuid.UUID, snapshot json.RawMessage) (*domain.ContentVersion, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("versions repository unavailable")
	}
	v := &domain.ContentVersion{
		ID:        uuid.New(),
		Entity:    entity,
		EntityID:  entityID,
		Snapshot:  snapshot,
		CreatedAt: time.Now(),
	}
	const attempts = 3
	var err error
	for i := 0; i < attempts; i++ {
		err = r.pool.QueryRow(ctx, `
			INSERT INTO cv_content_versions (id, entity, entity_id, version, snapshot, created_at)
			VALUES ($1, $2, $3,
				(SELECT coalesce(max(version), 0) + 1 FROM cv_content_versions WHERE entity = $2 AND entity_id = $3),
				$4, $5)
			RETURNING version`,
			v.ID, v.Entity, v.EntityID, []byte(v.Snapshot), v.CreatedAt).Scan(&v.Version)
		if err == nil {
			return v, nil
		}
		if !isUniqueViolation(err) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("version number contention for %s/%s: %w", entity, entityID, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// List returns all versions for an entity, newest first.
func (r *VersionsRepo) List(ctx context.Context, entity string, entityID uuid.UUID) ([]domain.ContentVersion, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("versions repository unavailable")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, entity, entity_id, version, snapshot, created_at
		FROM cv_content_versions
		WHERE entity = $1 AND entity_id = $2
		ORDER BY version DESC`, entity, entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ContentVersion{}
	for rows.Next() {
		var v domain.ContentVersion
		var snap []byte
		if err := rows.Scan(&v.ID, &v.Entity, &v.EntityID, &v.Version, &snap, &v.CreatedAt); err != nil {
			return nil, err
		}
		v.Snapshot = json.RawMessage(snap)
		out = append(out, v)
	}
	return out, rows.Err()
}

// Get returns one version of an entity.
func (r *VersionsRepo) Get(ctx context.Context, entity string, entityID uuid.UUID, version int) (*domain.ContentVersion, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("versions repository unavailable")
	}
	var v domain.ContentVersion
	var snap []byte
	err := r.pool.QueryRow(ctx, `
		SELECT id, entity, entity_id, version, snapshot, created_at
		FROM cv_content_versions
		WHERE entity = $1 AND entity_id = $2 AND version = $3`,
		entity, entityID, version).Scan(&v.ID, &v.Entity, &v.EntityID, &v.Version, &snap, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	v.Snapshot = json.RawMessage(snap)
	return &v, nil
}

// Restore re-saves an old snapshot as the newest version, so history
// stays intact and restores are themselves versioned.
func (r *VersionsRepo) Restore(ctx context.Context, entity string, entityID uuid.UUID, version int) (*domain.ContentVersion, error) {
	old, err := r.Get(ctx, entity, entityID, version)
	if err != nil {
		return nil, err
	}
	return r.Save(ctx, entity, entityID, old.Snapshot)
}
