package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("starting database migrations")

	migrations := []Migration{
		{Name: "create_cv_profiles", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_profiles (
				id UUID PRIMARY KEY,
				full_name TEXT NOT NULL DEFAULT '',
				role_fr TEXT NOT NULL DEFAULT '',
				role_en TEXT NOT NULL DEFAULT '',
				headline_fr TEXT NOT NULL DEFAULT '',
				headline_en TEXT NOT NULL DEFAULT '',
				bio_fr TEXT NOT NULL DEFAULT '',
				bio_en TEXT NOT NULL DEFAULT '',
				email TEXT NOT NULL DEFAULT '',
				phone TEXT NOT NULL DEFAULT '',
				website TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				photo_url TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`)},
		{Name: "create_cv_themes", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_themes (
				id UUID PRIMARY KEY,
				"primary" TEXT NOT NULL DEFAULT '',
				secondary TEXT NOT NULL DEFAULT '',
				header TEXT NOT NULL DEFAULT '',
				sidebar TEXT NOT NULL DEFAULT '',
				surface TEXT NOT NULL DEFAULT '',
				text TEXT NOT NULL DEFAULT '',
				muted TEXT NOT NULL DEFAULT '',
				border TEXT NOT NULL DEFAULT '',
				badge TEXT NOT NULL DEFAULT '',
				accent_color TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMPTZ NOT NULL DEFAULT now()
			)`)},
		{Name: "create_cv_sections", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_sections (
				id UUID PRIMARY KEY,
				type TEXT NOT NULL DEFAULT '',
				placement TEXT NOT NULL DEFAULT 'main',
				layout_type TEXT NOT NULL DEFAULT 'list',
				sort_order INT NOT NULL DEFAULT 0,
				is_active BOOLEAN NOT NULL DEFAULT true,
				color TEXT NOT NULL DEFAULT '',
				entry_ids TEXT[] NOT NULL DEFAULT '{}',
				entry_type TEXT NOT NULL DEFAULT ''
			);
			CREATE TABLE IF NOT EXISTS cv_section_translations (
				id UUID PRIMARY KEY,
				section_id UUID NOT NULL REFERENCES cv_sections(id) ON DELETE CASCADE,
				locale TEXT NOT NULL,
				title TEXT NOT NULL DEFAULT ''
			)`)},
		{Name: "create_cv_section_items", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_section_items (
				id UUID PRIMARY KEY,
				section_id UUID NOT NULL REFERENCES cv_sections(id) ON DELETE CASCADE,
				type TEXT NOT NULL DEFAULT '',
				sort_order INT NOT NULL DEFAULT 0,
				is_active BOOLEAN NOT NULL DEFAULT true,
				is_current BOOLEAN NOT NULL DEFAULT false,
				start_date TIMESTAMPTZ,
				end_date TIMESTAMPTZ
			);
			CREATE TABLE IF NOT EXISTS cv_item_translations (
				id UUID PRIMARY KEY,
				item_id UUID NOT NULL REFERENCES cv_section_items(id) ON DELETE CASCADE,
				locale TEXT NOT NULL,
				title TEXT NOT NULL DEFAULT '',
				subtitle TEXT NOT NULL DEFAULT '',
				location TEXT NOT NULL DEFAULT '',
				description TEXT NOT NULL DEFAULT '',
				date_range TEXT NOT NULL DEFAULT ''
			)`)},
		{Name: "create_cv_skills", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_skills (
				id UUID PRIMARY KEY,
				category TEXT NOT NULL DEFAULT '',
				level INT NOT NULL DEFAULT 0,
				show_as_bar BOOLEAN NOT NULL DEFAULT false,
				sort_order INT NOT NULL DEFAULT 0,
				is_active BOOLEAN NOT NULL DEFAULT true
			);
			CREATE TABLE IF NOT EXISTS cv_skill_translations (
				id UUID PRIMARY KEY,
				skill_id UUID NOT NULL REFERENCES cv_skills(id) ON DELETE CASCADE,
				locale TEXT NOT NULL,
				name TEXT NOT NULL DEFAULT ''
			)`)},
		{Name: "create_cv_social_links", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_social_links (
				id UUID PRIMARY KEY,
				platform TEXT NOT NULL DEFAULT '',
				url TEXT NOT NULL DEFAULT '',
				label TEXT NOT NULL DEFAULT '',
				sort_order INT NOT NULL DEFAULT 0
			)`)},
		{Name: "create_cv_content_versions", Up: exec(`
			CREATE TABLE IF NOT EXISTS cv_content_versions (
				id UUID PRIMARY KEY,
				entity TEXT NOT NULL,
				entity_id UUID NOT NULL,
				version INT NOT NULL,
				snapshot JSONB NOT NULL,
				created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
				UNIQUE (entity, entity_id, version)
			)`)},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			log.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		log.Info("migration completed", zap.String("name", m.Name))
	}

	log.Info("all migrations completed")
	return nil
}

func exec(query string) func(ctx context.Context, pool *pgxpool.Pool) error {
	return func(ctx context.Context, pool *pgxpool.Pool) error {
		_, err := pool.Exec(ctx, query)
		return err
	}
}
