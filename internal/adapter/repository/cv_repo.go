package repository

import (
	"context"
	"encoding/json"
	"errors"

	"cv-exporter/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CVRepo reads the CV aggregate in one pass using server-side JSON
// aggregation, so the normalizer receives fully nested records.
type CVRepo struct {
	pool *pgxpool.Pool
}

func NewCVRepo(pool *pgxpool.Pool) *CVRepo {
	return &CVRepo{pool: pool}
}

// queryJSON runs a SQL statement returning a single json value and
// unmarshals it into out.
func queryJSON(ctx context.Context, pool *pgxpool.Pool, out any, sql string, args ...any) error {
	var raw []byte
	if err := pool.QueryRow(ctx, sql, args...).Scan(&raw); err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

// FetchRawCV returns the configured CV or (nil, nil) when none exists.
// The slice fields are always non-nil; only the profile decides whether
// a CV is configured at all.
func (r *CVRepo) FetchRawCV(ctx context.Context) (*domain.RawCV, error) {
	if r.pool == nil {
		return nil, nil
	}

	raw := &domain.RawCV{
		Sections:    []domain.RawSection{},
		Skills:      []domain.RawSkill{},
		SocialLinks: []domain.RawSocialLink{},
	}

	var profile domain.RawProfile
	err := queryJSON(ctx, r.pool, &profile,
		`SELECT to_jsonb(p) FROM cv_profiles p ORDER BY p.created_at DESC LIMIT 1`)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	raw.Profile = &profile

	var theme struct {
		domain.RawTheme
		AccentColor string `json:"accent_color"`
	}
	err = queryJSON(ctx, r.pool, &theme,
		`SELECT to_jsonb(t) FROM cv_themes t ORDER BY t.created_at DESC LIMIT 1`)
	if err == nil {
		raw.Theme = &theme.RawTheme
		raw.AccentColor = theme.AccentColor
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	err = queryJSON(ctx, r.pool, &raw.Sections, `
		SELECT coalesce(json_agg(sec), '[]') FROM (
			SELECT jsonb_build_object(
				'id', s.id,
				'type', s.type,
				'placement', s.placement,
				'layout_type', s.layout_type,
				'order', s.sort_order,
				'is_active', s.is_active,
				'color', s.color,
				'entry_ids', s.entry_ids,
				'entry_type', s.entry_type,
				'translations', coalesce((
					SELECT json_agg(jsonb_build_object('locale', st.locale, 'title', st.title))
					FROM cv_section_translations st WHERE st.section_id = s.id), '[]'),
				'items', coalesce((
					SELECT json_agg(jsonb_build_object(
						'id', i.id,
						'section_id', i.section_id,
						'type', i.type,
						'order', i.sort_order,
						'is_active', i.is_active,
						'is_current', i.is_current,
						'start_date', i.start_date,
						'end_date', i.end_date,
						'translations', coalesce((
							SELECT json_agg(jsonb_build_object(
								'locale', it.locale,
								'title', it.title,
								'subtitle', it.subtitle,
								'location', it.location,
								'description', it.description,
								'date_range', it.date_range))
							FROM cv_item_translations it WHERE it.item_id = i.id), '[]')
					) ORDER BY i.sort_order, i.id)
					FROM cv_section_items i WHERE i.section_id = s.id), '[]')
			) AS sec
			FROM cv_sections s
			ORDER BY s.sort_order, s.id
		) rows`)
	if err != nil {
		return nil, err
	}

	err = queryJSON(ctx, r.pool, &raw.Skills, `
		SELECT coalesce(json_agg(jsonb_build_object(
			'id', k.id,
			'category', k.category,
			'level', k.level,
			'show_as_bar', k.show_as_bar,
			'order', k.sort_order,
			'is_active', k.is_active,
			'translations', coalesce((
				SELECT json_agg(jsonb_build_object('locale', kt.locale, 'name', kt.name))
				FROM cv_skill_translations kt WHERE kt.skill_id = k.id), '[]')
		) ORDER BY k.sort_order, k.id), '[]')
		FROM cv_skills k`)
	if err != nil {
		return nil, err
	}

	err = queryJSON(ctx, r.pool, &raw.SocialLinks, `
		SELECT coalesce(json_agg(jsonb_build_object(
			'platform', l.platform,
			'url', l.url,
			'label', l.label,
			'order', l.sort_order
		) ORDER BY l.sort_order, l.id), '[]')
		FROM cv_social_links l`)
	if err != nil {
		return nil, err
	}

	return raw, nil
}
