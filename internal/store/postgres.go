package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/serroba/marketplace-routes/internal/profile"
	"github.com/serroba/marketplace-routes/internal/seo"
)

// uniqueViolation is the SQLSTATE for unique constraint violations.
const uniqueViolation = "23505"

const schema = `
	CREATE TABLE IF NOT EXISTS seo_urls (
		listing_id TEXT PRIMARY KEY,
		slug       TEXT NOT NULL,
		seo_id     CHAR(6) NOT NULL,
		full_url   TEXT NOT NULL UNIQUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE TABLE IF NOT EXISTS profiles (
		id           UUID PRIMARY KEY,
		profile_id   CHAR(6) NOT NULL UNIQUE,
		display_name TEXT NOT NULL DEFAULT '',
		created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	);

	CREATE INDEX IF NOT EXISTS profiles_id_text_idx ON profiles ((id::text) text_pattern_ops);
`

// Migrate creates the tables used by the Postgres stores if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	return nil
}

// PostgresSEOStore is a PostgreSQL implementation of seo.Repository.
type PostgresSEOStore struct {
	pool *pgxpool.Pool
}

// NewPostgresSEOStore creates a new PostgreSQL-backed SEO URL store.
func NewPostgresSEOStore(pool *pgxpool.Pool) *PostgresSEOStore {
	return &PostgresSEOStore{pool: pool}
}

func (p *PostgresSEOStore) Save(ctx context.Context, url *seo.URL) error {
	query := `
		INSERT INTO seo_urls (listing_id, slug, seo_id, full_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := p.pool.Exec(ctx, query,
		url.ListingID,
		url.Slug,
		url.SeoID,
		url.FullURL,
		url.CreatedAt,
	)
	if isUniqueViolation(err) {
		return seo.ErrConflict
	}

	return err
}

func (p *PostgresSEOStore) GetByListingID(ctx context.Context, listingID string) (*seo.URL, error) {
	query := `
		SELECT listing_id, slug, seo_id, full_url, created_at
		FROM seo_urls
		WHERE listing_id = $1
	`

	return scanSEOURL(p.pool.QueryRow(ctx, query, listingID))
}

func (p *PostgresSEOStore) GetByFullURL(ctx context.Context, fullURL string) (*seo.URL, error) {
	query := `
		SELECT listing_id, slug, seo_id, full_url, created_at
		FROM seo_urls
		WHERE full_url = $1
	`

	return scanSEOURL(p.pool.QueryRow(ctx, query, fullURL))
}

func scanSEOURL(row pgx.Row) (*seo.URL, error) {
	var url seo.URL

	err := row.Scan(
		&url.ListingID,
		&url.Slug,
		&url.SeoID,
		&url.FullURL,
		&url.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, seo.ErrNotFound
		}

		return nil, err
	}

	return &url, nil
}

// PostgresProfileStore is a PostgreSQL implementation of profile.Repository.
type PostgresProfileStore struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileStore creates a new PostgreSQL-backed profile store.
func NewPostgresProfileStore(pool *pgxpool.Pool) *PostgresProfileStore {
	return &PostgresProfileStore{pool: pool}
}

func (p *PostgresProfileStore) Save(ctx context.Context, pr *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, profile_id, display_name, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := p.pool.Exec(ctx, query,
		pr.ID,
		pr.ProfileID,
		pr.DisplayName,
		pr.CreatedAt,
	)
	if isUniqueViolation(err) {
		return profile.ErrConflict
	}

	return err
}

func (p *PostgresProfileStore) GetByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	query := `
		SELECT id, profile_id, display_name, created_at
		FROM profiles
		WHERE id = $1
	`

	return scanProfile(p.pool.QueryRow(ctx, query, id))
}

func (p *PostgresProfileStore) GetByProfileID(ctx context.Context, profileID string) (*profile.Profile, error) {
	query := `
		SELECT id, profile_id, display_name, created_at
		FROM profiles
		WHERE profile_id = $1
	`

	return scanProfile(p.pool.QueryRow(ctx, query, profileID))
}

func (p *PostgresProfileStore) FindByIDPrefix(ctx context.Context, prefix string) (*profile.Profile, error) {
	query := `
		SELECT id, profile_id, display_name, created_at
		FROM profiles
		WHERE id::text LIKE $1
		ORDER BY created_at, id
		LIMIT 1
	`

	// UUID text output is lowercase; the prefix is hex only so needs no LIKE escaping.
	return scanProfile(p.pool.QueryRow(ctx, query, strings.ToLower(prefix)+"%"))
}

func (p *PostgresProfileStore) ProfileIDExists(ctx context.Context, profileID string) (bool, error) {
	var exists bool

	err := p.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM profiles WHERE profile_id = $1)`,
		profileID,
	).Scan(&exists)

	return exists, err
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	var pr profile.Profile

	err := row.Scan(
		&pr.ID,
		&pr.ProfileID,
		&pr.DisplayName,
		&pr.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrNotFound
		}

		return nil, err
	}

	return &pr, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
