package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stackrox/cdn-migrator/pkg/rewrite"
)

// DB is the subset of *pgxpool.Pool the store uses.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// Option configures a store.
type Option func(*storeImpl)

// WithSiteID selects the network whose options are read and written. It
// defaults to 1.
func WithSiteID(id int64) Option {
	return func(s *storeImpl) {
		s.siteID = id
	}
}

type storeImpl struct {
	db     DB
	prefix string
	siteID int64
}

// New returns a Store over db for tables named with prefix, e.g. "wp_".
func New(db DB, prefix string, opts ...Option) Store {
	s := &storeImpl{db: db, prefix: prefix, siteID: 1}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (s *storeImpl) tenantTable(t Tenant, table string) string {
	return ident(t.TableName(s.prefix, table))
}

func (s *storeImpl) networkTable(table string) string {
	return ident(s.prefix + table)
}

func (s *storeImpl) Tenants(ctx context.Context) ([]Tenant, error) {
	rows, err := s.db.Query(ctx, "SELECT blog_id, path FROM "+s.networkTable("blogs")+" ORDER BY blog_id")
	if err != nil {
		return nil, errors.Wrap(err, "querying tenants")
	}
	defer rows.Close()

	var tenants []Tenant
	for rows.Next() {
		var t Tenant
		if err := rows.Scan(&t.ID, &t.Path); err != nil {
			return nil, errors.Wrap(err, "scanning tenant row")
		}
		tenants = append(tenants, t)
	}
	return tenants, errors.Wrap(rows.Err(), "iterating tenants")
}

func (s *storeImpl) ScanColumn(ctx context.Context, tenant Tenant, col Column, afterID int64, limit int) ([]rewrite.Target, error) {
	id, value := ident(col.IDColumn), ident(col.ValueColumn)
	query := "SELECT " + id + ", " + value + " FROM " + s.tenantTable(tenant, col.Table) +
		" WHERE " + id + " > $1 AND COALESCE(" + value + ", '') <> '' ORDER BY " + id + " LIMIT $2"

	rows, err := s.db.Query(ctx, query, afterID, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "querying %s of tenant %d", col.Name, tenant.ID)
	}
	defer rows.Close()

	var targets []rewrite.Target
	for rows.Next() {
		target := rewrite.Target{PartitionID: tenant.ID, Column: col.ValueColumn}
		if err := rows.Scan(&target.RowID, &target.Value); err != nil {
			return nil, errors.Wrapf(err, "scanning %s row of tenant %d", col.Name, tenant.ID)
		}
		targets = append(targets, target)
	}
	return targets, errors.Wrapf(rows.Err(), "iterating %s of tenant %d", col.Name, tenant.ID)
}

func (s *storeImpl) UpdateValue(ctx context.Context, tenant Tenant, col Column, rowID int64, value string) (int64, error) {
	query := "UPDATE " + s.tenantTable(tenant, col.Table) + " SET " + ident(col.ValueColumn) + " = $1 WHERE " + ident(col.IDColumn) + " = $2"
	tag, err := s.db.Exec(ctx, query, value, rowID)
	if err != nil {
		return 0, errors.Wrapf(err, "updating %s row %d of tenant %d", col.Name, rowID, tenant.ID)
	}
	return tag.RowsAffected(), nil
}

func (s *storeImpl) UntaggedAttachments(ctx context.Context, tenant Tenant, metaKey string) ([]Attachment, error) {
	query := "SELECT p." + ident("ID") + ", p.guid FROM " + s.tenantTable(tenant, "posts") + " p" +
		" WHERE p.post_type = 'attachment' AND NOT EXISTS (SELECT 1 FROM " + s.tenantTable(tenant, "postmeta") + " m" +
		" WHERE m.post_id = p." + ident("ID") + " AND m.meta_key = $1)" +
		" ORDER BY p." + ident("ID") + " DESC"

	rows, err := s.db.Query(ctx, query, metaKey)
	if err != nil {
		return nil, errors.Wrapf(err, "querying attachments of tenant %d", tenant.ID)
	}
	defer rows.Close()

	var attachments []Attachment
	for rows.Next() {
		var a Attachment
		if err := rows.Scan(&a.ID, &a.GUID); err != nil {
			return nil, errors.Wrapf(err, "scanning attachment of tenant %d", tenant.ID)
		}
		attachments = append(attachments, a)
	}
	return attachments, errors.Wrapf(rows.Err(), "iterating attachments of tenant %d", tenant.ID)
}

func (s *storeImpl) InsertPostMeta(ctx context.Context, tenant Tenant, postID int64, key, value string) error {
	query := "INSERT INTO " + s.tenantTable(tenant, "postmeta") + " (post_id, meta_key, meta_value) VALUES ($1, $2, $3)"
	if _, err := s.db.Exec(ctx, query, postID, key, value); err != nil {
		return errors.Wrapf(err, "inserting %s for post %d of tenant %d", key, postID, tenant.ID)
	}
	return nil
}

func (s *storeImpl) DeletePostMeta(ctx context.Context, tenant Tenant, key string) (int64, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM "+s.tenantTable(tenant, "postmeta")+" WHERE meta_key = $1", key)
	if err != nil {
		return 0, errors.Wrapf(err, "deleting %s of tenant %d", key, tenant.ID)
	}
	return tag.RowsAffected(), nil
}

func (s *storeImpl) NetworkOption(ctx context.Context, key string) (string, bool, error) {
	// meta_value is nullable; a NULL option is present but empty.
	var value *string
	err := s.db.QueryRow(ctx,
		"SELECT meta_value FROM "+s.networkTable("sitemeta")+" WHERE site_id = $1 AND meta_key = $2 ORDER BY meta_id LIMIT 1",
		s.siteID, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errors.Wrapf(err, "reading network option %s", key)
	}
	if value == nil {
		return "", true, nil
	}
	return *value, true, nil
}

func (s *storeImpl) SetNetworkOption(ctx context.Context, key, value string) error {
	table := s.networkTable("sitemeta")
	tag, err := s.db.Exec(ctx, "UPDATE "+table+" SET meta_value = $1 WHERE site_id = $2 AND meta_key = $3", value, s.siteID, key)
	if err != nil {
		return errors.Wrapf(err, "updating network option %s", key)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	if _, err := s.db.Exec(ctx, "INSERT INTO "+table+" (site_id, meta_key, meta_value) VALUES ($1, $2, $3)", s.siteID, key, value); err != nil {
		return errors.Wrapf(err, "adding network option %s", key)
	}
	return nil
}

func (s *storeImpl) DeleteNetworkOption(ctx context.Context, key string) (bool, error) {
	tag, err := s.db.Exec(ctx, "DELETE FROM "+s.networkTable("sitemeta")+" WHERE site_id = $1 AND meta_key = $2", s.siteID, key)
	if err != nil {
		return false, errors.Wrapf(err, "deleting network option %s", key)
	}
	return tag.RowsAffected() > 0, nil
}
