//go:build sql_integration

package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"
)

const schemaDDL = `
CREATE TABLE wp_blogs (blog_id BIGINT PRIMARY KEY, site_id BIGINT NOT NULL DEFAULT 1, path TEXT NOT NULL);
CREATE TABLE wp_sitemeta (meta_id BIGSERIAL PRIMARY KEY, site_id BIGINT NOT NULL, meta_key TEXT, meta_value TEXT);
CREATE TABLE wp_2_posts ("ID" BIGSERIAL PRIMARY KEY, post_content TEXT, post_excerpt TEXT, post_type TEXT, guid TEXT);
CREATE TABLE wp_2_postmeta (meta_id BIGSERIAL PRIMARY KEY, post_id BIGINT, meta_key TEXT, meta_value TEXT);
CREATE TABLE wp_2_options (option_id BIGSERIAL PRIMARY KEY, option_name TEXT, option_value TEXT);
`

func TestPostgresIntegration(t *testing.T) {
	suite.Run(t, new(postgresIntegrationTestSuite))
}

type postgresIntegrationTestSuite struct {
	suite.Suite

	ctx    context.Context
	pool   *pgxpool.Pool
	schema string
	store  Store
}

func (s *postgresIntegrationTestSuite) SetupSuite() {
	dsn := os.Getenv("CDN_MIGRATOR_TEST_DSN")
	if dsn == "" {
		s.T().Skip("CDN_MIGRATOR_TEST_DSN is not set")
	}
	s.ctx = context.Background()
	s.schema = fmt.Sprintf("cdn_migrator_test_%d", time.Now().UnixNano())

	cfg, err := pgxpool.ParseConfig(dsn)
	s.Require().NoError(err)
	cfg.ConnConfig.RuntimeParams["search_path"] = s.schema

	admin, err := pgxpool.New(s.ctx, dsn)
	s.Require().NoError(err)
	defer admin.Close()
	_, err = admin.Exec(s.ctx, "CREATE SCHEMA "+s.schema)
	s.Require().NoError(err)

	s.pool, err = pgxpool.NewWithConfig(s.ctx, cfg)
	s.Require().NoError(err)
	_, err = s.pool.Exec(s.ctx, schemaDDL)
	s.Require().NoError(err)

	s.store = New(s.pool, "wp_")
}

func (s *postgresIntegrationTestSuite) TearDownSuite() {
	if s.pool == nil {
		return
	}
	_, err := s.pool.Exec(s.ctx, "DROP SCHEMA "+s.schema+" CASCADE")
	s.NoError(err)
	s.pool.Close()
}

func (s *postgresIntegrationTestSuite) TestRoundTrip() {
	_, err := s.pool.Exec(s.ctx, `INSERT INTO wp_blogs (blog_id, path) VALUES (1, '/'), (2, '/sitename/')`)
	s.Require().NoError(err)
	_, err = s.pool.Exec(s.ctx, `INSERT INTO wp_2_posts ("ID", post_content, post_excerpt, post_type, guid) VALUES
		(1, 'see http://www.example.com/sitename/wp-content/a.png', '', 'post', 'http://www.example.com/sitename/?p=1'),
		(2, '', NULL, 'attachment', 'http://www.example.com/sitename/wp-content/uploads/a.png')`)
	s.Require().NoError(err)

	tenants, err := s.store.Tenants(s.ctx)
	s.Require().NoError(err)
	s.Equal([]Tenant{{ID: 1, Path: "/"}, {ID: 2, Path: "/sitename/"}}, tenants)
	tenant := tenants[1]

	targets, err := s.store.ScanColumn(s.ctx, tenant, PostContent, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(targets, 1)
	s.EqualValues(1, targets[0].RowID)

	excerpts, err := s.store.ScanColumn(s.ctx, tenant, PostExcerpt, 0, 10)
	s.Require().NoError(err)
	s.Empty(excerpts)

	n, err := s.store.UpdateValue(s.ctx, tenant, PostContent, 1, "rewritten")
	s.Require().NoError(err)
	s.EqualValues(1, n)

	attachments, err := s.store.UntaggedAttachments(s.ctx, tenant, "amazonS3_info")
	s.Require().NoError(err)
	s.Equal([]Attachment{{ID: 2, GUID: "http://www.example.com/sitename/wp-content/uploads/a.png"}}, attachments)

	s.Require().NoError(s.store.InsertPostMeta(s.ctx, tenant, 2, "amazonS3_info", "a:0:{}"))
	attachments, err = s.store.UntaggedAttachments(s.ctx, tenant, "amazonS3_info")
	s.Require().NoError(err)
	s.Empty(attachments)

	deleted, err := s.store.DeletePostMeta(s.ctx, tenant, "amazonS3_info")
	s.Require().NoError(err)
	s.EqualValues(1, deleted)

	s.Require().NoError(s.store.SetNetworkOption(s.ctx, "migrate_amazon_cdn", "http://a"))
	s.Require().NoError(s.store.SetNetworkOption(s.ctx, "migrate_amazon_cdn", "http://b"))
	value, ok, err := s.store.NetworkOption(s.ctx, "migrate_amazon_cdn")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("http://b", value)

	existed, err := s.store.DeleteNetworkOption(s.ctx, "migrate_amazon_cdn")
	s.Require().NoError(err)
	s.True(existed)
	_, ok, err = s.store.NetworkOption(s.ctx, "migrate_amazon_cdn")
	s.Require().NoError(err)
	s.False(ok)

	_, err = s.pool.Exec(s.ctx, `INSERT INTO wp_sitemeta (site_id, meta_key, meta_value) VALUES (1, 'tantan_wordpress_s3', NULL)`)
	s.Require().NoError(err)
	value, ok, err = s.store.NetworkOption(s.ctx, "tantan_wordpress_s3")
	s.Require().NoError(err)
	s.True(ok)
	s.Empty(value)
}
