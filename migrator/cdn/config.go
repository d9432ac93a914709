package cdn

import (
	"strings"

	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/errox"
)

const (
	// MarkerOption is the network option recording that content is served
	// from the CDN. Its value is the CDN URL.
	MarkerOption = "migrate_amazon_cdn"
	// S3SettingsOption is the network option of the S3 offload plugin. Its
	// serialized value carries the CloudFront host under "cloudfront".
	S3SettingsOption = "tantan_wordpress_s3"
	// AttachmentMetaKey is the post meta written on every migrated attachment.
	AttachmentMetaKey = "amazonS3_info"

	contentDir = "/wp-content/"
)

// Direction selects whether content moves onto the CDN or back.
type Direction string

// Directions.
const (
	Migrate Direction = "migrate"
	Undo    Direction = "undo"
)

// Config parameterizes one migration run.
type Config struct {
	Direction Direction
	// NetworkHomeURL is the network root, e.g. "http://www.example.com".
	NetworkHomeURL string
	// CDNURL is the CDN origin, e.g. "http://d111.cloudfront.net".
	CDNURL string
	// Bucket is recorded on every tagged attachment. Required to migrate.
	Bucket string
	// BatchSize is the number of rows read per query.
	BatchSize int
	// MaxDepth bounds the nesting of decoded serialized values.
	MaxDepth int
}

// Validate checks that the configuration can drive a run.
func (c Config) Validate() error {
	switch c.Direction {
	case Migrate, Undo:
	default:
		return errox.InvalidArgs.Newf("unknown direction %q, expected %q or %q", c.Direction, Migrate, Undo)
	}
	if trimURL(c.NetworkHomeURL) == "" {
		return errox.InvalidArgs.New("network home URL is required")
	}
	if trimURL(c.CDNURL) == "" {
		return errox.InvalidArgs.New("CDN URL is required")
	}
	if c.Direction == Migrate && strings.TrimSpace(c.Bucket) == "" {
		return errox.InvalidArgs.New("a bucket is required to tag attachments")
	}
	if c.BatchSize <= 0 {
		return errox.InvalidArgs.Newf("batch size must be positive, got %d", c.BatchSize)
	}
	return nil
}

// Pass is one (old, new) substitution applied to every text column of a tenant.
type Pass struct {
	Old string
	New string
}

// Passes returns the substitutions to run for a tenant, in order.
//
// Migrating first folds URLs that wrongly include the tenant path back onto
// the network root, then swaps the root content URL for the CDN. The root
// tenant has no path, so its first pass is skipped. Undo swaps the CDN back.
func (c Config) Passes(tenant store.Tenant) []Pass {
	home := trimURL(c.NetworkHomeURL)
	canonical := home + contentDir
	cdn := trimURL(c.CDNURL) + contentDir

	if c.Direction == Undo {
		return []Pass{{Old: cdn, New: canonical}}
	}

	var passes []Pass
	if tenantURL := home + tenantPath(tenant) + contentDir[1:]; tenantURL != canonical {
		passes = append(passes, Pass{Old: tenantURL, New: canonical})
	}
	return append(passes, Pass{Old: canonical, New: cdn})
}

// tenantPath normalizes a tenant path to start and end with a slash.
func tenantPath(tenant store.Tenant) string {
	p := strings.Trim(tenant.Path, "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}

func trimURL(u string) string {
	return strings.TrimRight(strings.TrimSpace(u), "/")
}
