package env

import "time"

var (
	// DSN is the connection string of the platform database.
	DSN = RegisterSetting("dsn")

	// TablePrefix is the table prefix of the multisite install, e.g. "wp_".
	TablePrefix = RegisterSetting("table-prefix", WithDefault("wp_"))

	// NetworkHomeURL is the network root URL without a tenant path segment,
	// e.g. "http://www.example.com".
	NetworkHomeURL = RegisterSetting("network-home-url")

	// CDNURL is the CDN origin that replaces the local content URL. When empty
	// it is resolved from the tantan_wordpress_s3 network option.
	CDNURL = RegisterSetting("cdn-url")

	// Bucket identifies the bucket recorded on every tagged attachment.
	Bucket = RegisterSetting("bucket")

	// BatchSize is the number of rows scanned per query.
	BatchSize = RegisterIntegerSetting("batch-size", 500)

	// MaxDepth bounds the nesting of decoded serialized values.
	MaxDepth = RegisterIntegerSetting("max-depth", 512)

	// MigrationTimeout bounds one complete migration run.
	MigrationTimeout = RegisterDurationSetting("migration-timeout", 1*time.Hour)

	// MetricsListen is the address the Prometheus handler listens on. Empty
	// disables it.
	MetricsListen = RegisterSetting("metrics-listen")
)
