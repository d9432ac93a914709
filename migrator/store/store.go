package store

import (
	"context"

	"github.com/stackrox/cdn-migrator/pkg/rewrite"
)

//go:generate mockgen -package mocks -destination mocks/store.go -source store.go

// Store is the data access the migration needs from a multisite install.
// Every tenant method addresses the tables of that tenant's partition.
type Store interface {
	// Tenants returns every tenant of the network ordered by ID.
	Tenants(ctx context.Context) ([]Tenant, error)
	// ScanColumn returns up to limit rows with a non-empty value in col and a
	// row ID greater than afterID, in ascending ID order.
	ScanColumn(ctx context.Context, tenant Tenant, col Column, afterID int64, limit int) ([]rewrite.Target, error)
	// UpdateValue overwrites the value of one row and returns the affected row count.
	UpdateValue(ctx context.Context, tenant Tenant, col Column, rowID int64, value string) (int64, error)

	// UntaggedAttachments returns the attachment posts that carry no post
	// meta under metaKey, newest first.
	UntaggedAttachments(ctx context.Context, tenant Tenant, metaKey string) ([]Attachment, error)
	// InsertPostMeta adds one post meta row.
	InsertPostMeta(ctx context.Context, tenant Tenant, postID int64, key, value string) error
	// DeletePostMeta removes every post meta row under key and returns how many were removed.
	DeletePostMeta(ctx context.Context, tenant Tenant, key string) (int64, error)

	// NetworkOption returns a network wide option and whether it exists.
	NetworkOption(ctx context.Context, key string) (string, bool, error)
	// SetNetworkOption adds or updates a network wide option.
	SetNetworkOption(ctx context.Context, key, value string) error
	// DeleteNetworkOption removes a network wide option and reports whether it existed.
	DeleteNetworkOption(ctx context.Context, key string) (bool, error)
}
