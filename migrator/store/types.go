// Package store reads and writes the tables of a multisite install.
package store

import (
	"strconv"
)

// MainTenantID is the ID of the network's main site. Its tables carry no ID
// segment in their name.
const MainTenantID = 1

// Tenant is one site of the network.
type Tenant struct {
	ID int64
	// Path is the site path below the network root, e.g. "/sitename/" or "/".
	Path string
}

// TableName returns the name of a per-tenant table, e.g. "wp_3_posts".
func (t Tenant) TableName(prefix, table string) string {
	if t.ID == MainTenantID {
		return prefix + table
	}
	return prefix + strconv.FormatInt(t.ID, 10) + "_" + table
}

// Attachment is a post of type attachment.
type Attachment struct {
	ID   int64
	GUID string
}

// Column is a text column that may embed content URLs.
type Column struct {
	// Name is a short label used in logs and metrics.
	Name        string
	Table       string
	IDColumn    string
	ValueColumn string
}

var (
	// PostContent is the body of posts and pages.
	PostContent = Column{Name: "content", Table: "posts", IDColumn: "ID", ValueColumn: "post_content"}
	// PostExcerpt is the excerpt of posts and pages.
	PostExcerpt = Column{Name: "excerpts", Table: "posts", IDColumn: "ID", ValueColumn: "post_excerpt"}
	// PostMetaValue holds post meta, frequently serialized.
	PostMetaValue = Column{Name: "postmeta", Table: "postmeta", IDColumn: "meta_id", ValueColumn: "meta_value"}
	// OptionValue holds site options, frequently serialized.
	OptionValue = Column{Name: "options", Table: "options", IDColumn: "option_id", ValueColumn: "option_value"}

	// TextColumns are all columns scanned by a rewrite pass, in scan order.
	TextColumns = []Column{PostContent, PostExcerpt, PostMetaValue, OptionValue}
)
