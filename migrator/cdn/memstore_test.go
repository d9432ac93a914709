package cdn

import (
	"context"
	"sort"

	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/rewrite"
)

type cell struct {
	tenant int64
	table  string
}

type metaRow struct {
	postID int64
	key    string
}

// memStore is an in-memory network. Each table holds the text of its value
// column keyed by row id.
type memStore struct {
	tenants     []store.Tenant
	tables      map[cell]map[int64]string
	meta        map[int64]map[int64]metaRow
	attachments map[int64][]store.Attachment
	options     map[string]string
}

func newMemStore(tenants ...store.Tenant) *memStore {
	return &memStore{
		tenants:     tenants,
		tables:      make(map[cell]map[int64]string),
		meta:        make(map[int64]map[int64]metaRow),
		attachments: make(map[int64][]store.Attachment),
		options:     make(map[string]string),
	}
}

func (m *memStore) table(tenant int64, col store.Column) map[int64]string {
	key := cell{tenant: tenant, table: col.Name}
	if m.tables[key] == nil {
		m.tables[key] = make(map[int64]string)
	}
	return m.tables[key]
}

func (m *memStore) put(tenant int64, col store.Column, id int64, value string) {
	m.table(tenant, col)[id] = value
}

func (m *memStore) get(tenant int64, col store.Column, id int64) string {
	return m.table(tenant, col)[id]
}

func (m *memStore) Tenants(context.Context) ([]store.Tenant, error) {
	return m.tenants, nil
}

func (m *memStore) ScanColumn(_ context.Context, tenant store.Tenant, col store.Column, afterID int64, limit int) ([]rewrite.Target, error) {
	rows := m.table(tenant.ID, col)
	ids := make([]int64, 0, len(rows))
	for id, v := range rows {
		if id > afterID && v != "" {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if len(ids) > limit {
		ids = ids[:limit]
	}
	targets := make([]rewrite.Target, 0, len(ids))
	for _, id := range ids {
		targets = append(targets, rewrite.Target{PartitionID: tenant.ID, RowID: id, Column: col.ValueColumn, Value: rows[id]})
	}
	return targets, nil
}

func (m *memStore) UpdateValue(_ context.Context, tenant store.Tenant, col store.Column, rowID int64, value string) (int64, error) {
	rows := m.table(tenant.ID, col)
	if _, ok := rows[rowID]; !ok {
		return 0, nil
	}
	rows[rowID] = value
	return 1, nil
}

func (m *memStore) UntaggedAttachments(_ context.Context, tenant store.Tenant, metaKey string) ([]store.Attachment, error) {
	tagged := make(map[int64]bool)
	for _, row := range m.meta[tenant.ID] {
		if row.key == metaKey {
			tagged[row.postID] = true
		}
	}
	var out []store.Attachment
	for _, a := range m.attachments[tenant.ID] {
		if !tagged[a.ID] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memStore) InsertPostMeta(_ context.Context, tenant store.Tenant, postID int64, key, value string) error {
	rows := m.table(tenant.ID, store.PostMetaValue)
	var next int64
	for id := range rows {
		next = max(next, id)
	}
	next++
	rows[next] = value
	if m.meta[tenant.ID] == nil {
		m.meta[tenant.ID] = make(map[int64]metaRow)
	}
	m.meta[tenant.ID][next] = metaRow{postID: postID, key: key}
	return nil
}

func (m *memStore) DeletePostMeta(_ context.Context, tenant store.Tenant, key string) (int64, error) {
	var n int64
	for id, row := range m.meta[tenant.ID] {
		if row.key == key {
			delete(m.meta[tenant.ID], id)
			delete(m.table(tenant.ID, store.PostMetaValue), id)
			n++
		}
	}
	return n, nil
}

func (m *memStore) NetworkOption(_ context.Context, key string) (string, bool, error) {
	v, ok := m.options[key]
	return v, ok, nil
}

func (m *memStore) SetNetworkOption(_ context.Context, key, value string) error {
	m.options[key] = value
	return nil
}

func (m *memStore) DeleteNetworkOption(_ context.Context, key string) (bool, error) {
	_, ok := m.options[key]
	delete(m.options, key)
	return ok, nil
}

// taggedValues returns the post meta values of tenant with key, by post id.
func (m *memStore) taggedValues(tenant int64, key string) map[int64]string {
	out := make(map[int64]string)
	for id, row := range m.meta[tenant] {
		if row.key == key {
			out[row.postID] = m.get(tenant, store.PostMetaValue, id)
		}
	}
	return out
}
