package cdn

import (
	"context"
	"strings"

	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/metrics"
	"github.com/stackrox/cdn-migrator/pkg/phpserial"
)

// tagAttachments records the bucket and object key of every attachment not
// yet tagged. A failed insert is reported and the remaining attachments are
// still tagged.
func (m *migration) tagAttachments(ctx context.Context, tenant store.Tenant) error {
	attachments, err := m.store.UntaggedAttachments(ctx, tenant, AttachmentMetaKey)
	if err != nil {
		return err
	}

	tagged := 0
	for _, a := range attachments {
		value := AttachmentInfo(m.cfg.Bucket, m.cfg.AttachmentKey(tenant, a.GUID))
		if err := m.store.InsertPostMeta(ctx, tenant, a.ID, AttachmentMetaKey, value); err != nil {
			log.Warnf("Tenant %d: %v", tenant.ID, err)
			m.report.addError(err)
			continue
		}
		tagged++
	}

	m.report.Attachments += int64(tagged)
	metrics.ObserveAttachments(string(m.cfg.Direction), tagged)
	if tagged > 0 {
		log.Infof("Tenant %d: tagged %d attachments", tenant.ID, tagged)
	}
	return nil
}

// AttachmentKey returns the object key of an attachment: its GUID relative
// to the network root, with the tenant path removed.
//
//	http://www.example.com/sitename/wp-content/uploads/a.png -> wp-content/uploads/a.png
func (c Config) AttachmentKey(tenant store.Tenant, guid string) string {
	key := strings.TrimPrefix(guid, trimURL(c.NetworkHomeURL)+"/")
	if p := strings.TrimLeft(tenantPath(tenant), "/"); p != "" {
		key = strings.TrimPrefix(key, p)
	}
	return key
}

// AttachmentInfo returns the serialized post meta value tagging an attachment.
func AttachmentInfo(bucket, key string) string {
	return phpserial.Encode(phpserial.Map(
		"bucket", phpserial.String(bucket),
		"key", phpserial.String(key),
	))
}
