// Package cdn drives the move of a network's uploaded content onto a CDN, and
// back. Each tenant's attachments are tagged (or untagged) and every text
// column is rewritten in keyset-ordered batches.
package cdn

import (
	"context"

	"github.com/pkg/errors"
	"github.com/stackrox/cdn-migrator/migrator/store"
	"github.com/stackrox/cdn-migrator/pkg/logging"
	"github.com/stackrox/cdn-migrator/pkg/metrics"
	"github.com/stackrox/cdn-migrator/pkg/rewrite"
)

var log = logging.LoggerForModule()

// ProgressFunc is called after each tenant completes.
type ProgressFunc func(done, total int)

type migration struct {
	store    store.Store
	cfg      Config
	report   *Report
	progress ProgressFunc
}

// Run migrates every tenant of the network in the direction cfg names.
//
// Query failures abort the run. Rows the store refuses to update are recorded
// on the report and the run carries on, so callers should inspect Report.Err.
// The report is returned even when the run aborts.
func Run(ctx context.Context, s store.Store, cfg Config, progress ProgressFunc) (*Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m := &migration{
		store:    s,
		cfg:      cfg,
		report:   &Report{Direction: cfg.Direction},
		progress: progress,
	}
	return m.report, m.run(ctx)
}

func (m *migration) run(ctx context.Context) error {
	tenants, err := m.store.Tenants(ctx)
	if err != nil {
		return err
	}
	log.Infof("Running %s over %d tenants", m.cfg.Direction, len(tenants))

	if err := m.updateMarker(ctx); err != nil {
		return err
	}

	for i, tenant := range tenants {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "stopped before tenant %d", tenant.ID)
		}
		if err := m.migrateTenant(ctx, tenant); err != nil {
			return errors.Wrapf(err, "migrating tenant %d", tenant.ID)
		}
		m.report.Tenants++
		metrics.IncTenants(string(m.cfg.Direction))
		if m.progress != nil {
			m.progress(i+1, len(tenants))
		}
	}

	log.Infof("Parsed %d attachments, changed %d URLs in %d rows", m.report.Attachments, m.report.Substitutions, m.report.RowsUpdated)
	if len(m.report.Failed) > 0 {
		log.Warnf("%d rows could not be updated", len(m.report.Failed))
	}
	return nil
}

func (m *migration) updateMarker(ctx context.Context) error {
	if m.cfg.Direction == Undo {
		_, err := m.store.DeleteNetworkOption(ctx, MarkerOption)
		return err
	}
	return m.store.SetNetworkOption(ctx, MarkerOption, trimURL(m.cfg.CDNURL))
}

func (m *migration) migrateTenant(ctx context.Context, tenant store.Tenant) error {
	if m.cfg.Direction == Undo {
		n, err := m.store.DeletePostMeta(ctx, tenant, AttachmentMetaKey)
		if err != nil {
			return err
		}
		m.report.Attachments += n
		metrics.ObserveAttachments(string(m.cfg.Direction), int(n))
	} else if err := m.tagAttachments(ctx, tenant); err != nil {
		return err
	}

	for _, pass := range m.cfg.Passes(tenant) {
		r, err := rewrite.New(pass.Old, pass.New, rewrite.WithMaxDepth(m.cfg.MaxDepth))
		if err != nil {
			return err
		}
		log.Debugf("Tenant %d: replacing %s with %s", tenant.ID, pass.Old, pass.New)
		for _, col := range store.TextColumns {
			if err := m.rewriteColumn(ctx, r, tenant, col); err != nil {
				return err
			}
		}
	}
	return nil
}

// rewriteColumn walks one column in id order, batchSize rows at a time.
func (m *migration) rewriteColumn(ctx context.Context, r *rewrite.Rewriter, tenant store.Tenant, col store.Column) error {
	direction := string(m.cfg.Direction)
	var afterID int64
	total := 0

	for {
		rows, err := m.store.ScanColumn(ctx, tenant, col, afterID, m.cfg.BatchSize)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			break
		}
		afterID = rows[len(rows)-1].RowID

		updated, n := r.Partition(rows)
		m.report.Substitutions += n
		total += n
		metrics.ObserveSubstitutions(direction, col.Name, n)

		for _, target := range updated {
			m.writeRow(ctx, tenant, col, target)
		}

		if len(rows) < m.cfg.BatchSize {
			break
		}
	}

	if total > 0 {
		log.Infof("Tenant %d: changed %d URLs in %s", tenant.ID, total, col.Name)
	}
	return nil
}

func (m *migration) writeRow(ctx context.Context, tenant store.Tenant, col store.Column, target rewrite.Target) {
	direction := string(m.cfg.Direction)
	n, err := m.store.UpdateValue(ctx, tenant, col, target.RowID, target.Value)
	if err != nil {
		log.Warnf("Tenant %d: %v", tenant.ID, err)
		m.report.Failed = append(m.report.Failed, target)
		m.report.addError(err)
		metrics.IncRowWriteFailures(direction, col.Name)
		return
	}
	if n == 0 {
		log.Debugf("Tenant %d: %s row %d disappeared before it was updated", tenant.ID, col.Name, target.RowID)
		return
	}
	m.report.RowsUpdated++
	metrics.IncRowsUpdated(direction, col.Name)
}
