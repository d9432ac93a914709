package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(substitutions.WithLabelValues("migrate", "content"))
	ObserveSubstitutions("migrate", "content", 3)
	ObserveSubstitutions("migrate", "content", 0)
	assert.Equal(t, before+3, testutil.ToFloat64(substitutions.WithLabelValues("migrate", "content")))

	IncRowsUpdated("undo", "options")
	assert.GreaterOrEqual(t, testutil.ToFloat64(rowsUpdated.WithLabelValues("undo", "options")), 1.0)

	IncRowWriteFailures("undo", "options")
	assert.GreaterOrEqual(t, testutil.ToFloat64(rowWriteFailures.WithLabelValues("undo", "options")), 1.0)

	ObserveAttachments("migrate", 2)
	IncTenants("migrate")
	assert.GreaterOrEqual(t, testutil.ToFloat64(attachments.WithLabelValues("migrate")), 2.0)
	assert.GreaterOrEqual(t, testutil.ToFloat64(tenants.WithLabelValues("migrate")), 1.0)
}
