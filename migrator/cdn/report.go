package cdn

import (
	"github.com/hashicorp/go-multierror"
	"github.com/stackrox/cdn-migrator/pkg/rewrite"
)

// Report holds the counters of one run.
type Report struct {
	Direction Direction
	// Tenants is the number of tenants fully processed.
	Tenants int
	// Attachments is the number of attachments tagged, or untagged on undo.
	Attachments int64
	// Substitutions is the number of URL occurrences replaced.
	Substitutions int
	// RowsUpdated is the number of rows written back.
	RowsUpdated int
	// Failed holds the rewritten rows the store did not accept.
	Failed []rewrite.Target

	errs *multierror.Error
}

func (r *Report) addError(err error) {
	r.errs = multierror.Append(r.errs, err)
}

// Err returns every write failure of the run combined, or nil.
func (r *Report) Err() error {
	return r.errs.ErrorOrNil()
}
