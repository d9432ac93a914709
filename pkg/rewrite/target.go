package rewrite

// Target is one stored field value to rewrite. It is a plain value: the
// rewriter never keeps a reference to it.
type Target struct {
	// PartitionID identifies the tenant partition the row belongs to.
	PartitionID int64
	// RowID is the primary key of the row within its table.
	RowID int64
	// Column names the column the value was read from.
	Column string
	// Value is the raw text of the field.
	Value string
}
