// Package dataset loads the pre-analyzed call table into an immutable
// in-memory snapshot keyed by recording URL. The snapshot is built once at
// startup and only read afterwards, so lookups need no locking.
package dataset

// Row holds one source row's non-null cells, keyed by column name after
// load-time renames. A column missing from the map was either absent from the
// source or held a null marker.
type Row map[string]string

// Dataset is the recording-URL -> row snapshot.
type Dataset struct {
	rows map[string]Row
}

// Empty returns a valid zero-row snapshot. Load failures settle on this so the
// service starts and answers 503 per request instead of crashing.
func Empty() *Dataset {
	return &Dataset{rows: map[string]Row{}}
}

// Get returns the row for key, if present.
func (d *Dataset) Get(key string) (Row, bool) {
	if d == nil {
		return nil, false
	}
	row, ok := d.rows[key]
	return row, ok
}

// Len reports the number of keyed rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Each calls fn for every key and row in the snapshot.
func (d *Dataset) Each(fn func(key string, row Row)) {
	if d == nil {
		return
	}
	for k, r := range d.rows {
		fn(k, r)
	}
}
