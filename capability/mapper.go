package capability

import "github.com/coregx/browscap/fields"

// UnknownValue is substituted for any field whose catalog cell was empty
// or missing.
const UnknownValue = "Unknown"

// DefaultBrowserValue is the value the wildcard sentinel rule reports for
// the BROWSER and BROWSER_TYPE fields.
const DefaultBrowserValue = "Default Browser"

// Projection is the ordered, immutable subset of fields a Parser exposes.
// It is built once at construction time from the caller's requested
// fields merged with the default set, and never mutated afterwards.
type Projection struct {
	order []*fields.Field
	pos   map[*fields.Field]int
}

// NewProjection builds a Projection from the given fields, deduplicating
// by field identity and preserving first-seen order.
func NewProjection(fs []*fields.Field) *Projection {
	pos := make(map[*fields.Field]int, len(fs))
	order := make([]*fields.Field, 0, len(fs))
	for _, f := range fs {
		if _, seen := pos[f]; seen {
			continue
		}
		pos[f] = len(order)
		order = append(order, f)
	}
	return &Projection{order: order, pos: pos}
}

// MergeWithDefault returns a Projection that is the union of requested and
// fields.Default(), with defaults placed first and requested fields
// appended in the order given (duplicates removed by identity).
func MergeWithDefault(requested []*fields.Field) *Projection {
	merged := make([]*fields.Field, 0, len(requested)+6)
	merged = append(merged, fields.Default()...)
	merged = append(merged, requested...)
	return NewProjection(merged)
}

// Len returns the number of fields in the projection.
func (p *Projection) Len() int {
	return len(p.order)
}

// Fields returns the projection's fields in position order.
func (p *Projection) Fields() []*fields.Field {
	out := make([]*fields.Field, len(p.order))
	copy(out, p.order)
	return out
}

// position returns the tuple index for field, and whether it is present
// in the projection.
func (p *Projection) position(f *fields.Field) (int, bool) {
	i, ok := p.pos[f]
	return i, ok
}

// FieldAt returns the field occupying the given tuple position, or nil if
// out of range. Used to build the wildcard sentinel's capability override
// (spec.md §4.9) without needing a reverse map kept separately.
func (p *Projection) FieldAt(position int) *fields.Field {
	if position < 0 || position >= len(p.order) {
		return nil
	}
	return p.order[position]
}
