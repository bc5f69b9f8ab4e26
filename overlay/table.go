package overlay

import (
	"github.com/Project-PenguinOS/frameworks-base/parcel"
)

// A Handle is an opaque token naming a descriptor owned by a
// [Table]. The zero Handle names nothing; boundary queries on it
// degrade to "unsupported".
type Handle uint64

// A Table owns live descriptors on behalf of a boundary that cannot
// hold Go pointers, handing out opaque handles instead. Construct one
// at startup and pass it to the code that crosses the boundary; there
// is no process-wide table.
//
// A Table is not safe for concurrent use; the owner serializes access
// the same way it would for the descriptors themselves.
type Table struct {
	props map[Handle]*Properties
	next  Handle
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{props: make(map[Handle]*Properties)}
}

// Add takes ownership of p and returns its handle. Add of nil returns
// the zero Handle.
func (t *Table) Add(p *Properties) Handle {
	if p == nil {
		return 0
	}
	t.next++
	t.props[t.next] = p
	return t.next
}

// Get returns the descriptor named by h, or nil if h is zero,
// destroyed, or unknown.
func (t *Table) Get(h Handle) *Properties {
	return t.props[h]
}

// Destroy releases the descriptor named by h. Destroying the zero
// handle or an already-destroyed handle is a no-op.
func (t *Table) Destroy(h Handle) {
	delete(t.props, h)
}

// Len reports the number of live descriptors.
func (t *Table) Len() int { return len(t.props) }

// SupportsFP16ForHDR answers the FP16 HDR query for the descriptor
// named by h, false if h names nothing.
func (t *Table) SupportsFP16ForHDR(h Handle) bool {
	return t.Get(h).SupportsFP16ForHDR()
}

// SupportsMixedColorSpaces answers the mixed-color-space query for
// the descriptor named by h, false if h names nothing.
func (t *Table) SupportsMixedColorSpaces(h Handle) bool {
	return t.Get(h).SupportsMixedColorSpaces()
}

// WriteParcel serializes the descriptor named by h into enc. If h
// names nothing, WriteParcel writes nothing.
func (t *Table) WriteParcel(h Handle, enc *parcel.Encoder) {
	t.Get(h).MarshalParcel(enc)
}

// ReadParcel deserializes one descriptor from dec and adopts it,
// returning its handle. On failure nothing is registered and the zero
// Handle is returned with the error.
func (t *Table) ReadParcel(dec *parcel.Decoder) (Handle, error) {
	p, err := ReadProperties(dec)
	if err != nil {
		return 0, err
	}
	return t.Add(p), nil
}
