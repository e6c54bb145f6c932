package testutil

// Wide is a 128-byte element. With the default 512-byte buffer budget a
// deque of Wide holds 4 elements per buffer, which makes boundary crossings
// and index regrowth happen after a handful of pushes.
type Wide struct {
	V int64
	_ [120]byte
}

// W builds a Wide carrying v.
func W(v int) Wide { return Wide{V: int64(v)} }

// WideValues extracts the payloads of a slice of Wide.
func WideValues(ws []Wide) []int {
	out := make([]int, len(ws))
	for i, w := range ws {
		out[i] = int(w.V)
	}
	return out
}

// Registry counts the lifecycle events of Tracked elements.
type Registry struct {
	Created   int
	Destroyed int
}

// Live returns the number of Tracked elements created and not yet destroyed.
func (r *Registry) Live() int { return r.Created - r.Destroyed }

// New creates a Tracked element registered with r.
func (r *Registry) New(id int) Tracked {
	r.Created++
	return Tracked{ID: id, Tags: []int{id}, reg: r}
}

// Tracked is an element that owns a slice and reports creation and
// destruction to its Registry. It implements seq.Cloner and seq.Destroyer.
type Tracked struct {
	ID   int
	Tags []int
	reg  *Registry
}

// Clone returns a deep copy registered as a new element.
func (t Tracked) Clone() Tracked {
	if t.reg != nil {
		t.reg.Created++
	}
	tags := make([]int, len(t.Tags))
	copy(tags, t.Tags)
	return Tracked{ID: t.ID, Tags: tags, reg: t.reg}
}

// Destroy reports the element as destroyed.
func (t *Tracked) Destroy() {
	if t.reg != nil {
		t.reg.Destroyed++
	}
}

// TrackedIDs extracts the IDs of a slice of Tracked.
func TrackedIDs(ts []Tracked) []int {
	out := make([]int, len(ts))
	for i, t := range ts {
		out[i] = t.ID
	}
	return out
}

// Seq returns [from, from+n).
func Seq(from, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = from + i
	}
	return out
}
