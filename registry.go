package plotgeom

import (
	"github.com/hvogt/plotgeom/data"
)

// ----------------------------------------------------------------------------
// Registry

// A Registry maps the display labels of a categorical bar axis to
// their numeric positions. Positions are assigned in first-seen order
// starting at 1, with no gaps and no duplicates; once assigned, a
// label keeps its position for the lifetime of the Registry. A caller
// that wants bar positions to stay stable across successive plot
// calls keeps one Registry per plotting session and passes it to every
// Resolve call. A Registry must not be shared between concurrent
// sessions.
type Registry struct {
	pos    map[string]int
	labels []string
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{pos: make(map[string]int)}
}

// Len returns the number of registered labels.
func (r *Registry) Len() int { return len(r.pos) }

// Pos returns the position of label and whether it is registered.
func (r *Registry) Pos(label string) (int, bool) {
	p, ok := r.pos[label]
	return p, ok
}

// Labels returns all registered labels in position order, i.e. the
// label at index i sits at coordinate i+1. Renderers use this to place
// the tick marks of a categorical axis.
func (r *Registry) Labels() []string {
	ls := make([]string, len(r.labels))
	copy(ls, r.labels)
	return ls
}

// ----------------------------------------------------------------------------
// Series

// Series is the result of resolving one batch of x values.
// It is recomputed on every Resolve call and not retained.
type Series struct {
	// Coords are the numeric coordinates of the batch: the raw values
	// for a numeric batch, the registry positions for a labelled one.
	Coords []float64

	// Labels are the display labels, one per input element.
	Labels []string

	// Labelled reports whether the batch was resolved through the
	// registry.
	Labelled bool
}

// Resolve maps one batch of x values to numeric coordinates and
// display labels.
//
// If every element is numeric the batch is not labelled: coordinates
// are the raw values unchanged, labels their canonical tick form, and
// the registry is untouched. If any element is a label the whole batch
// is labelled: every element is used in its string form, known labels
// reuse their stored position and new labels are appended to the
// registry in input order. Resolving the same label against the same
// registry always yields the same position.
func (r *Registry) Resolve(xs []data.Value) Series {
	s := Series{
		Coords: make([]float64, len(xs)),
		Labels: make([]string, len(xs)),
	}

	if !data.AnyLabel(xs) {
		for i, v := range xs {
			s.Coords[i] = v.Float()
			s.Labels[i] = v.String()
		}
		return s
	}

	s.Labelled = true
	for i, v := range xs {
		label := v.String()
		p, ok := r.pos[label]
		if !ok {
			p = len(r.pos) + 1
			r.pos[label] = p
			r.labels = append(r.labels, label)
		}
		s.Coords[i] = float64(p)
		s.Labels[i] = label
	}
	return s
}
