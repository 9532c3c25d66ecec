package engine

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// Queries never own dataset records. They read through this interface.
//
// Implementations:
//   DomainView[T]  reads typed structs via accessor functions
//   SubView        filtered subset, indices into a parent
//   ConcatView     several views back to back
//
// Each prompts collection declares its adapter once and binds it per call.
// Materialize and At turn any view rooted in a DomainView[T] back into T.
// ============================================================================

// RecordView provides indexed access to a dataset.
// Dimension/Measure are called in tight loops — keep implementations fast.
type RecordView interface {
	Len() int
	Dimension(index int, key string) string
	Measure(index int, key string) float64
	DimensionKeys() []string // available dimension keys
	MeasureKeys() []string   // available measure keys
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered subset of a parent RecordView.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Dimension(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) DimensionKeys() []string { return v.parent.DimensionKeys() }
func (v *SubView) MeasureKeys() []string   { return v.parent.MeasureKeys() }

// ============================================================================
// CONCAT VIEW — several views read as one
// ============================================================================

// ConcatView reads its parts back to back. Parts are not copied.
type ConcatView struct {
	parts []RecordView
}

// Concat chains any number of views into one. Calling it with no views
// yields an empty view, never nil.
func Concat(views ...RecordView) RecordView {
	return &ConcatView{parts: views}
}

// locate maps an index of the concatenation to (part, index within part).
func (v *ConcatView) locate(i int) (RecordView, int) {
	if i < 0 {
		return nil, 0
	}
	for _, p := range v.parts {
		n := p.Len()
		if i < n {
			return p, i
		}
		i -= n
	}
	return nil, 0
}

func (v *ConcatView) Len() int {
	n := 0
	for _, p := range v.parts {
		n += p.Len()
	}
	return n
}

func (v *ConcatView) Dimension(i int, key string) string {
	if p, j := v.locate(i); p != nil {
		return p.Dimension(j, key)
	}
	return ""
}

func (v *ConcatView) Measure(i int, key string) float64 {
	if p, j := v.locate(i); p != nil {
		return p.Measure(j, key)
	}
	return 0
}

// DimensionKeys and MeasureKeys report the first part's keys.
func (v *ConcatView) DimensionKeys() []string {
	if len(v.parts) == 0 {
		return nil
	}
	return v.parts[0].DimensionKeys()
}

func (v *ConcatView) MeasureKeys() []string {
	if len(v.parts) == 0 {
		return nil
	}
	return v.parts[0].MeasureKeys()
}

// ============================================================================
// DOMAIN ADAPTER — Zero-copy typed struct access
// ============================================================================
//
// Usage:
//
//	cakeView := engine.NewDomainAdapter[datasets.Cake]().
//	    Dimension("cakeFlavor", func(c datasets.Cake) string { return c.CakeFlavor }).
//	    Measure("inStock", func(c datasets.Cake) float64 { return float64(c.InStock) })
//
//	view := engine.ApplyFilters(cakeView.Bind(set.Cakes()), engine.Only("frosting", "vanilla"))
//	total := engine.SumMeasure(view, "inStock")
//	cakes := engine.Materialize[datasets.Cake](view)
//
// ============================================================================

// DomainAdapter builds a RecordView from typed structs.
// Declare once, bind many times.
type DomainAdapter[T any] struct {
	dimOrder []string
	mesOrder []string
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
}

// NewDomainAdapter creates a new adapter for type T.
func NewDomainAdapter[T any]() *DomainAdapter[T] {
	return &DomainAdapter[T]{
		dims: make(map[string]func(T) string),
		meas: make(map[string]func(T) float64),
	}
}

// Dimension registers a dimension accessor.
func (a *DomainAdapter[T]) Dimension(key string, fn func(T) string) *DomainAdapter[T] {
	if _, exists := a.dims[key]; !exists {
		a.dimOrder = append(a.dimOrder, key)
	}
	a.dims[key] = fn
	return a
}

// Measure registers a measure accessor.
func (a *DomainAdapter[T]) Measure(key string, fn func(T) float64) *DomainAdapter[T] {
	if _, exists := a.meas[key]; !exists {
		a.mesOrder = append(a.mesOrder, key)
	}
	a.meas[key] = fn
	return a
}

// Bind creates a RecordView from a data slice. Zero-copy — holds reference.
func (a *DomainAdapter[T]) Bind(data []T) RecordView {
	return &DomainView[T]{
		data:     data,
		dims:     a.dims,
		meas:     a.meas,
		dimKeys:  a.dimOrder,
		measKeys: a.mesOrder,
	}
}

// DomainView reads typed struct fields via registered accessor functions.
type DomainView[T any] struct {
	data     []T
	dims     map[string]func(T) string
	meas     map[string]func(T) float64
	dimKeys  []string
	measKeys []string
}

func (v *DomainView[T]) Len() int { return len(v.data) }

func (v *DomainView[T]) Dimension(i int, key string) string {
	if i < 0 || i >= len(v.data) {
		return ""
	}
	if fn, ok := v.dims[key]; ok {
		return fn(v.data[i])
	}
	return ""
}

func (v *DomainView[T]) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.data) {
		return 0
	}
	if fn, ok := v.meas[key]; ok {
		return fn(v.data[i])
	}
	return 0
}

func (v *DomainView[T]) DimensionKeys() []string { return v.dimKeys }
func (v *DomainView[T]) MeasureKeys() []string   { return v.measKeys }

// ============================================================================
// MATERIALIZE — typed records back out of a view
// ============================================================================

// Materialize copies the typed records a view refers to, in view order.
// Views not rooted in a DomainView[T] yield nil.
func Materialize[T any](view RecordView) []T {
	switch v := view.(type) {
	case *DomainView[T]:
		out := make([]T, len(v.data))
		copy(out, v.data)
		return out
	case *SubView:
		parent := Materialize[T](v.parent)
		if parent == nil {
			return nil
		}
		out := make([]T, 0, len(v.indices))
		for _, i := range v.indices {
			out = append(out, parent[i])
		}
		return out
	case *ConcatView:
		var out []T
		for _, p := range v.parts {
			part := Materialize[T](p)
			if part == nil && p.Len() > 0 {
				return nil
			}
			out = append(out, part...)
		}
		return out
	}
	return nil
}

// At returns the typed record at index i of a view rooted in a DomainView[T].
func At[T any](view RecordView, i int) (T, bool) {
	var zero T
	switch v := view.(type) {
	case *DomainView[T]:
		if i < 0 || i >= len(v.data) {
			return zero, false
		}
		return v.data[i], true
	case *SubView:
		if i < 0 || i >= len(v.indices) {
			return zero, false
		}
		return At[T](v.parent, v.indices[i])
	case *ConcatView:
		if p, j := v.locate(i); p != nil {
			return At[T](p, j)
		}
	}
	return zero, false
}
