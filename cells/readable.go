package cells

// Readable is a typed reactive source, either a *Cell or a *Computed. The
// unexported read method keeps the set closed to this package.
type Readable[T any] interface {
	Node
	read() (T, error)
}
