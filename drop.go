package cpl

// Dropper is implemented by element types that need cleanup when their
// owning kind releases them. Owners run Drop exactly once, immediately
// before the lifetime token is invalidated.
type Dropper interface {
	Drop()
}

// dropValue runs the element's Dropper, if any. src is the concrete
// pointer to the owned value.
func dropValue(src any) {
	if d, ok := src.(Dropper); ok {
		d.Drop()
	}
}

// noCopy is embedded into kinds that must not be copied by plain
// assignment, so `go vet -copylocks` flags the copy. See
// golang.org/issues/8005.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
