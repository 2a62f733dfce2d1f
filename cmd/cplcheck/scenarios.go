package main

import "github.com/orenbenkiki/cpl"

// A scenario performs one class of lifetime bug against the library.
// Want names the violation the safe variant is expected to detect; a
// zero Want means the scenario must complete without any violation.
// Scenarios with a non-zero Want dereference dead or missing data and
// are only run under the safe variant.
type scenario struct {
	Name string
	Desc string
	Want cpl.Code
	Run  func()
}

type shape interface {
	Area() float64
}

type circle struct {
	radius float64
}

func (c *circle) Area() float64 { return 3 * c.radius * c.radius }

type square struct {
	side float64
}

func (s *square) Area() float64 { return s.side * s.side }

var scenarios = []scenario{
	{
		Name: "dangling-borrow",
		Desc: "access a borrow after its sole owner is destroyed",
		Want: cpl.CodeDanglingAccess,
		Run: func() {
			owner := cpl.NewUnique(42)
			borrowed := owner.Borrow()
			owner.Reset()
			_ = borrowed.Value()
		},
	},
	{
		Name: "empty-access",
		Desc: "dereference an empty optional holder",
		Want: cpl.CodeEmptyAccess,
		Run: func() {
			var slot cpl.OptionalHolder[int]
			_ = slot.Value()
		},
	},
	{
		Name: "null-reference",
		Desc: "construct a non-null reference from an empty owner",
		Want: cpl.CodeNullReference,
		Run: func() {
			var owner cpl.UniqueOwner[int]
			_ = owner.ToRef()
		},
	},
	{
		Name: "cast-mismatch",
		Desc: "static-cast a borrow to the wrong concrete type",
		Want: cpl.CodeCastMismatch,
		Run: func() {
			holder := cpl.NewHolder(circle{radius: 1})
			wide := cpl.WidenBorrow[shape](holder.Borrow())
			_ = cpl.StaticCastBorrow[square](wide)
		},
	},
	{
		Name: "swap-dangling",
		Desc: "access a borrow taken before its slot was swapped away",
		Want: cpl.CodeDanglingAccess,
		Run: func() {
			filled := cpl.NewOptional(10)
			var empty cpl.OptionalHolder[int]
			borrowed := filled.Borrow()
			filled.Swap(&empty)
			_ = borrowed.Value()
		},
	},
	{
		Name: "frozen-write",
		Desc: "take mutable access through a read-only borrow",
		Want: cpl.CodeConstViolation,
		Run: func() {
			holder := cpl.NewHolder(7)
			frozen := holder.Borrow().ReadOnly()
			_ = frozen.Get()
		},
	},
	{
		Name: "weak-upgrade",
		Desc: "upgrade a weak observer after every owner is gone",
		Want: 0,
		Run: func() {
			owner := cpl.NewShared("payload")
			observer := owner.Weak()
			owner.Reset()
			if upgraded := observer.Lock(); !upgraded.IsNil() {
				panic("weak observer upgraded a destroyed value")
			}
		},
	},
}

func findScenario(name string) (scenario, bool) {
	for _, s := range scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return scenario{}, false
}
