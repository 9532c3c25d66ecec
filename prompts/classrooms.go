package prompts

import (
	"cmp"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Classrooms queries the classrooms dataset.
type Classrooms struct{ set *datasets.Set }

// Capacities is the total seat count per program.
type Capacities struct {
	FECapacity int `json:"feCapacity" yaml:"feCapacity"`
	BECapacity int `json:"beCapacity" yaml:"beCapacity"`
}

// FEClassrooms returns the front-end classrooms.
func (c Classrooms) FEClassrooms() []datasets.Classroom {
	fe := engine.ApplyFilters(classroomView.Bind(c.set.Classrooms()), engine.Only("program", "FE"))
	return nonNil(engine.Materialize[datasets.Classroom](fe))
}

// TotalCapacities sums capacity per program.
func (c Classrooms) TotalCapacities() Capacities {
	groups := engine.GroupAndAggregate(classroomView.Bind(c.set.Classrooms()),
		[]string{"program"}, "capacity", engine.AggSum, engine.SortNone, 0)
	totals := engine.GroupValues(groups)
	fe, _ := totals.Get("FE")
	be, _ := totals.Get("BE")
	return Capacities{FECapacity: int(fe), BECapacity: int(be)}
}

// SortByCapacity returns the classrooms smallest first.
func (c Classrooms) SortByCapacity() []datasets.Classroom {
	return engine.SortedCopy(c.set.Classrooms(), func(a, b datasets.Classroom) int {
		return cmp.Compare(a.Capacity, b.Capacity)
	})
}

func (c Classrooms) queries() []engine.Query {
	return []engine.Query{
		query("classrooms", "feClassrooms", "front-end classrooms", c.FEClassrooms),
		query("classrooms", "totalCapacities", "total capacity per program", c.TotalCapacities),
		query("classrooms", "sortByCapacity", "classrooms sorted by capacity", c.SortByCapacity),
	}
}
