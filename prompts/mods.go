package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Mods queries the mods dataset.
type Mods struct{ set *datasets.Set }

// ModRatio is the student/instructor ratio of one mod.
type ModRatio struct {
	Mod                   int     `json:"mod" yaml:"mod"`
	StudentsPerInstructor float64 `json:"studentsPerInstructor" yaml:"studentsPerInstructor"`
}

// StudentsPerMod returns students per instructor for each mod.
// A mod without instructors reports 0.
func (m Mods) StudentsPerMod() []ModRatio {
	return engine.Map(m.set.Mods(), func(mod datasets.Mod) ModRatio {
		r := ModRatio{Mod: mod.Mod}
		if mod.Instructors > 0 {
			r.StudentsPerInstructor = float64(mod.Students) / float64(mod.Instructors)
		}
		return r
	})
}

func (m Mods) queries() []engine.Query {
	return []engine.Query{
		query("mods", "studentsPerMod", "students per instructor in each mod", m.StudentsPerMod),
	}
}
