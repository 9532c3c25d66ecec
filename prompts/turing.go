package prompts

import (
	"slices"
	"strconv"

	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Turing queries the instructors and cohorts datasets together.
type Turing struct{ set *datasets.Set }

// InstructorStudents is one instructor with the size of a cohort in their
// module.
type InstructorStudents struct {
	Name         string `json:"name" yaml:"name"`
	StudentCount int    `json:"studentCount" yaml:"studentCount"`
}

// StudentsForEachInstructor joins instructors to cohorts on module and
// returns one entry per match, e.g. [{Pam 21}, {Robbie 18}].
func (t Turing) StudentsForEachInstructor() []InstructorStudents {
	matches := engine.Join(t.set.Instructors(), t.set.Cohorts(), instructorModule, cohortModule)
	return engine.FlatMap(matches, func(m engine.Match[datasets.Instructor, datasets.Cohort]) []InstructorStudents {
		return engine.Map(m.Right, func(c datasets.Cohort) InstructorStudents {
			return InstructorStudents{Name: m.Left.Name, StudentCount: c.StudentCount}
		})
	})
}

// StudentsPerInstructor maps "cohort<N>" to students per instructor in
// that cohort's module. Cohorts whose module has no instructor are left out.
func (t Turing) StudentsPerInstructor() *engine.OrderedMap[string, float64] {
	perModule := engine.CountBy(t.set.Instructors(), instructorModule)
	out := engine.NewOrderedMap[string, float64]()
	for _, c := range t.set.Cohorts() {
		if n, ok := perModule.Get(c.Module); ok {
			out.Set("cohort"+strconv.Itoa(c.Cohort), float64(c.StudentCount)/float64(n))
		}
	}
	return out
}

// ModulesPerTeacher maps each instructor to the modules whose curriculum
// shares at least one topic with what they teach, e.g. { Robbie: [4] }.
func (t Turing) ModulesPerTeacher() *engine.OrderedMap[string, []int] {
	cohorts := t.set.Cohorts()
	var pairs []engine.Pair[string, int]
	for _, in := range t.set.Instructors() {
		for _, c := range cohorts {
			if overlaps(in.Teaches, c.Curriculum) {
				pairs = append(pairs, engine.Pair[string, int]{Key: in.Name, Value: c.Module})
			}
		}
	}
	return engine.Aggregate(pairs, engine.PairKey[string, int], engine.PairValue[string, int], engine.AppendUnique[int]())
}

// CurriculumPerTeacher maps each curriculum topic to the instructors who
// teach it. Topics follow cohort curriculum order; instructors keep dataset
// order.
func (t Turing) CurriculumPerTeacher() *engine.OrderedMap[string, []string] {
	instructors := t.set.Instructors()
	topics := engine.Unique(engine.FlatMap(t.set.Cohorts(), func(c datasets.Cohort) []string { return c.Curriculum }), identity)
	pairs := engine.FlatMap(topics, func(topic string) []engine.Pair[string, string] {
		var out []engine.Pair[string, string]
		for _, in := range instructors {
			if slices.Contains(in.Teaches, topic) {
				out = append(out, engine.Pair[string, string]{Key: topic, Value: in.Name})
			}
		}
		return out
	})
	return engine.Aggregate(pairs, engine.PairKey[string, string], engine.PairValue[string, string], engine.AppendUnique[string]())
}

func instructorModule(i datasets.Instructor) int { return i.Module }
func cohortModule(c datasets.Cohort) int         { return c.Module }

func overlaps(a, b []string) bool {
	return slices.ContainsFunc(a, func(s string) bool { return slices.Contains(b, s) })
}

func (t Turing) queries() []engine.Query {
	return []engine.Query{
		query("turing", "studentsForEachInstructor", "instructor and student count per matching cohort", t.StudentsForEachInstructor),
		query("turing", "studentsPerInstructor", "cohort → students per instructor", t.StudentsPerInstructor),
		query("turing", "modulesPerTeacher", "instructor → modules they can teach", t.ModulesPerTeacher),
		query("turing", "curriculumPerTeacher", "topic → instructors teaching it", t.CurriculumPerTeacher),
	}
}
