package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Clubs queries the clubs dataset.
type Clubs struct{ set *datasets.Set }

// MembersBelongingToClubs maps each member to the clubs they belong to, e.g.
// { Louisa: [Drama, Art], Pam: [Drama, Art, Chess], ... }.
func (c Clubs) MembersBelongingToClubs() *engine.OrderedMap[string, []string] {
	memberships := engine.FlatMap(c.set.Clubs(), func(club datasets.Club) []engine.Pair[string, string] {
		return engine.Map(club.Members, func(m string) engine.Pair[string, string] {
			return engine.Pair[string, string]{Key: m, Value: club.Club}
		})
	})
	return engine.Aggregate(memberships,
		engine.PairKey[string, string], engine.PairValue[string, string],
		engine.AppendAll[string]())
}

func (c Clubs) queries() []engine.Query {
	return []engine.Query{
		query("clubs", "membersBelongingToClubs", "member → clubs they belong to", c.MembersBelongingToClubs),
	}
}
