package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Ultima queries the weapons and characters datasets together.
type Ultima struct{ set *datasets.Set }

// WeaponTotals is the summed damage and range of a character's weapons.
type WeaponTotals struct {
	Damage int `json:"damage" yaml:"damage"`
	Range  int `json:"range" yaml:"range"`
}

// TotalDamage sums the damage of every weapon every character can use.
// A weapon held by two characters counts twice.
func (u Ultima) TotalDamage() int {
	total := 0
	for _, t := range u.totals() {
		total += t.Value.Damage
	}
	return total
}

// CharactersByTotal returns each character's weapon totals, e.g.
// [{Avatar: {damage: 27, range: 24}}, ...].
func (u Ultima) CharactersByTotal() []engine.Entry[WeaponTotals] {
	return u.totals()
}

func (u Ultima) totals() []engine.Entry[WeaponTotals] {
	matches := engine.JoinMany(u.set.Characters(), u.set.Weapons(),
		func(c datasets.Character) []string { return c.Weapons },
		func(w datasets.Weapon) string { return w.Name })
	return engine.Map(matches, func(m engine.Match[datasets.Character, datasets.Weapon]) engine.Entry[WeaponTotals] {
		var t WeaponTotals
		for _, w := range m.Right {
			t.Damage += w.Damage
			t.Range += w.Range
		}
		return engine.Entry[WeaponTotals]{Key: m.Left.Name, Value: t}
	})
}

func (u Ultima) queries() []engine.Query {
	return []engine.Query{
		query("ultima", "totalDamage", "total damage of all usable weapons", u.TotalDamage),
		query("ultima", "charactersByTotal", "character → damage and range totals", u.CharactersByTotal),
	}
}
