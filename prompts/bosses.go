package prompts

import (
	"github.com/spektr-org/prototypes/datasets"
	"github.com/spektr-org/prototypes/engine"
)

// Bosses queries the bosses and sidekicks datasets together.
type Bosses struct{ set *datasets.Set }

// BossLoyalty is the summed loyalty of a boss's sidekicks.
type BossLoyalty struct {
	BossName        string `json:"bossName" yaml:"bossName"`
	SidekickLoyalty int    `json:"sidekickLoyalty" yaml:"sidekickLoyalty"`
}

// BossLoyalty sums sidekick loyalty per boss. Bosses without sidekicks are
// left out.
func (b Bosses) BossLoyalty() []BossLoyalty {
	matches := engine.Join(b.set.Bosses(), b.set.Sidekicks(),
		func(boss datasets.Boss) string { return boss.Name },
		func(s datasets.Sidekick) string { return s.Boss })
	return engine.Map(matches, func(m engine.Match[datasets.Boss, datasets.Sidekick]) BossLoyalty {
		total := 0
		for _, s := range m.Right {
			total += s.LoyaltyToBoss
		}
		return BossLoyalty{BossName: m.Left.Name, SidekickLoyalty: total}
	})
}

func (b Bosses) queries() []engine.Query {
	return []engine.Query{
		query("bosses", "bossLoyalty", "total sidekick loyalty per boss", b.BossLoyalty),
	}
}
