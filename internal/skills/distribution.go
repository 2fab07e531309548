package skills

import (
	"sort"

	"github.com/muhammadolammi/hirematch/internal/model"
)

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

// Distribution counts how many candidates list each canonical skill. Skills
// seen fewer than minFrequency times are dropped; topN <= 0 keeps all.
func Distribution(candidates []model.Candidate, topN, minFrequency int) []SkillCount {
	counts := make(map[string]int)
	for _, c := range candidates {
		for _, s := range Normalize(c.Skills) {
			counts[s]++
		}
	}

	out := make([]SkillCount, 0, len(counts))
	for skill, n := range counts {
		if n < minFrequency {
			continue
		}
		out = append(out, SkillCount{Skill: skill, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Skill < out[j].Skill
	})
	if topN > 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}
