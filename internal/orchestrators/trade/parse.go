package trade

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/theta-arc/internal/entities"
)

// ParseItems reads an offer string such as "#3 #7, gold=50 d=2". Ids are
// deduplicated in first-seen order. Unknown keys are ignored and bad or
// negative amounts count as zero.
func ParseItems(s string) entities.TradeSide {
	side := entities.TradeSide{}
	seen := make(map[int]bool)

	for _, tok := range strings.Fields(strings.ReplaceAll(s, ",", " ")) {
		if rest, ok := strings.CutPrefix(tok, "#"); ok {
			id, err := strconv.Atoi(rest)
			if err != nil || seen[id] {
				continue
			}
			seen[id] = true
			side.Instances = append(side.Instances, id)
			continue
		}

		key, val, ok := strings.Cut(tok, "=")
		if !ok {
			continue
		}
		cur, ok := entities.ParseCurrency(key)
		if !ok {
			continue
		}
		amt, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil || amt < 0 {
			amt = 0
		}
		side.Shards.Set(cur, side.Shards.Get(cur)+amt)
	}
	return side
}
