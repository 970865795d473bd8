package core

import (
	"context"
	"fmt"
	"time"
)

const (
	sentPoints     = 10
	receivedPoints = 15
	maxScore       = 100
	recentWindow   = 7 * 24 * time.Hour
)

// TimeNow is the clock used for the recent activity window.
var TimeNow = time.Now

type kindnessLevel struct {
	minScore int
	name     string
	badge    string
}

// ordered from the highest threshold down
var kindnessLevels = []kindnessLevel{
	{80, "Kindness Champion", "🏆"},
	{60, "Heart Warrior", "⭐"},
	{40, "Care Giver", "💝"},
	{20, "Kind Soul", "🌱"},
	{0, "New Friend", "👋"},
}

// GetStats summarizes the care activity of an address. Unknown addresses get
// zeroed stats.
func (s *CareService) GetStats(ctx context.Context, address string) (Stats, error) {
	tokens, err := s.repo.GetCareTokensByAddress(ctx, address)
	if err != nil {
		return Stats{}, fmt.Errorf("get care tokens by address: %w", err)
	}

	receipts, err := s.repo.GetCareReceiptsByAddress(ctx, address)
	if err != nil {
		return Stats{}, fmt.Errorf("get care receipts by address: %w", err)
	}

	since := TimeNow().Add(-recentWindow)
	recent := 0
	for _, token := range tokens {
		if token.CreatedAt.After(since) {
			recent++
		}
	}
	for _, receipt := range receipts {
		if receipt.CreatedAt.After(since) {
			recent++
		}
	}

	score := KindnessScore(len(tokens), len(receipts))
	level, badge := KindnessLevel(score)

	return Stats{
		TotalSent:      len(tokens),
		TotalReceived:  len(receipts),
		KindnessScore:  score,
		RecentActivity: recent,
		Level:          level,
		Badge:          badge,
	}, nil
}

func KindnessScore(sent, received int) int {
	return min(maxScore, sent*sentPoints+received*receivedPoints)
}

func KindnessLevel(score int) (string, string) {
	for _, l := range kindnessLevels {
		if score >= l.minScore {
			return l.name, l.badge
		}
	}
	last := kindnessLevels[len(kindnessLevels)-1]
	return last.name, last.badge
}
