// Package ranking derives the fully recomputed, ranked leaderboard
// projection from the session ledger.
package ranking

import (
	"sort"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// prizeRanks is the number of top ranks that carry a prize ticket.
const prizeRanks = 3

// Seed is a historical identity used to populate the leaderboard until
// real sessions exist for it. Seeds never override aggregated data.
type Seed struct {
	Identity      string
	TotalWorkouts int
	Score         int
}

// Entry is one leaderboard row. Entries are derived, never stored.
type Entry struct {
	Identity       string
	TotalWorkouts  int
	Score          int
	Rank           int
	HasPrizeTicket bool
}

// Build recomputes the full leaderboard from the session ledger, the
// seed set and the current identity.
//
// Identities are aggregated in first-seen order; ties on score keep
// that order, so repeated recomputation over the same inputs yields
// identical output. Ranks are a dense 1..N permutation. The current
// identity (or the default demo identity when empty) is always present
// even with zero sessions.
func Build(sessions []model.WorkoutSession, seeds []Seed, current string) []Entry {
	type agg struct {
		score         int
		totalWorkouts int
	}

	var order []string
	totals := make(map[string]*agg)
	add := func(identity string, score, workouts int) *agg {
		a, ok := totals[identity]
		if !ok {
			a = &agg{}
			totals[identity] = a
			order = append(order, identity)
		}
		a.score += score
		a.totalWorkouts += workouts
		return a
	}

	for _, s := range sessions {
		add(s.Identity, s.UserScore+s.TrainerScore, 1)
	}

	// Seeds fill in only where no real session exists for the identity.
	for _, seed := range seeds {
		if _, ok := totals[seed.Identity]; !ok {
			add(seed.Identity, seed.Score, seed.TotalWorkouts)
		}
	}

	active := current
	if active == "" {
		active = model.DefaultIdentity
	}
	if _, ok := totals[active]; !ok {
		add(active, 0, 0)
	}

	entries := make([]Entry, 0, len(order))
	for _, identity := range order {
		a := totals[identity]
		entries = append(entries, Entry{
			Identity:      identity,
			TotalWorkouts: a.totalWorkouts,
			Score:         a.score,
		})
	}

	// Stable sort keeps first-seen order for equal scores.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})

	for i := range entries {
		entries[i].Rank = i + 1
		entries[i].HasPrizeTicket = i < prizeRanks
	}

	return entries
}

// RankOf returns the rank of an identity in a built leaderboard, or 0
// if the identity is absent.
func RankOf(entries []Entry, identity string) int {
	for _, e := range entries {
		if e.Identity == identity {
			return e.Rank
		}
	}
	return 0
}

// DefaultSeeds returns the fixed demo population used until real
// identities take over.
func DefaultSeeds() []Seed {
	return []Seed{
		{Identity: "0xabcdef1234567890abcdef1234567890abcdef12", TotalWorkouts: 28, Score: 54200},
		{Identity: "0x9876543210fedcba9876543210fedcba98765432", TotalWorkouts: 25, Score: 48900},
		{Identity: "0xfedcba0987654321fedcba0987654321fedcba09", TotalWorkouts: 22, Score: 42100},
		{Identity: "0x1111222233334444555566667777888899990000", TotalWorkouts: 19, Score: 38500},
		{Identity: "0xaaaaaaaabbbbbbbbccccccccddddddddeeeeeeee", TotalWorkouts: 16, Score: 34800},
		{Identity: "0xffffffffeeeeeeeeddddddddccccccccbbbbbbbb", TotalWorkouts: 14, Score: 31200},
		{Identity: "0x9999888877776666555544443333222211110000", TotalWorkouts: 12, Score: 27800},
	}
}
