package daily

import (
	"time"

	"github.com/MyuRay/ONE-FIT-HERO/internal/domain/model"
)

// Streak counts consecutive completed days ending at the reference day.
// A run that ended yesterday still counts (today's completion may be
// pending); a gap of more than one day resets the streak to zero.
func Streak(badges []Badge, ref time.Time) int {
	if len(badges) == 0 {
		return 0
	}

	days := make(map[string]struct{}, len(badges))
	for _, b := range badges {
		days[b.Date] = struct{}{}
	}

	day := ref
	if _, ok := days[model.DayOf(day)]; !ok {
		// Allow the streak to anchor at yesterday.
		day = day.AddDate(0, 0, -1)
		if _, ok := days[model.DayOf(day)]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := days[model.DayOf(day)]; !ok {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
