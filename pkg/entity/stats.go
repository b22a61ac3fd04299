package entity

import "math"

// Summarize aggregates lifetime totals over a user's records.
// An empty input gives a zero snapshot with a nil LastRecordDate.
// CurrentStreak is left untouched, it needs day-by-day lookups.
func Summarize(records []*VirtueRecord) UserStatsSnapshot {
	var snapshot UserStatsSnapshot
	if len(records) == 0 {
		return snapshot
	}
	rateSum := 0
	for _, r := range records {
		snapshot.TotalDays++
		snapshot.TotalCompletedVirtues += r.Stats.CompletedCount
		rateSum += r.Stats.CompletionRate
		if r.Stats.CompletedCount > snapshot.BestDayCount {
			snapshot.BestDayCount = r.Stats.CompletedCount
		}
		if snapshot.LastRecordDate == nil || r.Date.After(*snapshot.LastRecordDate) {
			d := r.Date
			snapshot.LastRecordDate = &d
		}
	}
	snapshot.AvgCompletionRate = int(math.Round(float64(rateSum) / float64(snapshot.TotalDays)))
	return snapshot
}
