package query

import (
	"time"

	"github.com/securevoice/securevoice-core/models"
)

// trendDays is the window for the daily submission trend
const trendDays = 30

// ResolutionMetrics summarizes how long resolved complaints have been open,
// in whole days since submission
type ResolutionMetrics struct {
	AverageDays   int
	FastestDays   int
	SlowestDays   int
	TotalResolved int
}

// Stats is the analytics snapshot consumed by the dashboard collaborator.
// Callers gate access with the view_analytics capability.
type Stats struct {
	Total      int
	ByStatus   map[models.Status]int
	ByCategory map[models.Category]int
	ByPriority map[models.Priority]int
	DailyTrend map[string]int // yyyy-mm-dd for the last 30 days
	Resolution ResolutionMetrics
}

// ComputeStats derives the full analytics snapshot from a store snapshot
func ComputeStats(in []models.Complaint, now time.Time) Stats {
	s := Stats{
		Total:      len(in),
		ByStatus:   map[models.Status]int{},
		ByCategory: map[models.Category]int{},
		ByPriority: map[models.Priority]int{},
		DailyTrend: map[string]int{},
	}

	for i := 0; i < trendDays; i++ {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		s.DailyTrend[day] = 0
	}

	var resolutionDays []int
	for _, c := range in {
		s.ByStatus[c.Status]++
		s.ByCategory[c.Category]++
		s.ByPriority[c.Priority]++

		day := c.CreatedAt.Format("2006-01-02")
		if _, ok := s.DailyTrend[day]; ok {
			s.DailyTrend[day]++
		}

		if c.Status == models.StatusResolved {
			resolutionDays = append(resolutionDays, int(now.Sub(c.CreatedAt).Hours()/24))
		}
	}

	s.Resolution = resolutionMetrics(resolutionDays)
	return s
}

func resolutionMetrics(days []int) ResolutionMetrics {
	if len(days) == 0 {
		return ResolutionMetrics{}
	}

	m := ResolutionMetrics{
		TotalResolved: len(days),
		FastestDays:   days[0],
		SlowestDays:   days[0],
	}
	sum := 0
	for _, d := range days {
		sum += d
		if d < m.FastestDays {
			m.FastestDays = d
		}
		if d > m.SlowestDays {
			m.SlowestDays = d
		}
	}
	m.AverageDays = (sum + len(days)/2) / len(days)
	return m
}
