// Package timeseries buckets dated values into dense daily series.
package timeseries

import "time"

// DateLayout is the calendar-date bucket key format.
const DateLayout = "2006-01-02"

// Point is one daily bucket.
type Point struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
}

// CumulativePoint carries a running total alongside the daily value.
type CumulativePoint struct {
	Date  string `json:"date"`
	Value int64  `json:"value"`
	Total int64  `json:"total"`
}

// WindowStart returns the inclusive lower bound of a trailing window ending now.
func WindowStart(now time.Time, windowDays int) time.Time {
	if windowDays < 0 {
		windowDays = 0
	}
	day := Truncate(now)
	return day.AddDate(0, 0, -windowDays)
}

// Truncate drops the time-of-day component, keeping the UTC calendar date.
func Truncate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Daily materializes the dense skeleton [now-windowDays .. now], one Point
// per calendar day ascending, taking values from buckets and zero-filling
// missing dates. windowDays = 0 yields today's single bucket.
func Daily(now time.Time, windowDays int, buckets map[string]int64) []Point {
	if windowDays < 0 {
		windowDays = 0
	}
	start := WindowStart(now, windowDays)

	points := make([]Point, 0, windowDays+1)
	for i := 0; i <= windowDays; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		points = append(points, Point{Date: date, Value: buckets[date]})
	}
	return points
}

// Cumulative attaches a running sum to each point, resetting at the window start.
func Cumulative(points []Point) []CumulativePoint {
	out := make([]CumulativePoint, 0, len(points))
	var running int64
	for _, p := range points {
		running += p.Value
		out = append(out, CumulativePoint{Date: p.Date, Value: p.Value, Total: running})
	}
	return out
}

// Reverse flips a series to descending date order in place and returns it.
func Reverse(points []Point) []Point {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points
}

// Sum totals the daily values of a series.
func Sum(points []Point) int64 {
	var total int64
	for _, p := range points {
		total += p.Value
	}
	return total
}
