package service

import (
	"math"
	"strings"
	"time"

	"attendly_backend/internals/features/attendance/events/model"
)

// Distribution holds raw status counts, never percentages.
type Distribution struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Proxy   int `json:"proxy"`
}

func (d Distribution) Total() int { return d.Present + d.Absent + d.Proxy }

// SubjectReport is one subject's attendance summary. Absent is derived so the
// three counts always sum to Total.
type SubjectReport struct {
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Total       int    `json:"total"`
	Present     int    `json:"present"`
	Proxy       int    `json:"proxy"`
	Absent      int    `json:"absent"`
	Percentage  int    `json:"percentage"`
}

// Percentage treats proxy as attended: round(100 * (present+proxy) / total).
// No events means 0, never a division error.
func Percentage(d Distribution) int {
	total := d.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(d.Present+d.Proxy) / float64(total)))
}

// SubjectPercentage is the attendance percentage for one subject's events.
func SubjectPercentage(events []model.AttendanceEventModel, subjectID string) int {
	return Percentage(CountByStatus(BySubject(events, subjectID)))
}

// OverallPercentage applies the same rule across all events.
func OverallPercentage(events []model.AttendanceEventModel) int {
	return Percentage(CountByStatus(events))
}

// CountByStatus tallies events into a distribution.
func CountByStatus(events []model.AttendanceEventModel) Distribution {
	var d Distribution
	for _, ev := range events {
		switch ev.AttendanceEventStatus {
		case model.StatusPresent:
			d.Present++
		case model.StatusAbsent:
			d.Absent++
		case model.StatusProxy:
			d.Proxy++
		}
	}
	return d
}

// ByInterval keeps events whose marked-on calendar day falls inside
// [start, end]. Either bound nil leaves that side open; both nil returns the
// input unfiltered. Comparison is by calendar date, inclusive, taken from each
// value in its own location: DATE columns scan back as midnight UTC, so
// shifting the stored value into another zone would move it off its own day.
func ByInterval(events []model.AttendanceEventModel, start, end *time.Time) []model.AttendanceEventModel {
	if start == nil && end == nil {
		return events
	}
	out := make([]model.AttendanceEventModel, 0, len(events))
	for _, ev := range events {
		day := calendarDay(ev.AttendanceEventMarkedOn)
		if start != nil && day.Before(calendarDay(*start)) {
			continue
		}
		if end != nil && day.After(calendarDay(*end)) {
			continue
		}
		out = append(out, ev)
	}
	return out
}

// BySubject keeps events for one subject; empty id returns the input.
func BySubject(events []model.AttendanceEventModel, subjectID string) []model.AttendanceEventModel {
	subjectID = strings.TrimSpace(subjectID)
	if subjectID == "" {
		return events
	}
	out := make([]model.AttendanceEventModel, 0, len(events))
	for _, ev := range events {
		if ev.AttendanceEventSubjectID == subjectID {
			out = append(out, ev)
		}
	}
	return out
}

// BuildSubjectReports groups events per subject, preserving first-seen order.
func BuildSubjectReports(events []model.AttendanceEventModel) []SubjectReport {
	order := make([]string, 0)
	bySubject := map[string][]model.AttendanceEventModel{}
	names := map[string]string{}
	for _, ev := range events {
		id := ev.AttendanceEventSubjectID
		if _, seen := bySubject[id]; !seen {
			order = append(order, id)
			names[id] = ev.AttendanceEventSubjectName
		}
		bySubject[id] = append(bySubject[id], ev)
	}

	reports := make([]SubjectReport, 0, len(order))
	for _, id := range order {
		d := CountByStatus(bySubject[id])
		reports = append(reports, SubjectReport{
			SubjectID:   id,
			SubjectName: names[id],
			Total:       d.Total(),
			Present:     d.Present,
			Proxy:       d.Proxy,
			Absent:      d.Absent,
			Percentage:  Percentage(d),
		})
	}
	return reports
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
