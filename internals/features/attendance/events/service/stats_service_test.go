package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"attendly_backend/internals/features/attendance/events/model"
)

func ev(subjectID, status string, day time.Time) model.AttendanceEventModel {
	return model.AttendanceEventModel{
		AttendanceEventSubjectID:   subjectID,
		AttendanceEventSubjectName: subjectID,
		AttendanceEventStatus:      status,
		AttendanceEventMarkedOn:    day,
	}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSubjectPercentage_ProxyCountsAsAttended(t *testing.T) {
	events := []model.AttendanceEventModel{
		ev("s1", model.StatusPresent, day(2026, 3, 2)),
		ev("s1", model.StatusAbsent, day(2026, 3, 3)),
		ev("s1", model.StatusProxy, day(2026, 3, 4)),
		ev("s1", model.StatusAbsent, day(2026, 3, 5)),
		ev("other", model.StatusAbsent, day(2026, 3, 5)),
	}
	assert.Equal(t, 50, SubjectPercentage(events, "s1"))
}

func TestSubjectPercentage_NoEventsIsZero(t *testing.T) {
	assert.Equal(t, 0, SubjectPercentage(nil, "s1"))
	assert.Equal(t, 0, Percentage(Distribution{}))
}

func TestOverallPercentage_Rounds(t *testing.T) {
	events := []model.AttendanceEventModel{
		ev("s1", model.StatusPresent, day(2026, 3, 2)),
		ev("s1", model.StatusPresent, day(2026, 3, 3)),
		ev("s2", model.StatusAbsent, day(2026, 3, 4)),
	}
	// 2/3 rounds to 67, not truncates to 66
	assert.Equal(t, 67, OverallPercentage(events))
}

func TestCountByStatus(t *testing.T) {
	events := []model.AttendanceEventModel{
		ev("s1", model.StatusPresent, day(2026, 3, 2)),
		ev("s1", model.StatusPresent, day(2026, 3, 3)),
		ev("s1", model.StatusAbsent, day(2026, 3, 4)),
	}
	d := CountByStatus(events)
	assert.Equal(t, Distribution{Present: 2, Absent: 1, Proxy: 0}, d)
	assert.Equal(t, 3, d.Total())
}

func TestByInterval(t *testing.T) {
	events := []model.AttendanceEventModel{
		ev("s1", model.StatusPresent, day(2026, 3, 1)),
		ev("s1", model.StatusAbsent, day(2026, 3, 5)),
		ev("s1", model.StatusProxy, day(2026, 3, 10)),
	}

	t.Run("both bounds nil returns everything", func(t *testing.T) {
		assert.Len(t, ByInterval(events, nil, nil), 3)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		start, end := day(2026, 3, 1), day(2026, 3, 5)
		got := ByInterval(events, &start, &end)
		assert.Len(t, got, 2)
	})

	t.Run("same-day start and end matches that day", func(t *testing.T) {
		d := day(2026, 3, 5)
		got := ByInterval(events, &d, &d)
		assert.Len(t, got, 1)
		assert.Equal(t, model.StatusAbsent, got[0].AttendanceEventStatus)
	})

	t.Run("open-ended start", func(t *testing.T) {
		end := day(2026, 3, 4)
		got := ByInterval(events, nil, &end)
		assert.Len(t, got, 1)
	})

	t.Run("time of day is ignored", func(t *testing.T) {
		late := []model.AttendanceEventModel{
			ev("s1", model.StatusPresent, time.Date(2026, 3, 5, 23, 45, 0, 0, time.Local)),
		}
		d := day(2026, 3, 5)
		assert.Len(t, ByInterval(late, &d, &d), 1)
	})

	t.Run("stored day survives DATE scan as midnight UTC", func(t *testing.T) {
		// DATE columns come back as 00:00 UTC; west-of-UTC servers must not
		// see the event shifted onto the previous day.
		scanned := []model.AttendanceEventModel{
			ev("s1", model.StatusPresent, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)),
		}
		d := day(2026, 3, 5)
		got := ByInterval(scanned, &d, &d)
		assert.Len(t, got, 1)

		before := day(2026, 3, 4)
		assert.Empty(t, ByInterval(scanned, &before, &before))
	})
}

func TestBySubject(t *testing.T) {
	events := []model.AttendanceEventModel{
		ev("s1", model.StatusPresent, day(2026, 3, 2)),
		ev("s2", model.StatusAbsent, day(2026, 3, 2)),
	}
	assert.Len(t, BySubject(events, "s1"), 1)
	assert.Len(t, BySubject(events, ""), 2)
	assert.Empty(t, BySubject(events, "s3"))
}

func TestBuildSubjectReports(t *testing.T) {
	events := []model.AttendanceEventModel{
		ev("math", model.StatusPresent, day(2026, 3, 2)),
		ev("phy", model.StatusAbsent, day(2026, 3, 2)),
		ev("math", model.StatusProxy, day(2026, 3, 3)),
		ev("math", model.StatusAbsent, day(2026, 3, 4)),
	}
	reports := BuildSubjectReports(events)
	assert.Len(t, reports, 2)

	math := reports[0]
	assert.Equal(t, "math", math.SubjectID)
	assert.Equal(t, 3, math.Total)
	assert.Equal(t, 1, math.Present)
	assert.Equal(t, 1, math.Proxy)
	assert.Equal(t, 1, math.Absent)
	assert.Equal(t, math.Total, math.Present+math.Proxy+math.Absent)
	assert.Equal(t, 67, math.Percentage)

	phy := reports[1]
	assert.Equal(t, 0, phy.Percentage)
	assert.Equal(t, 1, phy.Absent)
}
