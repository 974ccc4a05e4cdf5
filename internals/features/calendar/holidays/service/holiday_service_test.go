package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	saturday := time.Date(2026, 3, 7, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)

	assert.Equal(t, TypeHoliday, Classify("Republic Day Holiday", monday))
	assert.Equal(t, TypeHoliday, Classify("PUBLIC HOLIDAY", saturday), "holiday beats weekend")
	assert.Equal(t, TypeWeekend, Classify("Some event", saturday))
	assert.Equal(t, TypeWeekend, Classify("", sunday))
	assert.Equal(t, "", Classify("Sports day", monday))
}

func TestListDayOffs_MergesHolidaysAndWeekends(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"summary": "National Holiday", "start": map[string]string{"date": "2026-03-04"}},
				{"summary": "Club meetup", "start": map[string]string{"date": "2026-03-05"}},
			},
		})
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "test-key", "en.indian#holiday@group.v.calendar.google.com")
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local) // Monday
	end := time.Date(2026, 3, 8, 0, 0, 0, 0, time.Local)   // Sunday

	offs, err := cl.ListDayOffs(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, offs, 3)
	assert.Equal(t, DayOff{Date: "2026-03-04", Title: "National Holiday", Type: TypeHoliday}, offs[0])
	assert.Equal(t, TypeWeekend, offs[1].Type)
	assert.Equal(t, "2026-03-07", offs[1].Date)
	assert.Equal(t, TypeWeekend, offs[2].Type)
	assert.Equal(t, "2026-03-08", offs[2].Date)
}

func TestListDayOffs_ToleratesMalformedEventDates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"summary": "Broken Holiday", "start": map[string]string{"dateTime": "2026"}},
				{"summary": "Odd Holiday", "start": map[string]string{"date": "not-a-date"}},
				{"summary": "Good Holiday", "start": map[string]string{"date": "2026-03-04"}},
			},
		})
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "test-key", "cal-id")
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.Local)
	end := time.Date(2026, 3, 6, 0, 0, 0, 0, time.Local)

	offs, err := cl.ListDayOffs(context.Background(), start, end)
	require.NoError(t, err)
	require.Len(t, offs, 1)
	assert.Equal(t, "Good Holiday", offs[0].Title)
}

func TestListDayOffs_RemoteFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	cl := NewClient(srv.URL, "test-key", "cal-id")
	_, err := cl.ListDayOffs(context.Background(), time.Now(), time.Now().AddDate(0, 0, 7))
	assert.Error(t, err)
}

func TestListDayOffs_NotConfigured(t *testing.T) {
	cl := NewClient("https://example.invalid", "", "")
	_, err := cl.ListDayOffs(context.Background(), time.Now(), time.Now())
	assert.Error(t, err)
}
