package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Day-off kinds. A holiday wins over a weekend when both apply.
const (
	TypeHoliday = "holiday"
	TypeWeekend = "weekend"
)

// DayOff is one non-working calendar day in the requested window.
type DayOff struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Classify decides what kind of day-off an event title describes: titles
// mentioning "holiday" (any case) are holidays, otherwise Saturdays and
// Sundays are weekends. Anything else is a working day ("" type).
func Classify(title string, date time.Time) string {
	if strings.Contains(strings.ToLower(title), "holiday") {
		return TypeHoliday
	}
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		return TypeWeekend
	}
	return ""
}

// Client talks to the Google Calendar events API for a public holiday
// calendar. Zero-value base/key means the feed is not configured.
type Client struct {
	BaseURL    string
	APIKey     string
	CalendarID string
	HTTP       *http.Client
}

func NewClient(baseURL, apiKey, calendarID string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		APIKey:     apiKey,
		CalendarID: calendarID,
		HTTP:       &http.Client{Timeout: 8 * time.Second},
	}
}

type eventsPayload struct {
	Items []struct {
		Summary string `json:"summary"`
		Start   struct {
			Date     string `json:"date"`
			DateTime string `json:"dateTime"`
		} `json:"start"`
	} `json:"items"`
}

// ListDayOffs fetches holiday events between start and end (inclusive) and
// merges weekend days that carry no holiday, sorted by date.
func (cl *Client) ListDayOffs(ctx context.Context, start, end time.Time) ([]DayOff, error) {
	if cl.APIKey == "" || cl.CalendarID == "" {
		return nil, fmt.Errorf("calendar feed not configured")
	}

	q := url.Values{}
	q.Set("key", cl.APIKey)
	q.Set("timeMin", start.Format(time.RFC3339))
	q.Set("timeMax", end.AddDate(0, 0, 1).Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", cl.BaseURL, url.PathEscape(cl.CalendarID), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := cl.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("calendar feed returned %d", resp.StatusCode)
	}

	var payload eventsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	byDate := map[string]DayOff{}
	for _, item := range payload.Items {
		raw := item.Start.Date
		if raw == "" && len(item.Start.DateTime) >= 10 {
			raw = item.Start.DateTime[:10]
		}
		day, pErr := time.ParseInLocation("2006-01-02", raw, time.Local)
		if pErr != nil {
			continue
		}
		if kind := Classify(item.Summary, day); kind == TypeHoliday {
			byDate[raw] = DayOff{Date: raw, Title: item.Summary, Type: TypeHoliday}
		}
	}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		if _, taken := byDate[key]; taken {
			continue
		}
		if Classify("", day) == TypeWeekend {
			byDate[key] = DayOff{Date: key, Title: day.Weekday().String(), Type: TypeWeekend}
		}
	}

	out := make([]DayOff, 0, len(byDate))
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if off, ok := byDate[day.Format("2006-01-02")]; ok {
			out = append(out, off)
		}
	}
	return out, nil
}
