package export

import (
	"net/url"
)

const calendarRenderURL = "https://calendar.google.com/calendar/render"

const gcalTimeLayout = "20060102T150405Z"

// EventURL builds a Google Calendar prefill link for one event. Opening it
// shows the event editor with title, description, and times filled in.
func EventURL(ev Event) string {
	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", ev.Title)
	q.Set("details", ev.Description)
	q.Set("dates", ev.Start.UTC().Format(gcalTimeLayout)+"/"+ev.End.UTC().Format(gcalTimeLayout))

	return calendarRenderURL + "?" + q.Encode()
}
