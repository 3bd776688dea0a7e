package calbridge

// Status is the bridge authorization report.
type Status struct {
	Authorized bool `json:"authorized"`
	StatusCode int  `json:"status_code"`
}

// Calendar describes one calendar visible through the bridge.
type Calendar struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	AllowsModifications bool  `json:"allows_modifications"`
	ColorHex           string `json:"color_hex"`
}

// Event is a calendar event as returned by the bridge. Times are RFC3339
// strings carrying the calendar's UTC offset.
type Event struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	StartISO string `json:"start_iso"`
	EndISO   string `json:"end_iso"`
	Calendar string `json:"calendar"`
	Notes    string `json:"notes"`
}

// AddEventRequest is the payload for creating an event. Exactly one of
// CalendarID or CalendarTitle should be set.
type AddEventRequest struct {
	Title         string `json:"title"`
	StartISO      string `json:"start_iso"`
	EndISO        string `json:"end_iso"`
	Notes         string `json:"notes,omitempty"`
	CalendarID    string `json:"calendar_id,omitempty"`
	CalendarTitle string `json:"calendar_title,omitempty"`
}

// DeleteResponse reports whether the bridge removed the event.
type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
