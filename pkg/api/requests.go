package api

// ScheduleRequest is the body of POST /api/v1/schedule.
type ScheduleRequest struct {
	Query    string `json:"query" binding:"required"`
	Timezone string `json:"timezone"`
}
