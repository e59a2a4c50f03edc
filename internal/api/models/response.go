package models

// SummaryResponse is the aggregate of one simulation run.
type SummaryResponse struct {
	TotalDays   int        `json:"total_days"`
	Drought     int        `json:"drought"`
	Rain        int        `json:"rain"`
	Optimal     int        `json:"optimal"`
	Undefined   int        `json:"undefined"`
	RainiestDay *DayRecord `json:"rainiest_day"` // null when no day rained
}

// ForecastResponse is the weather of one day.
type ForecastResponse struct {
	Weather string    `json:"weather"`
	Day     DayRecord `json:"day"`
}

// CategoryResponse lists every day of one weather category in day order.
type CategoryResponse struct {
	Weather string             `json:"weather"`
	Count   int                `json:"count"`
	Days    []ForecastResponse `json:"days"`
}

// DayRecord is one simulated day.
type DayRecord struct {
	Day       int              `json:"day"`
	Perimeter float64          `json:"perimeter"`
	Positions []PositionRecord `json:"positions"`
}

// PositionRecord is one body's angle and derived coordinates.
type PositionRecord struct {
	Body  string  `json:"body"`
	Angle int     `json:"angle"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// BodyInfo describes a configured body.
type BodyInfo struct {
	Name      string  `json:"name"`
	Radius    float64 `json:"radius"`
	Speed     int     `json:"speed,omitempty"`
	Direction string  `json:"direction,omitempty"`
	Center    bool    `json:"center,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
