package models

// DayRequest binds GET /api/v1/weather/days/:day
type DayRequest struct {
	Day int `uri:"day"`
}

// CategoryRequest binds GET /api/v1/weather/categories/:category
type CategoryRequest struct {
	Category string `uri:"category" binding:"required"`
}
