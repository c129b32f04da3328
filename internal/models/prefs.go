package models

// UserPrefs - сохраняемые предпочтения пользователя.
type UserPrefs struct {
	FavoriteCategories []EventCategory `json:"favorite_categories"`
	FavoriteTeams      []string        `json:"favorite_teams"`
	RideBufferMinutes  int             `json:"ride_buffer_minutes"`
}
