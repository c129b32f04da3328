package models

// UserLocation - последняя известная позиция пользователя.
// Granted=false означает, что координаты взяты из фолбэка, а не с устройства,
// и потребители не должны полагаться на их точность.
type UserLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Granted   bool    `json:"granted"`
}
