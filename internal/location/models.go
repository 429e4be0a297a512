package location

type Location struct {
	ID        string   `json:"id"`
	Name      string   `json:"name" form:"name"`
	City      string   `json:"city" form:"city"`
	Latitude  *float64 `json:"latitude,omitempty" form:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" form:"longitude"`
}
