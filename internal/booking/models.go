package booking

// Request is a photoshoot booking submitted to a photographer. Email is
// the address the photographer should reply to and falls back to the
// logged-in client's account email when left blank.
type Request struct {
	Email     string `json:"email" form:"email"`
	Date      string `json:"date" form:"date"`
	EventType string `json:"event_type" form:"event_type"`
	Message   string `json:"message" form:"message"`
}

type photographer struct {
	Username string
	Email    string
}
