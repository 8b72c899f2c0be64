package command

import "time"

// HomeInfo is the body of GET /.
type HomeInfo struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Endpoints    []string `json:"endpoints"`
	Registration string   `json:"registration"`
}

// Health is the body of GET /health.
type Health struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Version string `json:"version,omitempty"`
	Tokens  *int   `json:"tokens,omitempty"`
}

// Registration is the body of POST /register.
type Registration struct {
	APIKey    string            `json:"apiKey"`
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

// User is the body of GET /api/user.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// Quote is the body of GET /api/quote.
type Quote struct {
	Quote string `json:"quote"`
}

// Joke is the body of GET /api/joke.
type Joke struct {
	Joke string `json:"joke"`
}

// Stats is the body of GET /api/stats.
type Stats struct {
	TotalCalls int64     `json:"totalCalls"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"status"`
}
