package handler

import "time"

// APIVersion is the version reported by the home document.
const APIVersion = "1.0.0"

// createdAtLayout renders timestamps as UTC with millisecond precision.
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// RegisterResponse is the response body for POST /register.
type RegisterResponse struct {
	APIKey    string            `json:"apiKey"`
	Message   string            `json:"message"`
	Endpoints RegisterEndpoints `json:"endpoints"`
}

// RegisterEndpoints lists the gated routes a new client can call.
type RegisterEndpoints struct {
	RandomUser  string `json:"random_user"`
	RandomQuote string `json:"random_quote"`
	RandomJoke  string `json:"random_joke"`
	Stats       string `json:"stats"`
}

// QuoteResponse is the response body for GET /api/quote.
type QuoteResponse struct {
	Quote string `json:"quote"`
}

// JokeResponse is the response body for GET /api/joke.
type JokeResponse struct {
	Joke string `json:"joke"`
}

// StatsResponse is the response body for GET /api/stats.
type StatsResponse struct {
	TotalCalls int64  `json:"totalCalls"`
	CreatedAt  string `json:"createdAt"`
	Status     string `json:"status"`
}

// HomeResponse is the response body for GET /.
type HomeResponse struct {
	Name         string   `json:"name"`
	Version      string   `json:"version"`
	Endpoints    []string `json:"endpoints"`
	Registration string   `json:"registration"`
}

// HealthResponse is the response body for GET /health and GET /ready.
type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Version string `json:"version,omitempty"`
	Tokens  *int   `json:"tokens,omitempty"`
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(createdAtLayout)
}
