package content

import "fmt"

// Source is the subset of *math/rand/v2.Rand used by the generators.
type Source interface {
	// IntN returns a uniform value in [0, n). It panics if n <= 0.
	IntN(n int) int
}

// User is a synthetic user record.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Email   string `json:"email"`
	Country string `json:"country"`
}

// Value ranges are half-open: [min, max).
const (
	userIDMin    = 1000
	userIDMax    = 9999
	userAgeMin   = 18
	userAgeMax   = 80
	emailNumMin  = 100
	emailNumMax  = 999
	emailPattern = "user%d@example.com"
)

var (
	names     = []string{"Alice", "Bob", "Charlie", "David", "Emma"}
	countries = []string{"USA", "UK", "Canada", "Australia", "Japan"}

	quotes = []string{
		"Be the change you wish to see in the world.",
		"Life is what happens while you're busy making other plans.",
		"Success is not final, failure is not fatal.",
		"The only way to do great work is to love what you do.",
	}

	jokes = []string{
		"Why don't programmers like nature? It has too many bugs.",
		"What do you call a bear with no teeth? A gummy bear!",
		"Why did the scarecrow win an award? He was outstanding in his field!",
		"What do you call a fake noodle? An impasta!",
	}
)

// NewUser returns a random user record drawn from src.
func NewUser(src Source) User {
	return User{
		ID:      between(src, userIDMin, userIDMax),
		Name:    pick(src, names),
		Age:     between(src, userAgeMin, userAgeMax),
		Email:   fmt.Sprintf(emailPattern, between(src, emailNumMin, emailNumMax)),
		Country: pick(src, countries),
	}
}

// Quote returns one of the fixed quotes, chosen uniformly.
func Quote(src Source) string {
	return pick(src, quotes)
}

// Joke returns one of the fixed jokes, chosen uniformly.
func Joke(src Source) string {
	return pick(src, jokes)
}

// Quotes returns a copy of the quote table.
func Quotes() []string {
	return append([]string(nil), quotes...)
}

// Jokes returns a copy of the joke table.
func Jokes() []string {
	return append([]string(nil), jokes...)
}

func between(src Source, lo, hi int) int {
	return lo + src.IntN(hi-lo)
}

func pick(src Source, items []string) string {
	return items[src.IntN(len(items))]
}
