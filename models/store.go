package models

// StoreLocation is a physical dispensary location. The keyword list feeds
// the intent router's store guessing for "is <location> open" questions.
type StoreLocation struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	City     string   `json:"city"`
	Phone    string   `json:"phone"`
	Hours    string   `json:"hours"`
	Keywords []string `json:"-"`
}
