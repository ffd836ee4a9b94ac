package models

// Flashcard is a single study card with a prompt side and an answer side.
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}
