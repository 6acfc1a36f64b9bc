package model

import "time"

// Transcript is the structured meeting record produced from an audio upload.
// It is treated as an immutable value once produced.
type Transcript struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Summary      string    `json:"summary"`
	Participants []string  `json:"participants"`
	KeyPoints    []string  `json:"keyPoints"`
	ActionItems  []string  `json:"actionItems"`
	CreatedAt    time.Time `json:"createdAt"`
}
