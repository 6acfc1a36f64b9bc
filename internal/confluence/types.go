package confluence

import "meeting-minutes/internal/model"

// View selects how a page listing is filtered.
type View string

const (
	// ViewAll returns every page and folder of the space.
	ViewAll View = ""
	// ViewContainers keeps folders, items with children and shallow items.
	ViewContainers View = "containers"
)

// --- UseCase Inputs ---

type ListPagesInput struct {
	SpaceKey string
	// ParentID restricts the result to the direct children of that item.
	ParentID string
	View     View
}

type PublishInput struct {
	Transcript model.Transcript
	// SpaceKey falls back to the configured default space when empty.
	SpaceKey string
	ParentID string
}

// --- UseCase Outputs ---

type HealthOutput struct {
	Configured       bool
	BaseURL          string
	SpaceKey         string
	MissingVariables []string
}
