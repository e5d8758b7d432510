package entity

import "time"

// Sample is a single raw location fix pushed by the platform location adapter.
type Sample struct {
	Latitude  float64   `json:"lat"`
	Longitude float64   `json:"lon"`
	Timestamp time.Time `json:"timestamp"`
}

// Transition is the edge event produced by evaluating a zone against a sample.
type Transition int

const (
	// TransitionNone means the inside/outside status did not change.
	TransitionNone Transition = iota
	// TransitionEntered means the device crossed into the zone.
	TransitionEntered
	// TransitionExited means the device crossed out of the zone.
	TransitionExited
)

func (t Transition) String() string {
	switch t {
	case TransitionEntered:
		return "entered"
	case TransitionExited:
		return "exited"
	default:
		return "none"
	}
}
