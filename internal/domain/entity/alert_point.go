// Package entity contains the core business objects of the project.
package entity

import "strings"

// AlertPoint represents a circular risk zone the device is tracked against.
// Alert points are immutable once imported; a sync replaces the whole set.
type AlertPoint struct {
	ID        string  `json:"id" validate:"required"`                 // Stable unique identifier of the zone.
	AlertType string  `json:"alert_type" validate:"required"`         // Category label, used as the notification title.
	Street    string  `json:"street"`                                 // Free-text street description.
	City      string  `json:"city"`                                   // Free-text city description.
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`     // Zone center latitude in degrees.
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`  // Zone center longitude in degrees.
	Radius    float64 `json:"radius" validate:"gt=0"`                 // Zone radius in meters.
}

// Title returns the notification title for an entry into this zone.
func (p *AlertPoint) Title() string {
	return p.AlertType
}

// Body returns the notification body for an entry into this zone.
func (p *AlertPoint) Body() string {
	parts := make([]string, 0, 2)
	if p.Street != "" {
		parts = append(parts, p.Street)
	}
	if p.City != "" {
		parts = append(parts, p.City)
	}

	return strings.Join(parts, ", ")
}
