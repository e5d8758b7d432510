package entity

import (
	"slices"
	"time"
)

// MuteSettings holds the layered notification suppression state.
// The permanent and timed mutes are mutually exclusive by construction:
// enabling one clears the other. Per-alert mutes are independent of both.
type MuteSettings struct {
	IsMuted       bool       `json:"is_muted"`              // Permanent mute.
	MutedUntil    *time.Time `json:"muted_until,omitempty"` // Timed mute expiry; nil when no timed mute is active.
	MutedAlertIDs []string   `json:"muted_alert_ids"`       // Per-zone suppression.
}

// SetMuted toggles the permanent mute. Enabling it drops any timed mute.
func (s *MuteSettings) SetMuted(muted bool) {
	s.IsMuted = muted
	if muted {
		s.MutedUntil = nil
	}
}

// SetMutedUntil arms the timed mute and drops the permanent one.
func (s *MuteSettings) SetMutedUntil(until time.Time) {
	s.MutedUntil = &until
	s.IsMuted = false
}

// IsAlertMuted reports whether the given alert point is individually muted.
func (s *MuteSettings) IsAlertMuted(alertPointID string) bool {
	return slices.Contains(s.MutedAlertIDs, alertPointID)
}

// SetAlertMuted adds or removes a per-alert mute.
func (s *MuteSettings) SetAlertMuted(alertPointID string, muted bool) {
	if muted {
		if !s.IsAlertMuted(alertPointID) {
			s.MutedAlertIDs = append(s.MutedAlertIDs, alertPointID)
		}

		return
	}

	s.MutedAlertIDs = slices.DeleteFunc(s.MutedAlertIDs, func(id string) bool {
		return id == alertPointID
	})
}
