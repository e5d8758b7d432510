package service

import "zonewatch/internal/domain/entity"

// LocationSource is a push-based stream of location samples. The channel
// preserves arrival order; consumers stop through their own context.
type LocationSource interface {
	Samples() <-chan entity.Sample
}
