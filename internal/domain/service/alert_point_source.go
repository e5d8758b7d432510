package service

import (
	"context"

	"zonewatch/internal/domain/entity"
)

// AlertPointSource fetches the full remote zone set. Import is always a bulk
// replacement of the stored set.
type AlertPointSource interface {
	FetchAll(ctx context.Context) ([]entity.AlertPoint, error)
}
