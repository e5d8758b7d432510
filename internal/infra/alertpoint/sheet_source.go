// Package alertpoint provides the remote alert-point import adapter.
package alertpoint

import (
	"context"
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"zonewatch/internal/domain/entity"
	"zonewatch/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultFetchTimeout = 15 * time.Second

// Expected CSV columns: id, alert_type, street, city, latitude, longitude, radius.
const columnCount = 7

type sheetSource struct {
	url    string
	client *http.Client
}

// NewSheetSource creates an AlertPointSource reading a published spreadsheet
// CSV export over HTTP.
func NewSheetSource(url string, fetchTimeout time.Duration) service.AlertPointSource {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}

	return &sheetSource{
		url:    url,
		client: &http.Client{Timeout: fetchTimeout},
	}
}

func (s *sheetSource) FetchAll(ctx context.Context) ([]entity.AlertPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build sheet request")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "fetch sheet")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
	}

	reader := csv.NewReader(resp.Body)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "parse sheet csv")
	}

	points := make([]entity.AlertPoint, 0, len(records))
	for i, record := range records {
		if len(record) < columnCount {
			return nil, errors.Errorf("row %d: expected %d columns, got %d", i+1, columnCount, len(record))
		}

		point, err := parseRow(record)
		if err != nil {
			if i == 0 {
				// Header row.
				continue
			}

			return nil, errors.Wrapf(err, "row %d", i+1)
		}

		points = append(points, point)
	}

	return points, nil
}

func parseRow(record []string) (entity.AlertPoint, error) {
	latitude, err := strconv.ParseFloat(record[4], 64)
	if err != nil {
		return entity.AlertPoint{}, errors.Wrap(err, "parse latitude")
	}

	longitude, err := strconv.ParseFloat(record[5], 64)
	if err != nil {
		return entity.AlertPoint{}, errors.Wrap(err, "parse longitude")
	}

	radius, err := strconv.ParseFloat(record[6], 64)
	if err != nil {
		return entity.AlertPoint{}, errors.Wrap(err, "parse radius")
	}

	return entity.AlertPoint{
		ID:        record[0],
		AlertType: record[1],
		Street:    record[2],
		City:      record[3],
		Latitude:  latitude,
		Longitude: longitude,
		Radius:    radius,
	}, nil
}
