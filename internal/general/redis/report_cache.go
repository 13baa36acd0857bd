package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"ride-management/internal/ports"
)

// ReportCache caches the trip-duration report between admin requests. The
// report is expensive to compute and changes slowly, so a short TTL is enough.
type ReportCache struct {
	client *goredis.Client
	key    string
}

// NewReportCache constructs a ReportCache on the shared Redis client.
func NewReportCache(r *Redis) ports.ReportCache {
	return &ReportCache{
		client: r.Client,
		key:    "reports:trips_over_one_hour",
	}
}

// GetTripDurationReport returns (nil, nil) on a cache miss.
func (c *ReportCache) GetTripDurationReport(ctx context.Context) ([]ports.TripDurationRow, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var rows []ports.TripDurationRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}

	return rows, nil
}

// SetTripDurationReport stores the report rows with the given TTL.
func (c *ReportCache) SetTripDurationReport(ctx context.Context, rows []ports.TripDurationRow, ttl time.Duration) error {
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
