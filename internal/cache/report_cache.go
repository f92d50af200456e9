package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/rueidis"
)

// ReportCache keeps serialized report envelopes in redis with a TTL. A nil
// *ReportCache is valid and turns every operation into a no-op, so callers
// need no redis to function.
type ReportCache struct {
	client rueidis.Client
	ttl    time.Duration
}

func NewReportCache(client rueidis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

// Get unmarshals the cached envelope under key into out. A miss, a redis
// fault and stale JSON all report false.
func (c *ReportCache) Get(ctx context.Context, key string, out interface{}) bool {
	if c == nil {
		return false
	}

	cmd := c.client.B().Get().Key(key).Build()
	payload, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(payload, out) == nil
}

// Set stores the envelope under key for the configured TTL. Faults are
// dropped: the cache is best-effort.
func (c *ReportCache) Set(ctx context.Context, key string, value interface{}) {
	if c == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	cmd := c.client.B().Set().Key(key).
		Value(rueidis.BinaryString(payload)).
		Ex(c.ttl).Build()
	_ = c.client.Do(ctx, cmd).Error()
}
