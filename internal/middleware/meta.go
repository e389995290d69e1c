package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

const responseMetaKey = "response_meta"

// Keys handlers write into the envelope meta.
const (
	MetaCacheHit       = "cache_hit"
	MetaProcessingTime = "processing_time_ms"
	MetaWeekCount      = "week_count"
	MetaLayoutCapped   = "layout_capped"
)

type responseMeta struct {
	started time.Time
	values  map[string]interface{}
}

// WithResponseMeta starts the request clock and the meta storage handlers annotate.
func WithResponseMeta() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(responseMetaKey, &responseMeta{started: time.Now(), values: map[string]interface{}{}})
		c.Next()
	}
}

// SetCacheHit records whether the view came from the dashboard cache.
func SetCacheHit(c *gin.Context, hit bool) {
	metaOf(c).values[MetaCacheHit] = hit
}

// SetWeekCount records how many axis ticks the filter resolved to.
func SetWeekCount(c *gin.Context, n int) {
	metaOf(c).values[MetaWeekCount] = n
}

// SetLayoutCapped records bubbles placed after the packing attempt limit. Zero is omitted.
func SetLayoutCapped(c *gin.Context, n int) {
	if n <= 0 {
		return
	}
	metaOf(c).values[MetaLayoutCapped] = n
}

// Meta returns the recorded values plus the processing time so far.
func Meta(c *gin.Context) map[string]interface{} {
	m := metaOf(c)
	out := make(map[string]interface{}, len(m.values)+1)
	for k, v := range m.values {
		out[k] = v
	}
	out[MetaProcessingTime] = time.Since(m.started).Milliseconds()
	return out
}

// metaOf falls back to a fresh record when WithResponseMeta is not installed.
func metaOf(c *gin.Context) *responseMeta {
	if v, ok := c.Get(responseMetaKey); ok {
		if m, ok := v.(*responseMeta); ok {
			return m
		}
	}
	m := &responseMeta{started: time.Now(), values: map[string]interface{}{}}
	c.Set(responseMetaKey, m)
	return m
}
