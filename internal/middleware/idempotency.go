package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fokanendapascal/internship-management-app/pkg/redis"
	"github.com/fokanendapascal/internship-management-app/pkg/response"
)

// IdempotencyKeyHeader carries the client-chosen key that makes a
// mutating request safe to retry.
const IdempotencyKeyHeader = "X-Idempotency-Key"

// idempotencyTTL is short on purpose: the window only needs to cover
// network-level retries of the same request.
const idempotencyTTL = 5 * time.Minute

const (
	idempotencyKeyPrefix = "idempotency:"
	inProgressMarker     = "in-progress"
)

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (r *bodyRecorder) Write(b []byte) (int, error) {
	r.buf.Write(b)
	return r.ResponseWriter.Write(b)
}

// Idempotency deduplicates mutating requests that carry an
// X-Idempotency-Key header. The first request with a given key runs
// normally and its response is cached; a retry with the same key
// replays the cached response, and a concurrent duplicate is rejected
// with 409 while the original is still running. Requests without the
// header pass through untouched, as does everything when Redis is
// unreachable.
func Idempotency(client *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut {
			c.Next()
			return
		}
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		redisKey := idempotencyKeyPrefix + key

		set, err := client.SetNX(ctx, redisKey, []byte(inProgressMarker), idempotencyTTL)
		if err != nil {
			c.Next()
			return
		}
		if !set {
			val, err := client.Get(ctx, redisKey)
			if err != nil || val == nil {
				c.Next()
				return
			}
			if string(val) == inProgressMarker {
				response.Conflict(c, "Request with this idempotency key is still in progress")
				c.Abort()
				return
			}
			var cached cachedResponse
			if err := json.Unmarshal(val, &cached); err != nil {
				c.Next()
				return
			}
			c.Data(cached.Status, "application/json", cached.Body)
			c.Abort()
			return
		}

		recorder := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = recorder
		c.Next()

		// Cache only successful outcomes so a failed attempt can be
		// retried with the same key.
		status := recorder.Status()
		if status >= 200 && status < 300 {
			payload, err := json.Marshal(cachedResponse{Status: status, Body: recorder.buf.Bytes()})
			if err == nil {
				_ = client.Set(ctx, redisKey, payload, idempotencyTTL)
				return
			}
		}
		_ = client.Raw().Del(ctx, redisKey)
	}
}
