package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"
	"wallet-engine/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	HeaderIdempotencyKey    = "Idempotency-Key"
	HeaderIdempotentReplay  = "X-Idempotent-Replay"
	idempotencyReserveTTL   = 30 * time.Second
	maxIdempotencyKeyLength = 128
)

// KeyReserver claims an idempotency key while its first request runs.
type KeyReserver interface {
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// LocalReserver is an in-process KeyReserver for deployments without Redis.
type LocalReserver struct {
	mu   sync.Mutex
	keys map[string]time.Time
}

// NewLocalReserver creates an empty LocalReserver.
func NewLocalReserver() *LocalReserver {
	return &LocalReserver{keys: make(map[string]time.Time)}
}

func (r *LocalReserver) Reserve(_ context.Context, key string, ttl time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if until, ok := r.keys[key]; ok && now.Before(until) {
		return false, nil
	}
	r.keys[key] = now.Add(ttl)
	return true, nil
}

func (r *LocalReserver) Release(_ context.Context, key string) error {
	r.mu.Lock()
	delete(r.keys, key)
	r.mu.Unlock()
	return nil
}

type cachedResponse struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type bodyRecorder struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bodyRecorder) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response of a request that carried the same
// Idempotency-Key for the same account. Requests without the header pass through.
// Only 2xx responses are stored so a failed attempt can be retried.
func Idempotency(cache ports.IdempotencyCache, reserver KeyReserver, ttl time.Duration, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderIdempotencyKey)
		if raw == "" {
			c.Next()
			return
		}
		if len(raw) > maxIdempotencyKeyLength {
			response.Error(c, apperror.Validation("Idempotency-Key is too long"))
			c.Abort()
			return
		}

		ctx := c.Request.Context()
		key := c.GetString(CtxAccountID) + ":" + c.Request.Method + ":" + c.FullPath() + ":" + raw

		cached, err := cache.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("idempotency lookup failed, executing request")
		}
		if cached != nil {
			var stored cachedResponse
			if err := json.Unmarshal(cached, &stored); err == nil {
				c.Header(HeaderIdempotentReplay, "true")
				c.Data(stored.Status, "application/json; charset=utf-8", stored.Body)
				c.Abort()
				return
			}
			log.Warn().Str("key", key).Msg("discarding unreadable idempotency entry")
		}

		if reserver != nil {
			ok, err := reserver.Reserve(ctx, key, idempotencyReserveTTL)
			if err != nil {
				log.Warn().Err(err).Str("key", key).Msg("idempotency reservation failed")
			} else if !ok {
				response.Error(c, apperror.New(apperror.CodeDuplicateTransaction,
					"A request with this Idempotency-Key is still in progress", http.StatusConflict))
				c.Abort()
				return
			} else {
				defer func() {
					if err := reserver.Release(context.WithoutCancel(ctx), key); err != nil {
						log.Warn().Err(err).Str("key", key).Msg("failed to release idempotency key")
					}
				}()
			}
		}

		rec := &bodyRecorder{ResponseWriter: c.Writer}
		c.Writer = rec
		c.Next()

		status := rec.Status()
		if status < 200 || status >= 300 || !json.Valid(rec.buf.Bytes()) {
			return
		}
		entry, err := json.Marshal(cachedResponse{Status: status, Body: rec.buf.Bytes()})
		if err != nil {
			return
		}
		if err := cache.Set(context.WithoutCancel(ctx), key, entry, ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotent response")
		}
	}
}
