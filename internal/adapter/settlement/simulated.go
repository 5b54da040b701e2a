package settlement

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrSimulatedFailure is returned when the simulated rail rejects a task.
var ErrSimulatedFailure = errors.New("simulated settlement failure")

// SimulatedGateway implements ports.SettlementGateway without touching any
// chain or payment rail. It waits for the configured latency and fails a
// configurable fraction of submissions.
type SimulatedGateway struct {
	latency     time.Duration
	failureRate float64
	log         zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedGateway creates a simulated gateway. failureRate is clamped to [0, 1].
func NewSimulatedGateway(latency time.Duration, failureRate float64, log zerolog.Logger) *SimulatedGateway {
	if failureRate < 0 {
		failureRate = 0
	}
	if failureRate > 1 {
		failureRate = 1
	}
	return &SimulatedGateway{
		latency:     latency,
		failureRate: failureRate,
		log:         log.With().Str("component", "simulated_gateway").Logger(),
		rng:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Submit simulates delivering task and returns a fake external reference.
func (g *SimulatedGateway) Submit(ctx context.Context, task domain.SettlementTask) (string, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-timer.C:
		}
	}

	if g.fail() {
		return "", fmt.Errorf("%s %s: %w", task.Kind, task.Reference, ErrSimulatedFailure)
	}

	ref := "sim_" + uuid.New().String()
	g.log.Debug().
		Str("task_id", task.ID).
		Str("kind", string(task.Kind)).
		Str("amount", task.Amount.String()).
		Str("currency", task.Currency).
		Str("external_ref", ref).
		Msg("simulated settlement accepted")
	return ref, nil
}

func (g *SimulatedGateway) fail() bool {
	if g.failureRate == 0 {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64() < g.failureRate
}
