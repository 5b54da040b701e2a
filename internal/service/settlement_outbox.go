package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"
	"wallet-engine/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	// ErrOutboxFull is returned when a task cannot be queued.
	ErrOutboxFull = errors.New("settlement queue full")
	// ErrOutboxStopped fails tasks that were still queued, or arrived, after Stop.
	ErrOutboxStopped = errors.New("settlement outbox stopped")
)

const (
	defaultTaskRetention = 24 * time.Hour
	pruneInterval        = time.Minute
)

// OutboxConfig tunes delivery of external settlement legs.
type OutboxConfig struct {
	Workers        int
	QueueSize      int
	AttemptTimeout time.Duration
	RetryIntervals []time.Duration // one extra attempt per interval
	Retention      time.Duration   // how long settled and failed tasks stay listable
}

// SettlementOutbox queues external legs after the local commit and drives
// them through the gateway with bounded retries. Local state is never
// rolled back; a task that exhausts its retries is reported failed.
type SettlementOutbox struct {
	gateway  ports.SettlementGateway
	notifier ports.Notifier // optional
	cfg      OutboxConfig
	log      zerolog.Logger
	now      func() time.Time

	queue chan string

	mu        sync.RWMutex
	tasks     map[string]*domain.SettlementTask
	order     []string
	listeners []func(domain.SettlementTask)

	runMu  sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// stopMu orders queue sends against the drain in Stop.
	stopMu  sync.RWMutex
	stopped bool
}

// NewSettlementOutbox creates an outbox. Call Start to begin delivery.
func NewSettlementOutbox(gateway ports.SettlementGateway, notifier ports.Notifier, cfg OutboxConfig, log zerolog.Logger) *SettlementOutbox {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.AttemptTimeout <= 0 {
		cfg.AttemptTimeout = 5 * time.Second
	}
	if cfg.Retention <= 0 {
		cfg.Retention = defaultTaskRetention
	}
	return &SettlementOutbox{
		gateway:  gateway,
		notifier: notifier,
		cfg:      cfg,
		log:      log.With().Str("component", "settlement_outbox").Logger(),
		now:      time.Now,
		queue:    make(chan string, cfg.QueueSize),
		tasks:    make(map[string]*domain.SettlementTask),
	}
}

// OnUpdate registers fn to be called after every task state change.
// Must be called before Start.
func (o *SettlementOutbox) OnUpdate(fn func(domain.SettlementTask)) {
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
}

// Start launches the workers. They stop when ctx is cancelled or Stop is called.
func (o *SettlementOutbox) Start(ctx context.Context) {
	o.runMu.Lock()
	defer o.runMu.Unlock()
	if o.cancel != nil {
		return
	}
	ctx, o.cancel = context.WithCancel(ctx)
	for i := 0; i < o.cfg.Workers; i++ {
		o.wg.Add(1)
		go o.worker(ctx)
	}
	o.wg.Add(1)
	go o.pruneLoop(ctx)
	o.log.Info().Int("workers", o.cfg.Workers).Msg("settlement outbox started")
}

// Stop cancels the workers, waits for them to exit and reports every task
// still waiting in the queue as failed. Later enqueues fail immediately.
func (o *SettlementOutbox) Stop() {
	o.stopMu.Lock()
	already := o.stopped
	o.stopped = true
	o.stopMu.Unlock()
	if already {
		return
	}

	o.runMu.Lock()
	cancel := o.cancel
	o.runMu.Unlock()
	if cancel != nil {
		cancel()
		o.wg.Wait()
	}

	drained := 0
	for {
		select {
		case id := <-o.queue:
			o.finish(context.Background(), id, "", ErrOutboxStopped)
			drained++
		default:
			if drained > 0 {
				o.log.Warn().Int("tasks", drained).Msg("settlement outbox stopped with queued tasks")
			}
			return
		}
	}
}

// Prune drops settled and failed tasks last updated before now minus the
// retention window and returns how many it dropped. Queued and in-flight
// tasks are always kept.
func (o *SettlementOutbox) Prune(now time.Time) int {
	cutoff := now.Add(-o.cfg.Retention)

	o.mu.Lock()
	defer o.mu.Unlock()
	kept := o.order[:0]
	pruned := 0
	for _, id := range o.order {
		t := o.tasks[id]
		if t.IsTerminal() && t.UpdatedAt.Before(cutoff) {
			delete(o.tasks, id)
			pruned++
			continue
		}
		kept = append(kept, id)
	}
	o.order = kept
	return pruned
}

func (o *SettlementOutbox) pruneLoop(ctx context.Context) {
	defer o.wg.Done()
	ticker := time.NewTicker(pruneInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := o.Prune(o.now()); n > 0 {
				o.log.Debug().Int("tasks", n).Msg("pruned finished settlement tasks")
			}
		}
	}
}

// Enqueue records task as queued and hands it to the workers. A full queue
// reports the task failed immediately.
func (o *SettlementOutbox) Enqueue(ctx context.Context, task domain.SettlementTask) (domain.SettlementTask, error) {
	now := o.now()
	if task.ID == "" {
		task.ID = uuid.New().String()
	}
	task.Status = domain.SettlementStatusQueued
	task.Attempts = 0
	task.CreatedAt = now
	task.UpdatedAt = now

	o.mu.Lock()
	stored := task
	o.tasks[task.ID] = &stored
	o.order = append(o.order, task.ID)
	o.mu.Unlock()
	o.emit(task)

	if err := o.push(task.ID); err != nil {
		failed := o.finish(ctx, task.ID, "", err)
		return failed, apperror.ErrExternalSettlementFailed(err)
	}
	o.log.Debug().Str("task_id", task.ID).Str("kind", string(task.Kind)).Msg("settlement task queued")
	return task, nil
}

func (o *SettlementOutbox) push(id string) error {
	o.stopMu.RLock()
	defer o.stopMu.RUnlock()
	if o.stopped {
		return ErrOutboxStopped
	}
	select {
	case o.queue <- id:
		return nil
	default:
		return ErrOutboxFull
	}
}

// Get returns a copy of the task with id.
func (o *SettlementOutbox) Get(id string) (domain.SettlementTask, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	t, ok := o.tasks[id]
	if !ok {
		return domain.SettlementTask{}, false
	}
	return *t, true
}

// List returns the tasks of accountID in enqueue order. An empty accountID lists all.
func (o *SettlementOutbox) List(accountID string) []domain.SettlementTask {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make([]domain.SettlementTask, 0, len(o.order))
	for _, id := range o.order {
		t := o.tasks[id]
		if accountID != "" && t.AccountID != accountID {
			continue
		}
		out = append(out, *t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (o *SettlementOutbox) worker(ctx context.Context) {
	defer o.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case id := <-o.queue:
			o.deliver(ctx, id)
		}
	}
}

// deliver attempts the task once plus once per retry interval.
func (o *SettlementOutbox) deliver(ctx context.Context, id string) {
	var lastErr error
	for attempt := 0; attempt <= len(o.cfg.RetryIntervals); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				o.finish(context.Background(), id, "", fmt.Errorf("shutdown before retry: %w", lastErr))
				return
			case <-time.After(o.cfg.RetryIntervals[attempt-1]):
			}
		}

		task, ok := o.update(id, func(t *domain.SettlementTask) {
			t.Status = domain.SettlementStatusInFlight
			t.Attempts++
		})
		if !ok {
			return
		}

		attemptCtx, cancel := context.WithTimeout(ctx, o.cfg.AttemptTimeout)
		ref, err := o.gateway.Submit(attemptCtx, task)
		cancel()
		if err == nil {
			o.finish(ctx, id, ref, nil)
			return
		}

		lastErr = err
		o.update(id, func(t *domain.SettlementTask) {
			t.Status = domain.SettlementStatusQueued
			t.LastError = err.Error()
		})
		o.log.Warn().Err(err).Str("task_id", id).Int("attempt", attempt+1).Msg("settlement attempt failed")
	}

	o.finish(ctx, id, "", lastErr)
}

// finish moves the task to a terminal state and emits the notification.
func (o *SettlementOutbox) finish(ctx context.Context, id, ref string, err error) domain.SettlementTask {
	task, _ := o.update(id, func(t *domain.SettlementTask) {
		if err == nil {
			t.Status = domain.SettlementStatusSettled
			t.ExternalRef = ref
			t.LastError = ""
			return
		}
		t.Status = domain.SettlementStatusReportedFailed
		t.LastError = err.Error()
	})

	n := domain.Notification{
		AccountID: task.AccountID,
		Operation: "settlement." + string(task.Kind),
		Reference: task.Reference,
		At:        o.now(),
	}
	if err == nil {
		n.Success = true
		n.Message = fmt.Sprintf("Settlement of %s %s confirmed", task.Amount.String(), task.Currency)
		o.log.Info().Str("task_id", id).Str("external_ref", ref).Int("attempts", task.Attempts).Msg("settlement confirmed")
	} else {
		appErr := apperror.ErrExternalSettlementFailed(err)
		n.Code = appErr.Code
		n.Message = fmt.Sprintf("%s for %s %s", appErr.Message, task.Amount.String(), task.Currency)
		o.log.Error().Err(err).Str("task_id", id).Int("attempts", task.Attempts).Msg("settlement reported failed")
	}

	if o.notifier != nil {
		if nerr := o.notifier.Notify(ctx, n); nerr != nil {
			o.log.Warn().Err(nerr).Str("task_id", id).Msg("failed to send settlement notification")
		}
	}
	return task
}

func (o *SettlementOutbox) update(id string, fn func(*domain.SettlementTask)) (domain.SettlementTask, bool) {
	o.mu.Lock()
	t, ok := o.tasks[id]
	if !ok {
		o.mu.Unlock()
		return domain.SettlementTask{}, false
	}
	fn(t)
	t.UpdatedAt = o.now()
	snapshot := *t
	o.mu.Unlock()

	o.emit(snapshot)
	return snapshot, true
}

func (o *SettlementOutbox) emit(task domain.SettlementTask) {
	o.mu.RLock()
	listeners := o.listeners
	o.mu.RUnlock()
	for _, fn := range listeners {
		fn(task)
	}
}
