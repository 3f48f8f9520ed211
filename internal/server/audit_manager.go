package server

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// AuditSink receives batches of audit entries. The production sink writes
// them to the transactional outbox for the Kafka publisher to pick up.
type AuditSink interface {
	WriteBatch(ctx context.Context, entries []AuditLogEntry) error
}

// LogSink dumps batches into the process log, used as a fallback when no
// outbox is wired.
type LogSink struct{}

func (LogSink) WriteBatch(_ context.Context, entries []AuditLogEntry) error {
	logBatch(-1, entries)
	return nil
}

// AuditManager batches audit entries off the request path. An aggregator
// goroutine collects entries until the batch fills or the flush timeout
// fires, then hands the batch to one of the workers.
type AuditManager struct {
	workerCount int
	batchSize   int
	timeout     time.Duration
	sink        AuditSink

	inputChan  chan AuditLogEntry
	batchChan  chan []AuditLogEntry
	shutdownCh chan struct{}
	once       sync.Once

	wg sync.WaitGroup
}

func NewAuditManager(workerCount, batchSize int, timeout time.Duration, sink AuditSink) *AuditManager {
	if sink == nil {
		sink = LogSink{}
	}
	return &AuditManager{
		workerCount: workerCount,
		batchSize:   batchSize,
		timeout:     timeout,
		sink:        sink,
		inputChan:   make(chan AuditLogEntry, workerCount*batchSize*2),
		batchChan:   make(chan []AuditLogEntry, workerCount*2),
		shutdownCh:  make(chan struct{}),
	}
}

func (m *AuditManager) Start(ctx context.Context) {
	zap.L().Info("starting audit manager",
		zap.Int("workers", m.workerCount),
		zap.Int("batch_size", m.batchSize))

	m.wg.Add(1)
	go m.runAggregator(ctx)

	for i := 0; i < m.workerCount; i++ {
		m.wg.Add(1)
		go m.runWorker(ctx, i)
	}

	go m.monitorShutdown(ctx)
}

// Shutdown drains in-flight entries. Safe to call more than once.
func (m *AuditManager) Shutdown(ctx context.Context) {
	m.once.Do(func() {
		close(m.shutdownCh)

		done := make(chan struct{})
		go func() {
			m.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			zap.L().Info("audit manager drained")
		case <-ctx.Done():
			zap.L().Warn("audit manager shutdown interrupted, entries may be lost")
		}
	})
}

func (m *AuditManager) monitorShutdown(ctx context.Context) {
	<-ctx.Done()
	m.Shutdown(context.Background())
}

func (m *AuditManager) LogEntry(ctx context.Context, entry AuditLogEntry) {
	select {
	case m.inputChan <- entry:
	case <-ctx.Done():
		// Request already gone; keep the entry in the process log at least.
		logEntryDirect(entry)
	}
}

func (m *AuditManager) runAggregator(ctx context.Context) {
	defer m.wg.Done()

	var (
		batch    []AuditLogEntry
		timer    *time.Timer
		timeoutC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
		if len(batch) > 0 {
			m.dispatchBatch(batch)
		}
		close(m.batchChan)
	}()

	for {
		select {
		case entry, ok := <-m.inputChan:
			if !ok {
				return
			}

			batch = append(batch, entry)
			if len(batch) >= m.batchSize {
				m.dispatchBatch(batch)
				batch = nil
				timeoutC = nil
			} else if len(batch) == 1 {
				timer = time.NewTimer(m.timeout)
				timeoutC = timer.C
			}

		case <-timeoutC:
			m.dispatchBatch(batch)
			batch = nil
			timeoutC = nil

		case <-ctx.Done():
			return

		case <-m.shutdownCh:
			return
		}
	}
}

func (m *AuditManager) dispatchBatch(batch []AuditLogEntry) {
	batchCopy := make([]AuditLogEntry, len(batch))
	copy(batchCopy, batch)

	select {
	case m.batchChan <- batchCopy:
	default:
		// Workers are saturated; write synchronously rather than drop.
		m.writeBatch(-1, batchCopy)
	}
}

func (m *AuditManager) runWorker(ctx context.Context, id int) {
	defer m.wg.Done()

	for {
		select {
		case batch, ok := <-m.batchChan:
			if !ok {
				return
			}
			m.writeBatch(id, batch)
		case <-ctx.Done():
			// Drain whatever is already queued before exiting.
			for {
				select {
				case batch, ok := <-m.batchChan:
					if !ok {
						return
					}
					m.writeBatch(id, batch)
				default:
					return
				}
			}
		}
	}
}

func (m *AuditManager) writeBatch(workerID int, batch []AuditLogEntry) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := m.sink.WriteBatch(ctx, batch); err != nil {
		zap.L().Error("audit sink rejected batch",
			zap.Int("worker", workerID),
			zap.Int("entries", len(batch)),
			zap.Error(err))
		logBatch(workerID, batch)
	}
}

func logEntryDirect(entry AuditLogEntry) {
	raw, err := json.Marshal(entry)
	if err != nil {
		zap.L().Error("failed to marshal audit entry", zap.Error(err))
		return
	}
	zap.L().Info("audit entry (direct)", zap.ByteString("entry", raw))
}

func logBatch(workerID int, batch []AuditLogEntry) {
	for _, entry := range batch {
		raw, err := json.Marshal(entry)
		if err != nil {
			zap.L().Error("failed to marshal audit entry", zap.Error(err))
			continue
		}
		zap.L().Info("audit entry", zap.Int("worker", workerID), zap.ByteString("entry", raw))
	}
}
