package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"logship/internal/config"
)

const (
	// batchThreshold is the pending-queue length that triggers an
	// immediate flush.
	batchThreshold = 10
	// defaultFlushDelay is how long a partial batch waits before the
	// timer flushes it.
	defaultFlushDelay = 5 * time.Second

	uploaderUserAgent = "logship/0.1.0"
)

// RemoteUploader delivers entries to the aggregation endpoint in
// batches. Entries accumulate in a FIFO pending queue; a flush is
// triggered by the tenth qualifying entry or by a timer armed when the
// first entry of a partial batch arrives. Delivery is best effort: a
// failed batch is prepended back onto the pending queue, in order, and
// is retried only when a later enqueue reaches one of the natural
// triggers. If logging stops while the endpoint is down, the batch
// stays queued; pending growth is unbounded under a sustained outage.
type RemoteUploader struct {
	cell       *config.Cell
	client     *http.Client
	instanceID string
	flushDelay time.Duration
	fallback   io.Writer

	mu      sync.Mutex
	pending []Entry
	timer   *time.Timer
}

// UploaderOption adjusts uploader construction.
type UploaderOption func(*RemoteUploader)

// WithFlushDelay overrides the partial-batch timer delay.
func WithFlushDelay(d time.Duration) UploaderOption {
	return func(u *RemoteUploader) {
		if d > 0 {
			u.flushDelay = d
		}
	}
}

// WithHTTPClient overrides the transport client.
func WithHTTPClient(client *http.Client) UploaderOption {
	return func(u *RemoteUploader) {
		if client != nil {
			u.client = client
		}
	}
}

// NewRemoteUploader builds an uploader over the shared configuration.
func NewRemoteUploader(cell *config.Cell, fallback io.Writer, opts ...UploaderOption) *RemoteUploader {
	cfg := cell.Snapshot()
	timeout := time.Duration(cfg.Remote.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	u := &RemoteUploader{
		cell:       cell,
		client:     &http.Client{Timeout: timeout},
		instanceID: uuid.NewString(),
		flushDelay: defaultFlushDelay,
		fallback:   fallback,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Enqueue adds entry to the pending queue when remote logging is
// enabled and the entry passes the remote threshold, then triggers a
// flush if the batch threshold was reached or arms the timer for a
// partial batch.
func (u *RemoteUploader) Enqueue(entry Entry) {
	cfg := u.cell.Snapshot()
	if !cfg.Remote.Enabled {
		return
	}
	if !ShouldEmit(entry.Level, LevelOrDefault(cfg.Remote.MinLevel, LevelWarn)) {
		return
	}

	u.mu.Lock()
	u.pending = append(u.pending, entry)
	size := len(u.pending)
	if size < batchThreshold && u.timer == nil {
		u.timer = time.AfterFunc(u.flushDelay, u.Flush)
	}
	u.mu.Unlock()

	if size >= batchThreshold {
		u.Flush()
	}
}

// Flush takes a snapshot of the pending queue and attempts one
// delivery. Any armed timer is cancelled first so a size-triggered
// flush cannot be doubled by a stale timer. Entries enqueued while the
// request is in flight accumulate into a fresh pending queue; on
// failure the outgoing batch is prepended back in front of them.
func (u *RemoteUploader) Flush() {
	cfg := u.cell.Snapshot()

	u.mu.Lock()
	if u.timer != nil {
		u.timer.Stop()
		u.timer = nil
	}
	if len(u.pending) == 0 || cfg.Remote.Endpoint == "" {
		u.mu.Unlock()
		return
	}
	batch := u.pending
	u.pending = nil
	u.mu.Unlock()

	if err := u.post(cfg, batch); err != nil {
		u.mu.Lock()
		u.pending = append(append(make([]Entry, 0, len(batch)+len(u.pending)), batch...), u.pending...)
		u.mu.Unlock()
		if u.fallback != nil {
			fmt.Fprintf(u.fallback, "logship: remote flush failed, batch requeued: %v\n", err)
		}
	}
}

// PendingCount reports the current pending-queue length.
func (u *RemoteUploader) PendingCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.pending)
}

type uploadPayload struct {
	AppName string  `json:"appName"`
	Logs    []Entry `json:"logs"`
}

func (u *RemoteUploader) post(cfg config.Config, batch []Entry) error {
	body, err := json.Marshal(uploadPayload{AppName: cfg.AppName, Logs: batch})
	if err != nil {
		return fmt.Errorf("encode batch: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, cfg.Remote.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", uploaderUserAgent)
	req.Header.Set("X-Instance-ID", u.instanceID)

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("endpoint returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
