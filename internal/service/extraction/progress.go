package extraction

import (
	"sync"
	"time"
)

const (
	progressBuffer    = 16
	progressRetention = 5 * time.Minute
)

// ProgressBroker fans status lines of running imports out to listeners
// keyed by job id. Listeners that join late receive the history first.
type ProgressBroker struct {
	mu        sync.Mutex
	jobs      map[string]*progressJob
	retention time.Duration
}

type progressJob struct {
	history []string
	subs    map[int]chan string
	nextID  int
	done    bool
	expiry  *time.Timer
}

// NewProgressBroker creates an empty broker.
func NewProgressBroker() *ProgressBroker {
	return &ProgressBroker{jobs: make(map[string]*progressJob), retention: progressRetention}
}

func (b *ProgressBroker) job(id string) *progressJob {
	j, ok := b.jobs[id]
	if !ok {
		j = &progressJob{subs: make(map[int]chan string)}
		b.jobs[id] = j
		b.expireLocked(id, j)
	}
	return j
}

// expireLocked drops the job after the retention period so abandoned ids
// do not accumulate.
func (b *ProgressBroker) expireLocked(id string, j *progressJob) {
	if j.expiry != nil {
		j.expiry.Stop()
	}
	j.expiry = time.AfterFunc(b.retention, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.jobs[id] != j {
			return
		}
		for sid, ch := range j.subs {
			close(ch)
			delete(j.subs, sid)
		}
		delete(b.jobs, id)
	})
}

// Reporter returns a ProgressFunc publishing to job id. A finished job with
// the same id is discarded so a reused id starts with an empty history.
func (b *ProgressBroker) Reporter(id string) ProgressFunc {
	b.mu.Lock()
	if j, ok := b.jobs[id]; ok && j.done {
		j.expiry.Stop()
		delete(b.jobs, id)
	}
	b.mu.Unlock()

	return func(status string) { b.Publish(id, status) }
}

// Publish records status and forwards it to current listeners. Slow
// listeners miss lines instead of blocking the import.
func (b *ProgressBroker) Publish(id, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	j := b.job(id)
	if j.done {
		return
	}
	j.history = append(j.history, status)
	for _, ch := range j.subs {
		select {
		case ch <- status:
		default:
		}
	}
}

// Finish closes all listener channels of job id. Later listeners get the
// history and a closed channel until the job expires.
func (b *ProgressBroker) Finish(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	j := b.job(id)
	if j.done {
		return
	}
	j.done = true
	for sid, ch := range j.subs {
		close(ch)
		delete(j.subs, sid)
	}
	b.expireLocked(id, j)
}

// Subscribe returns the status lines published so far and a channel with
// the following ones. The channel is closed when the job finishes; cancel
// must be called when the listener goes away.
func (b *ProgressBroker) Subscribe(id string) (history []string, updates <-chan string, cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	j := b.job(id)
	history = append([]string(nil), j.history...)

	ch := make(chan string, progressBuffer)
	if j.done {
		close(ch)
		return history, ch, func() {}
	}

	sid := j.nextID
	j.nextID++
	j.subs[sid] = ch

	var once sync.Once
	return history, ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if c, ok := j.subs[sid]; ok {
				close(c)
				delete(j.subs, sid)
			}
		})
	}
}
