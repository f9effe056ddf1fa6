package booking

import (
	"context"
	"sync"
)

// paymentTasks tracks at most one in-flight payment per session so that
// leaving the session cancels it.
type paymentTasks struct {
	mu      sync.Mutex
	running map[string]*paymentTask
	wg      sync.WaitGroup
}

type paymentTask struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func newPaymentTasks() *paymentTasks {
	return &paymentTasks{running: map[string]*paymentTask{}}
}

// start runs fn in its own goroutine, replacing any task already running for key.
func (t *paymentTasks) start(parent context.Context, key string, fn func(ctx context.Context)) {
	ctx, cancel := context.WithCancel(parent)
	task := &paymentTask{cancel: cancel, done: make(chan struct{})}

	t.mu.Lock()
	if prev, ok := t.running[key]; ok {
		prev.cancel()
	}
	t.running[key] = task
	t.wg.Add(1)
	t.mu.Unlock()

	go func() {
		defer t.wg.Done()
		defer close(task.done)
		defer cancel()
		defer t.remove(key, task)
		fn(ctx)
	}()
}

func (t *paymentTasks) remove(key string, task *paymentTask) {
	t.mu.Lock()
	if t.running[key] == task {
		delete(t.running, key)
	}
	t.mu.Unlock()
}

// cancel stops the task for key without waiting for it.
func (t *paymentTasks) cancel(key string) {
	t.mu.Lock()
	if task, ok := t.running[key]; ok {
		task.cancel()
	}
	t.mu.Unlock()
}

// wait blocks until the task for key, if any, has returned.
func (t *paymentTasks) wait(key string) {
	t.mu.Lock()
	task, ok := t.running[key]
	t.mu.Unlock()
	if ok {
		<-task.done
	}
}

func (t *paymentTasks) inFlight() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.running)
}

// shutdown cancels every task and waits for all of them.
func (t *paymentTasks) shutdown() {
	t.mu.Lock()
	for _, task := range t.running {
		task.cancel()
	}
	t.mu.Unlock()
	t.wg.Wait()
}

// sessionLocks serializes read-modify-write cycles per session.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: map[string]*lockEntry{}}
}

func (l *sessionLocks) lock(key string) (unlock func()) {
	l.mu.Lock()
	e, ok := l.locks[key]
	if !ok {
		e = &lockEntry{}
		l.locks[key] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, key)
		}
		l.mu.Unlock()
	}
}
