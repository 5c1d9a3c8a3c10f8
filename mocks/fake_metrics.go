//+build !release

package mocks

import (
	"net/http"
	"sync"
	"time"
)

// FakeMetrics records metrics calls.
type FakeMetrics struct {
	sync.Mutex
	Commands  []string
	Refreshes []bool
	Served    int
}

// FakeNewMetrics creates a new fake metrics provider.
func FakeNewMetrics() *FakeMetrics {
	return &FakeMetrics{}
}

// CommandExecuted records command target and kind.
func (f *FakeMetrics) CommandExecuted(target string, kind string, _ time.Duration) {
	f.Lock()
	defer f.Unlock()
	f.Commands = append(f.Commands, target+":"+kind)
}

// LockRefreshed records refresh result.
func (f *FakeMetrics) LockRefreshed(success bool) {
	f.Lock()
	defer f.Unlock()
	f.Refreshes = append(f.Refreshes, success)
}

// LocksServed records accessories count.
func (f *FakeMetrics) LocksServed(count int) {
	f.Lock()
	defer f.Unlock()
	f.Served = count
}

// Handler returns static handler.
func (f *FakeMetrics) Handler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Write([]byte("fake_metrics 1\n")) // nolint: errcheck
	})
}

// Snapshot returns copies of recorded values.
func (f *FakeMetrics) Snapshot() ([]string, []bool, int) {
	f.Lock()
	defer f.Unlock()
	return append([]string{}, f.Commands...), append([]bool{}, f.Refreshes...), f.Served
}
