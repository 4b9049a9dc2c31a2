// SPDX-License-Identifier: Apache-2.0

package fsops

import "sync"

// pathLocks hands out one mutex per resolved path so a probe-then-write
// sequence cannot interleave with another writer targeting the same file.
type pathLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newPathLocks() *pathLocks {
	return &pathLocks{locks: make(map[string]*sync.Mutex)}
}

// lock acquires the mutex for path and returns its unlock function.
func (l *pathLocks) lock(path string) func() {
	l.mu.Lock()
	m, ok := l.locks[path]
	if !ok {
		m = &sync.Mutex{}
		l.locks[path] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
