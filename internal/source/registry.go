package source

import (
	"fmt"
	"sort"
	"sync"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Adapter{}
)

// Register makes an adapter available under its key. Duplicate keys are a
// programming error and panic at init time.
func Register(a Adapter) {
	regMu.Lock()
	defer regMu.Unlock()

	if _, dup := registry[a.Key()]; dup {
		panic("source: duplicate adapter key " + a.Key())
	}
	registry[a.Key()] = a
}

func Get(key string) (Adapter, error) {
	regMu.RLock()
	defer regMu.RUnlock()

	a, ok := registry[key]
	if !ok {
		return nil, fmt.Errorf("source: unknown adapter %q (have %v)", key, keysLocked())
	}

	return a, nil
}

func Keys() []string {
	regMu.RLock()
	defer regMu.RUnlock()

	return keysLocked()
}

func keysLocked() []string {
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}
