// SPDX-License-Identifier: MIT
// Package: framefixtures/source
//
// source.go — the grow-only integer/label cache.
//
// Contract:
//   • Capacity only grows: EnsureCapacity(n) resizes to max(n, floor)*2 when
//     max(n, floor) exceeds the current capacity.
//   • Requests above MaxCount fail with ErrLabelsExhausted before anything
//     is allocated.
//   • Each growth shuffles only the newly added range [old, new) with a fresh
//     seeded generator and derives labels for exactly that range.
//   • Existing entries are never mutated; snapshots taken before a growth
//     stay valid and equal to the prefix of later snapshots.

package source

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// Source is the deterministic value cache. The zero value is not usable;
// call New or Default.
type Source struct {
	mu         sync.RWMutex
	ints       []int64
	labels     []string
	labelBytes []byte
	perm       permuter

	floor  int
	logger *zap.Logger
	memo   *memo
}

// snapshot is an immutable view of the cache at a point in time.
type snapshot struct {
	ints       []int64
	labels     []string
	labelBytes []byte
}

// label returns the bytes view of label i. The slice is capped so appends
// by a caller can never reach the neighbouring label.
func (s snapshot) label(i int) []byte {
	lo := i * labelLen
	return s.labelBytes[lo : lo+labelLen : lo+labelLen]
}

// New returns an empty Source; the cache is filled on first use.
func New(opts ...Option) *Source {
	cfg := newSourceConfig(opts...)
	return &Source{
		floor:  cfg.floor,
		logger: cfg.logger,
		memo:   newMemo(cfg.memoSize),
	}
}

var (
	defaultOnce   sync.Once
	defaultSource *Source
)

// Default returns the process-wide Source shared by package-level helpers.
func Default() *Source {
	defaultOnce.Do(func() { defaultSource = New() })
	return defaultSource
}

// Capacity returns the number of cached integers (and labels).
func (s *Source) Capacity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ints)
}

// MaxCount is the largest count a single request can draw. Growth doubles
// the request and every cached entry needs a distinct label.
const MaxCount = maxLabels / 2

// CheckCount reports whether n values could ever be drawn.
// Returns ErrBadCount for n < 0 and ErrLabelsExhausted above MaxCount.
func CheckCount(n int) error {
	if n < 0 {
		return fmt.Errorf("count %d: %w", n, ErrBadCount)
	}
	if n > MaxCount {
		return fmt.Errorf("count %d exceeds %d: %w", n, MaxCount, ErrLabelsExhausted)
	}
	return nil
}

// EnsureCapacity grows the cache so that at least n values are available.
func (s *Source) EnsureCapacity(n int) error {
	if err := CheckCount(n); err != nil {
		return fmt.Errorf("EnsureCapacity: %w", err)
	}
	if n < s.floor {
		n = s.floor
	}
	if err := CheckCount(n); err != nil {
		return fmt.Errorf("EnsureCapacity: floor: %w", err)
	}

	s.mu.RLock()
	enough := n <= len(s.ints)
	s.mu.RUnlock()
	if enough {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for n > len(s.ints) {
		if err := s.grow(n * 2); err != nil {
			return err
		}
	}
	return nil
}

// grow extends the cache to target entries. Caller holds s.mu.
func (s *Source) grow(target int) error {
	offset := len(s.ints)
	ext := make([]int64, target-offset)
	for i := range ext {
		ext[i] = int64(offset + i)
	}
	shuffle(ext, shuffleSeed)

	// Label at position p is the permutation drawn when the shuffled walk
	// reaches value p.
	labels := make([]string, len(ext))
	perm := s.perm
	for _, v := range ext {
		l, ok := perm.next()
		if !ok {
			return fmt.Errorf("grow(%d): %w", target, ErrLabelsExhausted)
		}
		labels[v-int64(offset)] = l
	}
	raw := make([]byte, 0, len(labels)*labelLen)
	for _, l := range labels {
		raw = append(raw, l...)
	}

	// Clip before appending so earlier snapshots never share a backing
	// array that is written to.
	s.ints = append(s.ints[:offset:offset], ext...)
	s.labels = append(s.labels[:offset:offset], labels...)
	s.labelBytes = append(s.labelBytes[:len(s.labelBytes):len(s.labelBytes)], raw...)
	s.perm = perm

	s.logger.Debug("source cache grown",
		zap.Int("from", offset),
		zap.Int("to", target),
	)
	return nil
}

func (s *Source) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return snapshot{ints: s.ints, labels: s.labels, labelBytes: s.labelBytes}
}
