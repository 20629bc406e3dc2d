package auth

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Advisors is the static allow-list of privileged user IDs. It is built once
// at startup and read-only afterwards, so lookups need no synchronization.
type Advisors struct {
	ids map[int64]struct{}
}

// ParseIDList parses a comma-separated list of Telegram user IDs.
// Entries are trimmed and deduplicated; empty segments are skipped.
// A non-numeric entry is a configuration error: the caller must not start
// with an ambiguous privilege list.
func ParseIDList(raw string) ([]int64, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	seen := make(map[int64]struct{})
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID %q: %w", part, err)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}

// NewAdvisors builds the allow-list from already-parsed IDs.
func NewAdvisors(ids []int64) *Advisors {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return &Advisors{ids: set}
}

// IsAdvisor reports whether the user holds advisor privileges.
// An empty or unconfigured list grants nothing.
func (a *Advisors) IsAdvisor(userID int64) bool {
	if a == nil {
		return false
	}
	_, ok := a.ids[userID]
	return ok
}

// Count returns the number of configured advisors.
func (a *Advisors) Count() int {
	if a == nil {
		return 0
	}
	return len(a.ids)
}

// IDs returns the advisor IDs in stable order.
func (a *Advisors) IDs() []int64 {
	if a == nil {
		return nil
	}
	ids := make([]int64, 0, len(a.ids))
	for id := range a.ids {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
