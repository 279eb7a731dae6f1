// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

import "sort"

// Popular returns the most-ordered foods by cumulative quantity,
// descending, capped at MaxResults. Ties break by name so repeated
// calls over the same counts produce the same order.
func (e *Engine) Popular(user string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("popular", e.clock())

	counts := e.catalog.PopularityCounts()
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	return capped(names, e.cfg.MaxResults), nil
}
