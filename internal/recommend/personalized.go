// Forkcast - Food Ordering Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/forkcast

package recommend

// Personalized recommends foods from the session user's own order
// neighborhood in the relationship graph, de-duplicated in first-seen
// order.
//
// Cold start falls through two levels: foods ordered by any other
// user, then time-based suggestions. Results are capped at MaxResults.
func (e *Engine) Personalized(user string) ([]string, error) {
	if err := requireSession(user); err != nil {
		return nil, err
	}
	defer e.observe("personalized", e.clock())

	names := dedupe(e.catalog.OrderedFoodNames(user))

	if len(names) == 0 {
		e.logger.Debug().Str("user", user).Msg("no own orders; falling back to other users")
		for _, other := range e.catalog.UserNames() {
			if other == user {
				continue
			}
			names = appendDedupe(names, e.catalog.OrderedFoodNames(other))
		}
	}

	if len(names) == 0 {
		e.logger.Debug().Str("user", user).Msg("no orders anywhere; falling back to time-based")
		return e.TimeBased(user)
	}

	return capped(names, e.cfg.MaxResults), nil
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// appendDedupe appends entries of more not already present in names.
func appendDedupe(names, more []string) []string {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		seen[n] = struct{}{}
	}
	for _, n := range more {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		names = append(names, n)
	}
	return names
}
