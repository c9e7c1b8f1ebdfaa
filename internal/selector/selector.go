// Package selector decides whether a server's labels satisfy a selector set.
package selector

import "github.com/martinsuchenak/hcloud-inventory/internal/model"

type pair struct {
	key   string
	value string
}

// Matches reports whether labels satisfy selectors.
//
// The symmetric difference of the selector pairs and the label pairs is
// computed; any pair in it whose key is a selector key rejects the labels.
// Extra labels are ignored, a missing key or a differing value rejects, and
// an empty selector set matches everything.
func Matches(selectors model.SelectorSet, labels map[string]string) bool {
	if len(selectors) == 0 {
		return true
	}

	want := make(map[pair]struct{}, len(selectors))
	for _, s := range selectors {
		want[pair{s.Key, s.Value}] = struct{}{}
	}
	have := make(map[pair]struct{}, len(labels))
	for k, v := range labels {
		have[pair{k, v}] = struct{}{}
	}

	keys := selectors.Keys()
	for _, diff := range symmetricDifference(want, have) {
		if _, ok := keys[diff.key]; ok {
			return false
		}
	}
	return true
}

// MatchesServer reports whether the server's labels satisfy selectors
func MatchesServer(selectors model.SelectorSet, server model.Server) bool {
	return Matches(selectors, server.Labels)
}

// Filter returns the servers satisfying selectors, in input order
func Filter(selectors model.SelectorSet, servers []model.Server) []model.Server {
	matched := make([]model.Server, 0, len(servers))
	for _, srv := range servers {
		if MatchesServer(selectors, srv) {
			matched = append(matched, srv)
		}
	}
	return matched
}

func symmetricDifference(a, b map[pair]struct{}) []pair {
	var out []pair
	for p := range a {
		if _, ok := b[p]; !ok {
			out = append(out, p)
		}
	}
	for p := range b {
		if _, ok := a[p]; !ok {
			out = append(out, p)
		}
	}
	return out
}
