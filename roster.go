package aura

import "strings"

// Roster is the fixed set of users allowed to open the toggle panel.
// It is never mutated after NewRoster returns.
type Roster struct {
	ids map[string]struct{}
}

func NewRoster(ids ...string) *Roster {
	r := &Roster{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		r.ids[id] = struct{}{}
	}
	return r
}

func (r *Roster) Authorize(userID string) bool {
	if r == nil || userID == "" {
		return false
	}
	_, ok := r.ids[userID]
	return ok
}

func (r *Roster) Len() int {
	if r == nil {
		return 0
	}
	return len(r.ids)
}
