package players

import "strings"

// Player is the normalized player shape served by the players proxy.
// Fields mirror the upstream balldontlie payload and are read-only locally;
// the roster store records players but never mutates them.
type Player struct {
	ID           int     `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Name         string  `json:"name,omitempty"`
	Position     string  `json:"position"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	BirthDate    string  `json:"birth_date,omitempty"`
	Age          string  `json:"age,omitempty"`
	NationalTeam *string `json:"national_team"`
	TeamIDs      []int   `json:"team_ids,omitempty"`
}

// FullName returns the display name, preferring the upstream-provided one.
func (p Player) FullName() string {
	if p.Name != "" {
		return p.Name
	}
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Page is one page of players plus the cursor for the next one.
// An empty NextCursor means the listing is exhausted.
type Page struct {
	Items      []Player
	NextCursor string
}

// HasMore reports whether another page can be fetched after this one.
func (p Page) HasMore() bool {
	return p.NextCursor != ""
}
