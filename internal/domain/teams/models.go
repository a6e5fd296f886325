package teams

import "github.com/ThantZinWinnnnn/team-task/internal/domain/players"

// Team is a locally-owned roster of players. The ID is generated at creation
// and stable for the team's lifetime. PlayerCount is the user-declared count;
// it is adjusted alongside roster changes but never reconciled against
// len(Players).
type Team struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	PlayerCount int              `json:"playerCount"`
	Region      string           `json:"region"`
	Country     string           `json:"country"`
	Players     []players.Player `json:"players"`
}

// Fields are the user-editable team attributes, validated on create/update.
type Fields struct {
	Name        string `json:"name" validate:"required,min=2"`
	PlayerCount int    `json:"playerCount" validate:"min=0"`
	Region      string `json:"region" validate:"required"`
	Country     string `json:"country" validate:"required"`
}

// HasPlayer reports whether the given player is on this team's roster.
func (t Team) HasPlayer(playerID int) bool {
	for _, p := range t.Players {
		if p.ID == playerID {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers cannot mutate store state.
func (t Team) Clone() Team {
	out := t
	out.Players = make([]players.Player, len(t.Players))
	copy(out.Players, t.Players)
	return out
}
