package balldontlie

import (
	"strconv"

	"github.com/ThantZinWinnnnn/team-task/internal/domain/players"
)

func mapPage(payload playersResponse) players.Page {
	items := make([]players.Player, 0, len(payload.Data))
	for _, p := range payload.Data {
		items = append(items, mapPlayer(p))
	}
	return players.Page{
		Items:      items,
		NextCursor: mapCursor(payload.Meta.NextCursor),
	}
}

func mapPlayer(p playerResponse) players.Player {
	return players.Player{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		Name:         p.Name,
		Position:     p.Position,
		Height:       p.Height,
		Weight:       p.Weight,
		BirthDate:    p.BirthDate,
		Age:          p.Age,
		NationalTeam: p.NationalTeam,
		TeamIDs:      p.TeamIDs,
	}
}

// mapCursor keeps the upstream cursor opaque to callers: the numeric token
// becomes a plain string, absence becomes the empty string.
func mapCursor(next *int64) string {
	if next == nil {
		return ""
	}
	return strconv.FormatInt(*next, 10)
}
