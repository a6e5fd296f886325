package balldontlie

const providerName = "balldontlie"

type playersResponse struct {
	Data []playerResponse `json:"data"`
	Meta metaResponse     `json:"meta"`
}

type playerResponse struct {
	ID           int     `json:"id"`
	FirstName    string  `json:"first_name"`
	LastName     string  `json:"last_name"`
	Name         string  `json:"name"`
	Position     string  `json:"position"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	BirthDate    string  `json:"birth_date"`
	Age          string  `json:"age"`
	NationalTeam *string `json:"national_team"`
	TeamIDs      []int   `json:"team_ids"`
}

type metaResponse struct {
	NextCursor *int64 `json:"next_cursor"`
	PerPage    int    `json:"per_page"`
}
