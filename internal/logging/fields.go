package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCursor     = "cursor"
	FieldSearch     = "search"
	FieldTeamID     = "team_id"
	FieldUser       = "user"
	FieldPlayerID   = "player_id"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
