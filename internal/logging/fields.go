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
	FieldPlayerID   = "player_id"
	FieldSectionID  = "section_id"
	FieldQuery      = "query"
	FieldSeason     = "season"
	FieldCount      = "count"
	FieldDurationMS = "duration_ms"
)
