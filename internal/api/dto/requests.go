package dto

// Request headers of the header-addressed document routes.
const (
	HeaderDatabase   = "X-Database"
	HeaderCollection = "X-Collection"
	HeaderID         = "X-Id"
	HeaderQuery      = "X-Query"
	HeaderLimit      = "X-Limit"
	HeaderPassword   = "X-Password"
)

// Query parameters of the path-addressed document routes.
const (
	ParamDatabase   = "database"
	ParamCollection = "collection"
	ParamID         = "id"
	ParamQuery      = "q"
	ParamLimit      = "limit"
	ParamNum        = "num"
)

// DocumentTarget locates a collection and, optionally, one document in it.
type DocumentTarget struct {
	Database   string
	Collection string
	ID         string
}

// FindRequest carries the raw filter and limit of a multi-document read.
type FindRequest struct {
	Query string
	Limit string
}
