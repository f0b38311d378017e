package constants

const (
	// DefaultPageSize applies when a listing request omits pageSize.
	DefaultPageSize = 20

	// MaxPageSize caps a caller-supplied pageSize.
	MaxPageSize = 100
)
