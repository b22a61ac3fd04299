package repository

var (
	WrapPgError   = wrapPgError
	WrapGormError = wrapGormError
)
