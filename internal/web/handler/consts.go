package handler

const (
	// RootPath is the root path of a route group.
	RootPath = "/"

	// APIPath is the prefix of every JSON endpoint.
	APIPath = "/api"

	// IDPath addresses a single entity by numeric id.
	IDPath = "/:id<int>"

	// InternalErrorMessage replaces the message of unexpected errors.
	InternalErrorMessage = "internal server error"
)
