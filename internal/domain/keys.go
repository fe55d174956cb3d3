package domain

type CtxKey string

const (
	// KeyRequestID is set by the RequestID middleware on both the gin context
	// and the request context.
	KeyRequestID CtxKey = "RequestID"
)
