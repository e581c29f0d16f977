package common

const (
	// MaxRequestBody limits JSON request bodies for profile/booking endpoints.
	MaxRequestBody = 1 << 20
)
