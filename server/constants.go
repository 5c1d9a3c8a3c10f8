package server

// muxKeys describes enum with known API tokens.
type muxKeys string

const (
	// urlLockID describes lock ID URL param.
	urlLockID muxKeys = "lockID"
	// urlState describes target state URL param.
	urlState muxKeys = "state"
	// ctxtUserName describes user in the context.
	ctxtUserName muxKeys = "user"
	// routeAPI describes base api prefix.
	routeAPI = "/api/v1"
	// headerIdempotencyKey describes header which makes command replayable.
	headerIdempotencyKey = "Idempotency-Key"
)

const (
	// statusOK describes successful response.
	statusOK = "OK"
	// statusError describes failed response.
	statusError = "ERROR"
)
