package breach

import "errors"

// ErrRateLimited is returned when the breach-disclosure service
// rejects the lookup with HTTP 429. Retry timing is the caller's
// concern; the lookup is never retried internally.
var ErrRateLimited = errors.New("breach service rate limit exceeded: try again later")
