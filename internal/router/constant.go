package router

// Log prefixes
const (
	LogPrefixDispatch = "internal.router.Dispatch"
)

// Replies
const (
	MsgPermissionDenied = "You don't have permission to use this command."
	MsgDMOnly           = "This command can only be used in direct messages."
	MsgRateLimited      = "You're sending commands too quickly. Please wait a moment."
	MsgInternalError    = "An error occurred while processing your request."
)

// Limiter defaults
const (
	DefaultRateLimitPerMin = 30
	limiterCacheSize       = 1000
)
