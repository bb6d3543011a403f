package constants

// Context keys
const (
	ContextTokenData = "token_data"
)

// Database defaults
const (
	DatabaseSSLMode         = "disable"
	DatabaseMaxOpenConns    = 25
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
)

// Redis key prefixes
const (
	RedisKeySlotResult     = "collabtime:slots:"
	RedisKeyTokenBlacklist = "collabtime:token:blacklist:"
)

// SlotCacheTTLSeconds bounds how long a memoized finder result is served.
// UTC offsets only change on half-hour boundaries at most, so a short TTL
// keeps results fresh across DST transitions and day rollover.
const SlotCacheTTLSeconds = 30

// Slot finder defaults
const (
	DefaultMinDuration = 1
	DefaultMaxDuration = 4
	DefaultFlexRange   = 2
	MaxSlotResults     = 5
	FlexHourPenalty    = 5
)

// Asynq task types
const (
	TaskTypeInvitationEmail = "invitation:email"
)

// Invitation code length (nanoid)
const InviteCodeLength = 10
