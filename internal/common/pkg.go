package common

// UnknownStr is the fallback representation for unrecognized enum values.
const UnknownStr = "unknown"
