package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field is a structured logging field
type Field = zap.Field

// String creates a string field
func String(key, val string) Field {
	return zap.String(key, val)
}

// Err creates an error field
func Err(err error) Field {
	return zap.Error(err)
}

// Int creates an int field
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Int64 creates an int64 field
func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

// Float64 creates a float64 field
func Float64(key string, val float64) Field {
	return zap.Float64(key, val)
}

// Bool creates a bool field
func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

// Any creates a field with any value
func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

// Duration creates a duration field
func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}
