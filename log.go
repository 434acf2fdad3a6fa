package denovo

import "github.com/batchatco/go-native-netcdf/netcdf/util"

// Log levels accepted by SetLogLevel.
const (
	LogLevelError = util.LevelError
	LogLevelWarn  = util.LevelWarn
	LogLevelInfo  = util.LevelInfo
)

var logger = util.NewLogger()

// SetLogLevel sets the verbosity of the package logger. The default is LogLevelWarn.
func SetLogLevel(level int) {
	logger.SetLogLevel(level)
}
