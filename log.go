package fractions

import (
	logging "github.com/ipfs/go-log"
)

// LoggerName is the go-log subsystem name used by this package, for use with
// logging.SetLogLevel.
const LoggerName = "fractions"

var logger = logging.Logger(LoggerName)
