// Package logger provides structured logging for voicerouter using zerolog.
//
// Logs go to stderr by default so that the CLI can reserve stdout for the
// normalized JSON it prints.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("normalize")
//	log.Info("payload normalized", logger.Fields(logger.FieldProvider, "gladia"))
package logger
