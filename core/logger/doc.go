// Package logger provides structured logging based on Zap.
//
// New builds a production (JSON) or development logger from Config. WithRayID
// attaches the request's ray id, set by the rayid middleware, so every line
// logged while serving one request can be correlated. Middleware writes a
// single access line per request.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
