// Package logger provides structured logging for qtkit using zerolog.
//
// It supports JSON and console output, log level configuration, and
// component-scoped loggers with structured fields. Binding resolution is a
// one-shot process-startup activity, so the typical use is a component
// logger obtained once:
//
//	log := logger.Get("qt")
//	log.Info("binding resolved", logger.Fields("api", "pyqt5"))
package logger
