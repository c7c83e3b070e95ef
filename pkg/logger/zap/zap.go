// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package zap provides a logging.LoggerFactory based on go.uber.org/zap
package zap

import (
	"github.com/pion/logging"
	"go.uber.org/zap"
)

// LoggerFactory creates a named zap logger per subsystem.
type LoggerFactory struct {
	logger *zap.Logger
}

// NewLoggerFactory creates a LoggerFactory from a zap.Logger.
func NewLoggerFactory(l *zap.Logger) *LoggerFactory {
	return &LoggerFactory{logger: l}
}

// NewLogger creates a logger for the given subsystem.
func (f *LoggerFactory) NewLogger(scope string) logging.LeveledLogger {
	return &Logger{logger: f.logger.Named(scope).Sugar()}
}

// Logger is a logging.LeveledLogger based on go.uber.org/zap.
// zap has no trace level, trace messages are logged at debug level.
type Logger struct {
	logger *zap.SugaredLogger
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) { l.logger.Debug(msg) }

// Tracef formats and logs a trace message
func (l *Logger) Tracef(format string, args ...interface{}) { l.logger.Debugf(format, args...) }

// Debug logs a debug message
func (l *Logger) Debug(msg string) { l.logger.Debug(msg) }

// Debugf formats and logs a debug message
func (l *Logger) Debugf(format string, args ...interface{}) { l.logger.Debugf(format, args...) }

// Info logs an info message
func (l *Logger) Info(msg string) { l.logger.Info(msg) }

// Infof formats and logs an info message
func (l *Logger) Infof(format string, args ...interface{}) { l.logger.Infof(format, args...) }

// Warn logs a warning
func (l *Logger) Warn(msg string) { l.logger.Warn(msg) }

// Warnf formats and logs a warning
func (l *Logger) Warnf(format string, args ...interface{}) { l.logger.Warnf(format, args...) }

// Error logs an error
func (l *Logger) Error(msg string) { l.logger.Error(msg) }

// Errorf formats and logs an error
func (l *Logger) Errorf(format string, args ...interface{}) { l.logger.Errorf(format, args...) }
