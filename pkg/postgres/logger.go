package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rental-ops/pkg/log"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output through the service logger. A missing row is
// an ordinary outcome for the repositories, so ErrRecordNotFound is not logged.
type queryLogger struct {
	l     log.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newQueryLogger(l log.Logger, level gormlogger.LogLevel) *queryLogger {
	return &queryLogger{l: l, level: level, slow: slowQueryThreshold}
}

func (q *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cp := *q
	cp.level = level
	return &cp
}

func (q *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if q.level >= gormlogger.Info {
		q.l.Infof(ctx, "gorm: "+msg, args...)
	}
}

func (q *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if q.level >= gormlogger.Warn {
		q.l.Warnf(ctx, "gorm: "+msg, args...)
	}
}

func (q *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if q.level >= gormlogger.Error {
		q.l.Errorf(ctx, "gorm: "+msg, args...)
	}
}

func (q *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if q.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && q.level >= gormlogger.Error:
		sql, rows := fc()
		q.l.Errorf(ctx, "gorm: query failed: %v elapsed=%s rows=%d sql=%s", err, elapsed, rows, sql)
	case q.slow > 0 && elapsed > q.slow && q.level >= gormlogger.Warn:
		sql, rows := fc()
		q.l.Warnf(ctx, "gorm: slow query elapsed=%s rows=%d sql=%s", elapsed, rows, sql)
	case q.level >= gormlogger.Info:
		sql, rows := fc()
		q.l.Debugf(ctx, "gorm: elapsed=%s rows=%d sql=%s", elapsed, rows, sql)
	}
}
