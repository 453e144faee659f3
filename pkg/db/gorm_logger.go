package db

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm/logger"

	"github.com/maxiaolu1981/cretem/shop-apiserver/pkg/log"
)

const (
	defaultSlowQueryThreshold = 200 * time.Millisecond
)

type gormLoggerAdapter struct {
	config logger.Config
}

func newGormLogger(opts *Options) logger.Interface {
	cfg := logger.Config{
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
		SlowThreshold:             opts.SlowQueryThreshold,
		LogLevel:                  toGormLogLevel(opts.LogLevel),
	}

	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = defaultSlowQueryThreshold
	}

	return &gormLoggerAdapter{config: cfg}
}

func (g *gormLoggerAdapter) LogMode(level logger.LogLevel) logger.Interface {
	clone := *g
	clone.config.LogLevel = level
	return &clone
}

func (g *gormLoggerAdapter) Info(ctx context.Context, msg string, args ...interface{}) {
	if g == nil || g.config.LogLevel < logger.Info {
		return
	}
	log.Infof("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g == nil || g.config.LogLevel < logger.Warn {
		return
	}
	log.Warnf("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Error(ctx context.Context, msg string, args ...interface{}) {
	if g == nil || g.config.LogLevel < logger.Error {
		return
	}
	log.Errorf("[gorm] %s", fmt.Sprintf(msg, args...))
}

func (g *gormLoggerAdapter) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g == nil || g.config.LogLevel == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	rowCount := rows
	if rowCount < 0 {
		rowCount = 0
	}

	// SQL 轨迹走原生 zap 结构化输出，便于按字段检索慢查询
	z := log.ZapLogger().Sugar()
	switch {
	case err != nil && g.config.LogLevel >= logger.Error:
		z.Errorw("[gorm] trace", "err", err, "elapsed", elapsed.String(), "rows", rowCount, "sql", sql)
	case g.config.SlowThreshold > 0 && elapsed > g.config.SlowThreshold && g.config.LogLevel >= logger.Warn:
		z.Warnw("[gorm] slow query", "threshold", g.config.SlowThreshold.String(), "elapsed", elapsed.String(), "rows", rowCount, "sql", sql)
	case g.config.LogLevel >= logger.Info:
		z.Debugw("[gorm] trace", "elapsed", elapsed.String(), "rows", rowCount, "sql", sql)
	}
}

func toGormLogLevel(level int) logger.LogLevel {
	switch level {
	case 0:
		return logger.Silent
	case 1:
		return logger.Error
	case 2:
		return logger.Warn
	case 3:
		return logger.Info
	default:
		return logger.Info
	}
}
