package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JamesR367/DigiDar/config"
)

func sqlFn() (string, int64) { return `INSERT INTO "users" ("username") VALUES ('alice')`, 0 }

func TestGormLogger_ConstraintViolationsAreWarn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), "info")

	for _, err := range []error{
		gorm.ErrDuplicatedKey,
		gorm.ErrForeignKeyViolated,
		&pgconn.PgError{Code: "23505"},
	} {
		gl.Trace(context.Background(), time.Now(), sqlFn, err)
	}

	entries := logs.AllUntimed()
	assert.Len(t, entries, 3)
	for _, e := range entries {
		assert.Equal(t, zapcore.WarnLevel, e.Level)
		assert.Equal(t, "约束冲突", e.Message)
	}
}

func TestGormLogger_OtherErrorsStillLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), "info")

	gl.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

	entries := logs.AllUntimed()
	if assert.Len(t, entries, 1) {
		assert.Contains(t, entries[0].Message, "connection reset")
	}
}

func TestGormLogger_LogModeKeepsWrapper(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormLogger(zap.New(core), "error").LogMode(gormlogger.Info)

	gl.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrDuplicatedKey)

	assert.Equal(t, 1, logs.FilterMessage("约束冲突").Len())
}

func TestGormLogLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLogLevel("debug"))
	assert.Equal(t, gormlogger.Warn, GormLogLevel("info"))
	assert.Equal(t, gormlogger.Error, GormLogLevel("error"))
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&config.LogConfig{Level: "loud", Format: "json"})
	assert.Error(t, err)
}
