package common_test

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/craftsolver-go/internal/application/common"
)

func TestStdLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewStdLoggerTo(log.New(&buf, "", 0), "warn")

	logger.Log("INFO", "skipped", nil)
	logger.Log("ERROR", "kept", map[string]interface{}{"b": 2, "a": 1})

	assert.Equal(t, "[ERROR] kept a=1 b=2\n", buf.String())
}

func TestStdLogger_WithAddsFields(t *testing.T) {
	var buf bytes.Buffer
	logger := common.NewStdLoggerTo(log.New(&buf, "", 0), "debug").
		With(map[string]interface{}{"request_id": "r-1"})

	logger.Log("debug", "hello", map[string]interface{}{"op": "read"})

	assert.Equal(t, "[DEBUG] hello request_id=r-1 op=read\n", buf.String())
}

func TestLoggerFromContext(t *testing.T) {
	// missing logger falls back to a no-op
	assert.NotPanics(t, func() {
		common.LoggerFromContext(context.Background()).Log("INFO", "nothing", nil)
	})

	var buf bytes.Buffer
	logger := common.NewStdLoggerTo(log.New(&buf, "", 0), "info")
	ctx := common.WithLogger(context.Background(), logger)

	common.LoggerFromContext(ctx).Log("INFO", "via context", nil)
	assert.Contains(t, buf.String(), "via context")
}
