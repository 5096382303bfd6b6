package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"homework_status_bot/internal/infra/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.AppConfig
		wantLevel logrus.Level
		checkFunc func(t *testing.T, output string)
	}{
		{
			name:      "text formatter in development",
			cfg:       config.AppConfig{LogLevel: "info", Environment: "development"},
			wantLevel: logrus.InfoLevel,
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "level=info")
				assert.Contains(t, output, `msg="test message"`)
			},
		},
		{
			name:      "json formatter in production",
			cfg:       config.AppConfig{LogLevel: "debug", Environment: "production"},
			wantLevel: logrus.DebugLevel,
			checkFunc: func(t *testing.T, output string) {
				lines := bytes.Split(bytes.TrimSpace([]byte(output)), []byte("\n"))
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal(lines[len(lines)-1], &entry))
				assert.Equal(t, "info", entry["level"])
				assert.Equal(t, "test message", entry["msg"])
			},
		},
		{
			name:      "invalid level falls back to info",
			cfg:       config.AppConfig{LogLevel: "loud", Environment: "development"},
			wantLevel: logrus.InfoLevel,
			checkFunc: func(t *testing.T, output string) {
				assert.Contains(t, output, "Invalid log level 'loud'")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(&tt.cfg, &buf)

			assert.Equal(t, tt.wantLevel, log.GetLevel())

			log.Info("test message")
			tt.checkFunc(t, buf.String())
		})
	}
}
