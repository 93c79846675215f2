package internal

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/mama165/sdk-go/logs"
)

var validate = validator.New()

// Config is read from the environment, a .env file being loaded first when present.
type Config struct {
	LogLevel          string        `env:"LOG_LEVEL,default=ERROR" validate:"oneof=DEBUG INFO WARN ERROR debug info warn error"`
	LogFile           string        `env:"LOG_FILE"`
	BindHost          string        `env:"BIND_HOST,default=127.0.0.1" validate:"required,ip"`
	ReceiveBufferSize int           `env:"RECEIVE_BUFFER_SIZE,default=10000" validate:"min=512,max=65507"`
	SinkTimeout       time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	RestartInterval   time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	ReportInterval    time.Duration `env:"REPORT_INTERVAL,default=0s" validate:"gte=0"`
	ArchivePath       string        `env:"ARCHIVE_PATH"`
	ArchiveLimit      *int          `env:"ARCHIVE_LIMIT" validate:"omitempty,gt=0"`
	CensoredWords     string        `env:"CENSORED_WORDS"`
	CharReplacement   string        `env:"CHARACTER_REPLACEMENT,default=*"`
	Colours           bool          `env:"COLOURS,default=false"`
}

func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if _, err := CharacterRune(c.CharReplacement); err != nil {
		return err
	}
	return nil
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}

// NewLogger logs to stderr, or to LOG_FILE when set so the screen stays untouched.
// The returned closer releases the file.
func NewLogger(c Config) (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return logs.GetLoggerFromString(c.LogLevel), io.NopCloser(nil), nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return nil, nil, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}
