package middleware

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"campus-reservation/internal/handler/httperr"
	"campus-reservation/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (l *Logger) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := l.generateRequestID(c)

		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		l.logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", attrs...)

		c.Next()

		// auth runs inside this middleware, so the id is only known afterwards
		if id, ok := GetStudentID(c); ok {
			attrs = append(attrs, slog.Int64("student_id", id.Int64()))
		}

		statusCode := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if code := errorCode(c); code != "" {
			attrs = append(attrs, slog.String("error_code", code))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		}
		l.logger.LogAttrs(c.Request.Context(), level, "Request completed", attrs...)
	}
}

// errorCode is the code of the last error rendered through httperr.
func errorCode(c *gin.Context) string {
	for i := len(c.Errors) - 1; i >= 0; i-- {
		if resp, ok := c.Errors[i].Meta.(httperr.Response); ok {
			return resp.Error.Code
		}
	}
	return ""
}

func NewLogger(cfg config.LogConfig) *Logger {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(strings.ToUpper(cfg.Level))); err != nil {
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return &Logger{
		logger:   logger,
		cfg:      cfg,
		timezone: timezone,
	}
}

func (l *Logger) GetSlogLogger() *slog.Logger {
	return l.logger
}

func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return ""
}

func LoggingMiddleware(_ *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	l := NewLogger(cfg)
	return l.LoggingMiddleware()
}

// keeps an upstream X-Request-ID when it is a uuid
func (l *Logger) generateRequestID(c *gin.Context) string {
	if upstream := c.GetHeader("X-Request-ID"); upstream != "" {
		if _, err := uuid.Parse(upstream); err == nil {
			return upstream
		}
	}
	return uuid.NewString()
}

type Logger struct {
	logger   *slog.Logger
	cfg      config.LogConfig
	timezone *time.Location
}
