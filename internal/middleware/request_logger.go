package middleware

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"awareness_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxLoggedBody = 500

// 日志格式
const (
	LogFormatDev      = "dev"
	LogFormatCombined = "combined"
	LogFormatShort    = "short"
	LogFormatDetailed = "detailed"
)

// responseTimer 在写出状态码前补上 X-Response-Time
type responseTimer struct {
	gin.ResponseWriter
	start time.Time
}

func (w *responseTimer) WriteHeader(code int) {
	w.Header().Set("X-Response-Time", fmt.Sprintf("%.2fms", elapsedMillis(w.start)))
	w.ResponseWriter.WriteHeader(code)
}

func elapsedMillis(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}

// RequestLogger 按 format 记录每个请求，未知格式按 short 处理
func RequestLogger(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		var body []byte
		if format == LogFormatDetailed && c.Request.Body != nil {
			switch c.Request.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				body, _ = io.ReadAll(c.Request.Body)
				c.Request.Body = io.NopCloser(bytes.NewReader(body))
			}
		}

		c.Writer = &responseTimer{ResponseWriter: c.Writer, start: start}
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Float64("latency_ms", elapsedMillis(start)),
		}

		switch format {
		case LogFormatCombined:
			fields = append(fields,
				zap.String("ip", c.ClientIP()),
				zap.String("user_agent", c.Request.UserAgent()),
				zap.Int("bytes", c.Writer.Size()),
			)
		case LogFormatDetailed:
			fields = append(fields,
				zap.String("ip", c.ClientIP()),
				zap.String("user_agent", c.Request.UserAgent()),
				zap.String("query", c.Request.URL.RawQuery),
			)
			if len(body) > 0 {
				fields = append(fields, zap.String("body", formatBody(body)))
			}
			if len(c.Errors) > 0 {
				fields = append(fields, zap.String("errors", c.Errors.String()))
			}
		}

		msg := c.Request.Method + " " + c.Request.URL.Path
		switch {
		case status >= http.StatusInternalServerError:
			logger.Log.Error(msg, fields...)
		case status >= http.StatusBadRequest:
			logger.Log.Warn(msg, fields...)
		default:
			logger.Log.Info(msg, fields...)
		}
	}
}

// formatBody 压缩 JSON 请求体，超长截断
func formatBody(body []byte) string {
	var compact bytes.Buffer
	if err := json.Compact(&compact, body); err == nil {
		body = compact.Bytes()
	}
	if len(body) > maxLoggedBody {
		return string(body[:maxLoggedBody]) + "... (truncated)"
	}
	return string(body)
}
