package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const reportTimeout = 30 * time.Second

// ReportMetrics logs the current todo counts and per-operation averages
func (m *CronManager) ReportMetrics() {
	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	stats, err := m.stats.Stats(ctx)
	if err != nil {
		m.logJobError(jobMetricsReport, fmt.Errorf("failed to collect stats: %w", err))
		return
	}

	fields := []zap.Field{
		zap.Int64("total", stats.Total),
		zap.Int64("completed", stats.Completed),
		zap.Int64("pending", stats.Pending),
		zap.Int64("total_calls", stats.Metrics.TotalCalls),
		zap.Float64("uptime_seconds", stats.Metrics.UptimeSecs),
	}
	for _, op := range stats.Metrics.Operations {
		fields = append(fields, zap.Dict(op.Name,
			zap.Int64("count", op.Count),
			zap.Int64("errors", op.Errors),
			zap.Float64("average_ms", op.AverageMs),
		))
	}

	m.logger.Info("todo metrics report", fields...)
}
