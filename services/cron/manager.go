package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sahilchouksey/todo-monkeys/services"
	"go.uber.org/zap"
)

const jobMetricsReport = "metrics_report"

// StatsSource provides the todo counts and metrics the report job logs
type StatsSource interface {
	Stats(ctx context.Context) (services.TodoStats, error)
}

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron           *cron.Cron
	stats          StatsSource
	logger         *zap.Logger
	reportSchedule string
}

// NewCronManager creates a new cron manager
func NewCronManager(stats StatsSource, reportSchedule string, logger *zap.Logger) *CronManager {
	// Create cron with seconds precision
	c := cron.New(
		cron.WithSeconds(),
		cron.WithChain(cron.Recover(cronLogger{logger})),
	)

	return &CronManager{
		cron:           c,
		stats:          stats,
		logger:         logger,
		reportSchedule: reportSchedule,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	m.logger.Info("starting cron jobs")

	if err := m.registerJobs(); err != nil {
		return err
	}

	m.cron.Start()

	m.logger.Info("cron jobs started", zap.Int("jobs", len(m.cron.Entries())))
	return nil
}

// Stop stops the scheduler and waits for running jobs to finish
func (m *CronManager) Stop() {
	m.logger.Info("stopping cron jobs")
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.logger.Info("cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	_, err := m.cron.AddFunc(m.reportSchedule, func() {
		m.logJobStart(jobMetricsReport)
		m.ReportMetrics()
	})
	return err
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	m.logger.Debug("cron job started",
		zap.String("job", jobName),
		zap.Time("started_at", time.Now()))
}

// logJobError logs a cron job error
func (m *CronManager) logJobError(jobName string, err error) {
	m.logger.Error("cron job failed", zap.String("job", jobName), zap.Error(err))
}

// cronLogger routes robfig/cron's internal logging into zap
type cronLogger struct {
	logger *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Sugar().Errorw(msg, append(keysAndValues, "error", err)...)
}
