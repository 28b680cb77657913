package cron

import (
	"Curatia/internal/job"
	log "log/slog"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine             *cron.Cron
	trendingRefreshJob *job.TrendingRefreshJob
	curatorMetricsJob  *job.CuratorMetricsJob
}

func NewCronManager(
	trendingRefreshJob *job.TrendingRefreshJob,
	curatorMetricsJob *job.CuratorMetricsJob,
) *Manager {
	return &Manager{
		engine:             cron.New(cron.WithSeconds()),
		trendingRefreshJob: trendingRefreshJob,
		curatorMetricsJob:  curatorMetricsJob,
	}
}

// RegisterJobs 注册定时任务
func (s *Manager) RegisterJobs() error {
	// 热度分每 20 分钟刷一轮脏清单
	if _, err := s.engine.AddJob("0 */20 * * * *", s.trendingRefreshJob); err != nil {
		return err
	}
	if _, err := s.engine.AddJob("@hourly", s.curatorMetricsJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron 定时任务引擎启动")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron 定时任务引擎停止")
	s.engine.Stop()
}
