package services

import (
	"pharmadmin/pkg/config"
	"pharmadmin/pkg/logger"

	"github.com/robfig/cron/v3"
)

// StockMonitor 定时巡检库存，临界库存的药品写告警日志
type StockMonitor struct {
	queries *QueryService
	cron    *cron.Cron
	spec    string
}

func NewStockMonitor(queries *QueryService, cfg *config.MonitorConfig) *StockMonitor {
	return &StockMonitor{
		queries: queries,
		cron:    cron.New(cron.WithSeconds()),
		spec:    cfg.Spec,
	}
}

// Start 启动巡检任务
func (m *StockMonitor) Start() error {
	if _, err := m.cron.AddFunc(m.spec, m.check); err != nil {
		return err
	}
	m.cron.Start()
	logger.GetLogger().Infof("Stock monitor started, spec: %s", m.spec)
	return nil
}

// Stop 停止巡检任务
func (m *StockMonitor) Stop() {
	m.cron.Stop()
	logger.GetLogger().Info("Stock monitor stopped")
}

func (m *StockMonitor) check() {
	appLogger := logger.GetLogger()

	critical, err := m.queries.MedicationsAtCriticalLevel()
	if err != nil {
		appLogger.Errorf("Stock check failed: %v", err)
		return
	}
	for _, row := range critical {
		appLogger.WithFields(map[string]interface{}{
			"medication_id":  row.MedicationID,
			"name":           row.MedicationName,
			"current_amount": row.CurrentAmount,
			"critical_norm":  row.CriticalNorm,
		}).Warn("药品库存达到临界值")
	}

	appLogger.Infof("Stock check completed, %d medication(s) at critical level", len(critical))
}
