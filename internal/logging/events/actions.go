package events

import "github.com/stagetools/staging-console/internal/logging"

type TransferTracer struct{}

type HardwareTracer struct{}

type SystemTracer struct{}

var (
	Transfer = TransferTracer{}
	Hardware = HardwareTracer{}
	System   = SystemTracer{}
)

func (TransferTracer) Plan(verb, source, dest string, overwrite bool) {
	logging.Trace("transfer.plan", map[string]interface{}{
		"verb":      verb,
		"source":    source,
		"dest":      dest,
		"overwrite": overwrite,
	})
}

func (TransferTracer) Declined(verb, dest string) {
	logging.Trace("transfer.declined", map[string]interface{}{"verb": verb, "dest": dest})
}

func (TransferTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("transfer.error", map[string]interface{}{"error": err.Error()})
}

func (TransferTracer) Success(verb, dest string) {
	logging.Trace("transfer.success", map[string]interface{}{"verb": verb, "dest": dest})
}

func (HardwareTracer) Scan(devices int) {
	logging.Trace("hardware.scan", map[string]interface{}{"devices": devices})
}

func (HardwareTracer) Export(path string) {
	logging.Trace("hardware.export", map[string]interface{}{"path": path})
}

func (SystemTracer) Action(id string) {
	logging.Trace("system.action", map[string]interface{}{"id": id})
}

func (SystemTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("system.error", map[string]interface{}{"error": err.Error()})
}
