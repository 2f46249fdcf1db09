// Package events groups the trace emitters used across the console so call
// sites stay terse and event names stay in one place.
package events

import "github.com/stagetools/staging-console/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}
