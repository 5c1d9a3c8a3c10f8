package providers

import (
	"net/http"
	"time"
)

// IMetricsProvider defines bridge metrics collector.
type IMetricsProvider interface {
	CommandExecuted(target string, kind string, duration time.Duration)
	LockRefreshed(success bool)
	LocksServed(count int)
	Handler() http.Handler
}
