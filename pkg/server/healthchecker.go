package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// ProbeHealthChecker runs a probe function on every check.
type ProbeHealthChecker struct {
	probe func(ctx context.Context) error
	onFail func(err error)
}

func NewProbeHealthChecker(probe func(ctx context.Context) error, onFail func(err error)) *ProbeHealthChecker {
	return &ProbeHealthChecker{probe: probe, onFail: onFail}
}

func (hc *ProbeHealthChecker) Healthy(ctx context.Context) bool {
	if err := hc.probe(ctx); err != nil {
		if hc.onFail != nil {
			hc.onFail(err)
		}
		return false
	}
	return true
}
