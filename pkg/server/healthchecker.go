package server

import (
	"context"
	"os"
)

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

// DirHealthChecker reports healthy while every directory can be listed.
type DirHealthChecker struct {
	dirs []string
}

func NewDirHealthChecker(dirs ...string) *DirHealthChecker {
	return &DirHealthChecker{dirs: dirs}
}

func (hc *DirHealthChecker) Healthy(ctx context.Context) bool {
	for _, dir := range hc.dirs {
		if ctx.Err() != nil {
			return false
		}
		if _, err := os.ReadDir(dir); err != nil {
			return false
		}
	}
	return true
}
