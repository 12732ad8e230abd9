// Package statsview serves runtime statistics of the emulator process over
// HTTP, using github.com/go-echarts/statsview.
//
// Once launched, graphs are available at
//
//	http://<addr>/debug/statsview
//
// and the standard pprof handlers at
//
//	http://<addr>/debug/pprof/
package statsview

import (
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/retroenv/retrogolib/log"
)

const DefaultAddress = "localhost:12600"

const path = "/debug/statsview"

// Launch starts the statistics server in a new goroutine.
func Launch(logger *log.Logger, addr string) {
	if addr == "" {
		addr = DefaultAddress
	}

	viewer.SetConfiguration(viewer.WithAddr(addr))
	go statsview.New().Start()

	logger.Info("Stats server available", log.String("url", "http://"+addr+path))
}
