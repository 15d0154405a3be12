// Package autoload initializes the global logger from the LOG_*
// environment on import.
package autoload

import (
	configx "github.com/jirasak/zoom-support-agent/pkg/config"
	logx "github.com/jirasak/zoom-support-agent/pkg/logger"
)

func init() {
	logx.Init(*configx.MustNew[logx.Config]("LOG"))
}
