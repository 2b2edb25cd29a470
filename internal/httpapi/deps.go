package httpapi

import (
	"database/sql"
	"sync/atomic"

	"hnboard-bridge/internal/api"
	"hnboard-bridge/internal/config"
	"hnboard-bridge/internal/events"
	"hnboard-bridge/internal/pins"
	"hnboard-bridge/internal/session"
)

type Deps struct {
	Client   *api.Client
	Vault    session.Vault
	Registry *pins.Registry
	DB       *sql.DB
	Hub      *events.Hub

	// CfgVal stores config.Config, reloadable without restart.
	CfgVal      *atomic.Value
	UserCfgPath string
	LoadCfg     func() (config.Config, error)
}
