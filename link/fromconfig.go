// link/fromconfig.go
package link

import (
	"go.uber.org/zap"

	"github.com/dalemusser/syrup/config"
	"github.com/dalemusser/syrup/route"
)

// NewFromConfig wires a Helper from the library config. When r is nil a
// route.PathRouter built from cfg's scheme/host is used.
func NewFromConfig(r route.Router, cfg *config.Config, logger *zap.Logger) *Helper {
	if r == nil {
		r = RouterFromConfig(cfg)
	}
	if cfg == nil {
		return New(r, WithLogger(logger))
	}
	return New(r,
		WithLogger(logger),
		WithImageDir(cfg.ImageDir),
		WithImageExt(cfg.DefaultImageExt),
		WithAssetHost(cfg.AssetHost),
	)
}

// RouterFromConfig builds the default PathRouter from cfg's scheme and host.
func RouterFromConfig(cfg *config.Config) route.PathRouter {
	if cfg == nil {
		return route.PathRouter{}
	}
	return route.PathRouter{Scheme: cfg.Scheme, Host: cfg.Host}
}
