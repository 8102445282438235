package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"img2pdf/layout"
)

// fileConfig is the TOML page setup, e.g.:
//
//	[page]
//	width = 297.0
//	height = 210.0
//	margin = 15.0
//	footer_reserve = 20.0
//
// Omitted keys keep the landscape A4 defaults.
type fileConfig struct {
	Page struct {
		Width         float64 `toml:"width"`
		Height        float64 `toml:"height"`
		Margin        float64 `toml:"margin"`
		FooterReserve float64 `toml:"footer_reserve"`
	} `toml:"page"`
}

func loadGeometry(path string) (layout.Geometry, error) {
	geom := layout.DefaultGeometry()
	if path == "" {
		return geom, nil
	}

	var cfg fileConfig
	cfg.Page.Width = geom.PageWidth
	cfg.Page.Height = geom.PageHeight
	cfg.Page.Margin = geom.Margin
	cfg.Page.FooterReserve = geom.FooterReserve

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return geom, fmt.Errorf("loading config %s: %w", path, err)
	}

	geom = layout.Geometry{
		PageWidth:     cfg.Page.Width,
		PageHeight:    cfg.Page.Height,
		Margin:        cfg.Page.Margin,
		FooterReserve: cfg.Page.FooterReserve,
	}
	if geom.PageWidth <= 0 || geom.PageHeight <= 0 || geom.Margin < 0 || geom.FooterReserve < 0 {
		return geom, fmt.Errorf("config %s: page dimensions must be positive", path)
	}
	if maxW, maxH := layout.ContentBox(geom); maxW <= 0 || maxH <= 0 {
		return geom, fmt.Errorf("config %s: margins and footer reserve leave no room for content", path)
	}
	return geom, nil
}
