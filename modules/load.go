package modules

import (
	"github.com/stablewatch/regmap/modules/regmap"
	"github.com/stablewatch/regmap/pkg/application"
)

var BuiltInModules = []application.Module{
	regmap.NewModule(),
}

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range BuiltInModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
