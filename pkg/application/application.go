package application

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/stablewatch/regmap/pkg/eventbus"
	"github.com/stablewatch/regmap/pkg/types"
)

// Controller is a routable unit registered on the application router.
type Controller interface {
	Key() string
	Register(r *mux.Router)
}

// Module wires a feature's services and controllers into the application.
type Module interface {
	Name() string
	Register(app Application) error
}

type Application interface {
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	RegisterControllers(controllers ...Controller)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	RegisterHashFsAssets(fsInstances ...*hashfs.FS)
	HashFsAssets() []*hashfs.FS
	RegisterNavItems(items ...types.NavigationItem)
	NavItems() []types.NavigationItem
	RegisterLocaleFiles(fsInstances ...*embed.FS)
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
	EventPublisher() eventbus.EventBus
}

type ApplicationOptions struct {
	EventBus           eventbus.EventBus
	Bundle             *i18n.Bundle
	SupportedLanguages []string
}

func LoadBundle() *i18n.Bundle {
	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	return bundle
}

func defaultSupportedLanguageCodes() []string {
	return []string{"en"}
}

func New(opts *ApplicationOptions) Application {
	supportedLanguages := opts.SupportedLanguages
	if len(supportedLanguages) == 0 {
		supportedLanguages = defaultSupportedLanguageCodes()
	}

	return &application{
		eventPublisher:     opts.EventBus,
		controllers:        make(map[string]Controller),
		services:           make(map[reflect.Type]interface{}),
		bundle:             opts.Bundle,
		supportedLanguages: supportedLanguages,
	}
}

// application with a dynamically extendable service registry
type application struct {
	eventPublisher     eventbus.EventBus
	services           map[reflect.Type]interface{}
	controllers        map[string]Controller
	controllerOrder    []string
	middleware         []mux.MiddlewareFunc
	hashFsAssets       []*hashfs.FS
	bundle             *i18n.Bundle
	navItems           []types.NavigationItem
	supportedLanguages []string
}

func (app *application) Controllers() []Controller {
	controllers := make([]Controller, 0, len(app.controllerOrder))
	for _, key := range app.controllerOrder {
		controllers = append(controllers, app.controllers[key])
	}
	return controllers
}

func (app *application) Middleware() []mux.MiddlewareFunc {
	return app.middleware
}

func (app *application) RegisterControllers(controllers ...Controller) {
	for _, c := range controllers {
		key := c.Key()
		if _, seen := app.controllers[key]; !seen {
			app.controllerOrder = append(app.controllerOrder, key)
		}
		app.controllers[key] = c
	}
}

func (app *application) RegisterMiddleware(middleware ...mux.MiddlewareFunc) {
	app.middleware = append(app.middleware, middleware...)
}

func (app *application) RegisterServices(services ...interface{}) {
	for _, service := range services {
		serviceType := reflect.TypeOf(service).Elem()
		app.services[serviceType] = service
	}
}

// Service returns the registered service matching the type of the given
// zero value. Panics when the service was never registered.
func (app *application) Service(service interface{}) interface{} {
	serviceType := reflect.TypeOf(service)
	svc, ok := app.services[serviceType]
	if !ok {
		panic(fmt.Sprintf("service %s not registered", serviceType.Name()))
	}
	return svc
}

func (app *application) RegisterHashFsAssets(fsInstances ...*hashfs.FS) {
	app.hashFsAssets = append(app.hashFsAssets, fsInstances...)
}

func (app *application) HashFsAssets() []*hashfs.FS {
	return app.hashFsAssets
}

func (app *application) RegisterNavItems(items ...types.NavigationItem) {
	app.navItems = append(app.navItems, items...)
}

func (app *application) NavItems() []types.NavigationItem {
	return app.navItems
}

func (app *application) RegisterLocaleFiles(fsInstances ...*embed.FS) {
	for _, fsInstance := range fsInstances {
		if err := fs.WalkDir(fsInstance, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if _, err := app.bundle.LoadMessageFileFS(fsInstance, path); err != nil {
				return fmt.Errorf("loading locale file %q: %w", path, err)
			}
			return nil
		}); err != nil {
			panic(err)
		}
	}
}

func (app *application) Bundle() *i18n.Bundle {
	return app.bundle
}

func (app *application) GetSupportedLanguages() []string {
	return app.supportedLanguages
}

func (app *application) EventPublisher() eventbus.EventBus {
	return app.eventPublisher
}
