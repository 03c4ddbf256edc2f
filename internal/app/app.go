package app

import (
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/talkbazaar/storefront/config"
	"github.com/talkbazaar/storefront/internal/catalog"
	"github.com/talkbazaar/storefront/internal/catalog/source"
	"github.com/talkbazaar/storefront/internal/currency"
	"github.com/talkbazaar/storefront/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/gorm"
)

const snowflakeNodeID = 1

// Application wires the storefront core together: config, logging, the
// catalog cache, the three state containers and their shared storage.
type Application struct {
	appConfig    *config.AppConfig
	gormDB       *gorm.DB
	sched        *cron.Cron
	storage      *store.Storage
	bus          EventBus.Bus
	cart         *store.CartStore
	wishlist     *store.WishlistStore
	orders       *store.OrderStore
	catalogCache *source.Cache
	pipeline     *catalog.Pipeline
	converter    *currency.Converter
}

// Ensure Application implements all interfaces
var _ AppContext = (*Application)(nil)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig { return a.appConfig }

func (a *Application) DB() *gorm.DB { return a.gormDB }

// OverrideDB replaces the application's database handle (used in tests).
func (a *Application) OverrideDB(db *gorm.DB) {
	a.gormDB = db
}

func (a *Application) Init(cfg *config.AppConfig) error {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	a.initLogger(cfg)

	if err := os.MkdirAll(cfg.GetDataDir(), 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}

	// Durable local storage for the cart/wishlist/order records
	a.storage, err = store.Open(filepath.Join(cfg.GetDataDir(), "storefront.db"))
	if err != nil {
		return err
	}

	node, err := snowflake.NewNode(snowflakeNodeID)
	if err != nil {
		return errors.Wrap(err, "init id generator")
	}

	a.bus = EventBus.New()

	if a.cart, err = store.NewCartStore(a.storage, a.bus); err != nil {
		return err
	}
	if a.wishlist, err = store.NewWishlistStore(a.storage, a.bus); err != nil {
		return err
	}
	if a.orders, err = store.NewOrderStore(a.storage, a.bus, node); err != nil {
		return err
	}

	a.converter = currency.New(cfg.Currency.Code, cfg.Currency.Rate)

	expander := catalog.NewExpander()
	if cfg.Catalog.SynonymsFile != "" {
		expander, err = catalog.LoadSynonyms(cfg.Catalog.SynonymsFile)
		if err != nil {
			return err
		}
	}
	a.pipeline = catalog.New(expander, catalog.NewScorer(catalog.DefaultWeights()), cfg.Catalog.MinRelevance)

	src, err := a.initCatalogSource(cfg)
	if err != nil {
		return err
	}
	a.catalogCache = source.NewCache(src)

	a.initJob()
	return nil
}

func (a *Application) initLogger(cfg *config.AppConfig) {
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)
}

func (a *Application) initCatalogSource(cfg *config.AppConfig) (source.Source, error) {
	switch cfg.Catalog.Source {
	case "db", "":
		a.gormDB = getDatabase(cfg.Database)
		zap.S().Infof("database connection successful, type: %s", cfg.Database.Type)
		if err := a.MigrateDB(); err != nil {
			return nil, err
		}
		return source.NewDBSource(a.gormDB), nil
	case "remote":
		if cfg.Catalog.RemoteURL == "" {
			return nil, errors.New("catalog source is remote but remote_url is empty")
		}
		return source.NewRemoteSource(cfg.Catalog.RemoteURL), nil
	case "none":
		return source.Static(nil), nil
	default:
		return nil, errors.Errorf("unknown catalog source %q", cfg.Catalog.Source)
	}
}

// Cart returns the cart state container.
func (a *Application) Cart() *store.CartStore { return a.cart }

// Wishlist returns the wishlist state container.
func (a *Application) Wishlist() *store.WishlistStore { return a.wishlist }

// Orders returns the order state container.
func (a *Application) Orders() *store.OrderStore { return a.orders }

// Catalog returns the product snapshot cache.
func (a *Application) Catalog() *source.Cache { return a.catalogCache }

// Pipeline returns the catalog filter pipeline.
func (a *Application) Pipeline() *catalog.Pipeline { return a.pipeline }

// Converter returns the display currency converter.
func (a *Application) Converter() *currency.Converter { return a.converter }

// Bus returns the state-change notification bus.
func (a *Application) Bus() EventBus.Bus { return a.bus }

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron { return a.sched }

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.storage != nil {
		_ = a.storage.Close()
	}
	_ = zap.L().Sync()
}
