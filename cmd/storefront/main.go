package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talkbazaar/storefront/config"
	"github.com/talkbazaar/storefront/internal/app"
	"github.com/talkbazaar/storefront/internal/webapi"
	"go.uber.org/zap"
)

var (
	conffile  = flag.String("c", "/etc/storefront.yml", "config file")
	initdb    = flag.Bool("initdb", false, "drop and recreate the catalog tables, seed demo products")
	importcsv = flag.String("import", "", "import a catalog csv seed file and exit")
	showver   = flag.Bool("v", false, "show version")
)

var version = "dev"

func main() {
	flag.Parse()
	if *showver {
		fmt.Println("storefront", version)
		return
	}

	cfg := config.LoadConfig(*conffile)
	application := app.NewApplication(cfg)
	if err := application.Init(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %s\n", err.Error())
		os.Exit(1)
	}
	defer application.Release()

	if *initdb {
		application.InitDb()
		zap.S().Info("catalog database initialized")
		return
	}

	if *importcsv != "" {
		n, err := application.ImportCatalogCSV(*importcsv)
		if err != nil {
			zap.S().Errorf("catalog import failed: %s", err.Error())
			os.Exit(1)
		}
		zap.S().Infof("imported %d products", n)
		return
	}

	if err := application.RefreshCatalogNow(); err != nil {
		// the scheduled job retries; start with an empty snapshot
		zap.S().Warnf("initial catalog load failed: %s", err.Error())
	}

	server := webapi.NewServer(application)
	go func() {
		if err := server.Start(); err != nil {
			zap.S().Errorf("web server stopped: %s", err.Error())
		}
	}()
	zap.S().Infof("storefront listening on %s:%d", cfg.Web.Host, cfg.Web.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		zap.S().Errorf("shutdown error: %s", err.Error())
	}
}
