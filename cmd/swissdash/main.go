package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/config"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/server"
	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/util"
)

var (
	port    = flag.Int("port", 0, "server port (config.toml wins when it sets one)")
	devMode = flag.Bool("dev", false, "development mode")
	dataDir = flag.String("dataDir", "", "data directory (overrides config file)")
)

func main() {
	flag.Parse()

	// optional .env for local runs; missing file is fine
	_ = godotenv.Load()

	fmt.Println("==========================================")
	fmt.Println("  Swiss-dash - Sales Target Audit Engine")
	fmt.Println("==========================================")

	cfg, info, err := config.LoadConfigWithInfo()
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	if *port > 0 && !info.PortSpecified {
		cfg.Server.Port = *port
	}
	if *devMode {
		cfg.Server.DevMode = true
	}
	if *dataDir != "" {
		cfg.Data.DataDir = *dataDir
	}

	dir, err := config.EnsureDataDir(cfg)
	if err != nil {
		log.Printf("failed to create data directory: %v", err)
	} else {
		fmt.Printf("data directory: %s\n", dir)
	}

	srv := server.NewServer(cfg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	url := fmt.Sprintf("http://localhost:%d", cfg.Server.Port)

	go func() {
		fmt.Printf("starting server on port %d ...\n", cfg.Server.Port)
		if err := srv.Run(addr); err != nil {
			log.Fatalf("server failed: %v", err)
		}
	}()

	if !cfg.Server.DevMode {
		fmt.Printf("opening browser: %s\n", url)
		if err := util.OpenBrowserWithFallback(url); err != nil {
			fmt.Printf("could not open a browser, visit %s manually\n", url)
		}
	} else {
		fmt.Printf("development mode: visit %s\n", url)
	}

	fmt.Println("\npress Ctrl+C to stop...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("\nshutting down...")
	if err := srv.SaveNow(); err != nil {
		log.Printf("failed to save before exit: %v", err)
	}
}
