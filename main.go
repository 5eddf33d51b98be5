package main

import (
	"net/http"
	"os/exec"
	"runtime"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"

	"shoptrack/config"
	"shoptrack/storage"
	"shoptrack/tracker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Warnf("Failed to load config file: %v. Using defaults.", err)
	}

	log.Info("Connecting to database...")
	dbConn, err := sqlx.Open("sqlite3", cfg.DatabasePath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		log.Fatalf("db open error: %v", err)
	}
	defer dbConn.Close()

	adapter, err := storage.New(dbConn)
	if err != nil {
		log.Fatalf("Storage initialization failed: %v", err)
	}
	log.Info("Database connection successful.")

	trk := tracker.New(adapter)
	if err := trk.Load(); err != nil {
		log.Fatalf("Failed to load collections: %v", err)
	}
	log.Infof("Collections loaded: %d stores, %d products, %d sales.",
		len(trk.Stores()), len(trk.Products()), len(trk.Sales()))

	mux := http.NewServeMux()

	mux.Handle("/static/", http.StripPrefix("/static/",
		http.FileServer(http.Dir("./static"))))

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, "./static/index.html")
	})

	SetupRoutes(mux, trk)

	url := "http://localhost" + cfg.ListenAddr
	log.Infof("Starting server on %s", url)

	openBrowser(url)

	if err := http.ListenAndServe(cfg.ListenAddr, withRequestLog(mux)); err != nil {
		log.Fatalf("server start error: %v", err)
	}
}

func openBrowser(url string) {
	var err error
	switch runtime.GOOS {
	case "windows":
		err = exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	case "darwin":
		err = exec.Command("open", url).Start()
	default:
		err = exec.Command("xdg-open", url).Start()
	}
	if err != nil {
		log.Warnf("failed to open browser: %v", err)
	}
}
