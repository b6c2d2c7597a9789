// Command datepicker-demo shows the date picker with its different options
// side by side, all editing the same date.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"go.hasen.dev/datepicker/giobackend"
	"go.hasen.dev/datepicker/internal/config"
	"go.hasen.dev/datepicker/logger"
	"go.hasen.dev/datepicker/shirei"
)

func main() {
	configPath := flag.String("config", "", "yaml config file (default $"+config.EnvConfig+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Env)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	shirei.SetLogger(log)

	// bundled fallback for systems without any of the default families
	if err := shirei.UseFontBytes(goregular.TTF); err != nil {
		log.Warn(err)
	} else {
		shirei.DefaultFamilies = append(shirei.DefaultFamilies, "Go")
	}

	d, err := newDemo(cfg.Picker)
	if err != nil {
		log.Error(err)
		_ = log.Sync()
		os.Exit(1)
	}
	log.Infof("starting with language %q, zone %s", cfg.Picker.Language, d.date.Location())

	giobackend.SetupWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	giobackend.Run(d.frame)
}
