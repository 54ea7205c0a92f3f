package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/tabbrain/shotgen/internal/app"
)

func main() {
	// Flags
	out := flag.String("out", "screenshots", "output directory for generated PNG files")
	logoPath := flag.String("logo", "public/icons/icon128.png", "path to the logo bitmap composited onto each screenshot")
	fontDirs := flag.String("fonts", "", "comma-separated extra directories to scan for .ttf/.otf fonts")
	noLogo := flag.Bool("no-logo", false, "disable logo rendering")
	debug := flag.Bool("debug", false, "enable debug logging to ./shotgen-debug.log")
	preview := flag.Bool("preview", false, "blit the last rendered screenshot to /dev/fb0 after generation (Linux)")
	stdioLog := flag.String("stdio-log", "", "redirect stdout+stderr (including panics) to this file; also configurable via SHOTGEN_STDIO_LOG")
	flag.Parse()

	// Best-effort: redirect all stdout/stderr output (including panic stack traces)
	// to a file so failed runs on headless machines stay diagnosable.
	logPath := *stdioLog
	if logPath == "" {
		logPath = os.Getenv("SHOTGEN_STDIO_LOG")
	}
	if logPath != "" {
		if err := redirectStdIO(logPath); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	// Local file logger when debug enabled
	var logger app.Logger = app.NoopLogger{}
	if *debug {
		f, err := os.OpenFile("./shotgen-debug.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err == nil {
			logger = app.NewFileLogger(f)
			logger.Infof("main", "debug logging enabled")
		} else {
			fmt.Println("debug log open error:", err)
		}
	}

	a := app.New()
	a.OutDir = *out
	a.LogoPath = *logoPath
	a.NoLogo = *noLogo
	a.Preview = *preview
	a.Logger = logger
	if *fontDirs != "" {
		for _, dir := range strings.Split(*fontDirs, ",") {
			if dir = strings.TrimSpace(dir); dir != "" {
				a.FontDirs = append(a.FontDirs, dir)
			}
		}
	}

	if err := a.Run(); err != nil {
		fmt.Println("generation error:", err)
		os.Exit(1)
	}
}
