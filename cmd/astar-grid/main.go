// Command astar-grid is an interactive A* path-finding demo in the terminal.
//
// Left-click places the start, then the end, then walls. Right-click erases.
// Space runs the search, Esc stops it, c clears the grid and q quits.
//
// Usage:
//
//	astar-grid [-size 50] [-delay 5ms] [-map file] [-log file] [-debug]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astargrid/grid"
	"github.com/katalvlaran/astargrid/internal/app"
	"github.com/katalvlaran/astargrid/internal/session"
)

var log = logrus.New()

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "astar-grid:", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		size    = flag.Int("size", 50, "rows and columns of the grid")
		delay   = flag.Duration("delay", app.DefaultDelay, "pause after each search step")
		mapFile = flag.String("map", "", "load the grid from a text file")
		logFile = flag.String("log", "", "write logs to this file")
		debug   = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	// The terminal belongs to tcell, so logs never go to stderr.
	log.SetOutput(io.Discard)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	if *debug {
		log.SetLevel(logrus.DebugLevel)
	}
	if *logFile != "" {
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	sess, err := newSession(*mapFile, *size)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()

	log.WithFields(logrus.Fields{
		"size":  sess.Grid().Size(),
		"delay": *delay,
	}).Info("astar-grid started")

	a := app.New(screen, sess, app.WithDelay(*delay), app.WithLogger(log))
	start := time.Now()
	err = a.Run()
	log.WithField("uptime", time.Since(start).Round(time.Millisecond)).Info("astar-grid stopped")
	return err
}

func newSession(path string, size int) (*session.Session, error) {
	if path == "" {
		return session.New(size, log)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	g, err := grid.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load map %s: %w", path, err)
	}
	log.WithField("map", path).Debug("map loaded")
	return session.FromGrid(g, log), nil
}
