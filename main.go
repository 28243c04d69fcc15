// Copyright © 2025 Hexview contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: main.go
// Summary: hexnav, the demo application: a terminal hex viewer over a
// file or a SQLite BLOB, built from the adapter shell.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/framegrace/hexview/adapter"
	"github.com/framegrace/hexview/config"
	"github.com/framegrace/hexview/core"
	"github.com/framegrace/hexview/hexview"
	"github.com/framegrace/hexview/source"
	"github.com/framegrace/hexview/theme"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "hexnav:", err)
		os.Exit(1)
	}
}

func run() error {
	sqlitePath := flag.String("sqlite", "", "read a BLOB from this SQLite database instead of a file")
	sqliteTable := flag.String("table", "", "table holding the BLOB (with -sqlite)")
	sqliteColumn := flag.String("column", "", "BLOB column (with -sqlite)")
	sqliteRow := flag.Int64("rowid", 1, "rowid of the BLOB row (with -sqlite)")
	columns := flag.Uint64("columns", 0, "virtual column count (overrides the config)")
	configPath := flag.String("config", "", "settings file (default: user config dir)")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal")
	}

	settings, err := loadSettings(*configPath)
	if err != nil {
		return err
	}
	if *columns > 0 {
		settings.Columns = *columns
	}

	logger, closeLog, err := setupLogging(settings.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	src, closeSrc, watchPath, err := openSource(*sqlitePath, *sqliteTable, *sqliteColumn, *sqliteRow)
	if err != nil {
		return err
	}
	defer closeSrc()

	content, err := hexview.NewContent(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	logger.Printf("[SOURCE] %d bytes", content.Size())

	viewer, th, err := buildViewer(content, settings)
	if err != nil {
		return err
	}

	shell, err := adapter.NewShell(viewer, content, th, logger)
	if err != nil {
		return err
	}

	if watchPath != "" {
		w, err := source.Watch(watchPath, shell.Refresh)
		if err != nil {
			// Live refresh is best effort.
			logger.Printf("[WATCH] %v", err)
		} else {
			defer w.Close()
			logger.Printf("[WATCH] watching %s", watchPath)
		}
	}

	logger.Printf("[SHELL] starting at %s", time.Now().Format(time.RFC3339))
	err = shell.Run()
	logger.Printf("[SHELL] stopped")
	return err
}

func loadSettings(path string) (config.Settings, error) {
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return config.Defaults(), fmt.Errorf("locate config: %w", err)
		}
	}
	return config.Load(path)
}

func setupLogging(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(discard{}, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, "", log.LstdFlags), func() { f.Close() }, nil
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// openSource picks the byte source from the flags: a SQLite BLOB when
// -sqlite is given, the positional file path otherwise. watchPath is the
// file to watch for changes, empty when watching makes no sense.
func openSource(db, table, column string, rowid int64) (hexview.Source, func(), string, error) {
	if db != "" {
		if table == "" || column == "" {
			return nil, nil, "", fmt.Errorf("-sqlite needs -table and -column")
		}
		s, err := source.OpenSQLiteBlob(db, table, column, rowid)
		if err != nil {
			return nil, nil, "", err
		}
		return s, func() { s.Close() }, "", nil
	}

	if flag.NArg() != 1 {
		return nil, nil, "", fmt.Errorf("usage: hexnav [flags] <file>")
	}
	path := flag.Arg(0)
	s, err := source.OpenFile(path)
	if err != nil {
		return nil, nil, "", err
	}
	return s, func() { s.Close() }, path, nil
}

func buildViewer(content *hexview.Content, settings config.Settings) (*hexview.Viewer, *theme.Theme, error) {
	viewer := hexview.New(content, adapter.NewShaper())
	viewer.SetVirtualColumns(settings.Columns)

	step, err := settings.ResolveStep()
	if err != nil {
		return nil, nil, err
	}
	viewer.SetHorizontalStep(step)

	padding, err := settings.ResolvePadding()
	if err != nil {
		return nil, nil, err
	}
	viewer.SetPadding(padding)

	swap, err := settings.ResolveWheelSwap()
	if err != nil {
		return nil, nil, err
	}
	viewer.SetWheelAxisSwap(swap)

	hnav, err := config.ResolveNavigation(settings.Navigation.Horizontal)
	if err != nil {
		return nil, nil, err
	}
	viewer.SetHorizontalNavigation(hnav)

	vnav, err := config.ResolveNavigation(settings.Navigation.Vertical)
	if err != nil {
		return nil, nil, err
	}
	viewer.SetVerticalNavigation(vnav)

	th, err := buildTheme(settings)
	if err != nil {
		return nil, nil, err
	}
	return viewer, th, nil
}

func buildTheme(settings config.Settings) (*theme.Theme, error) {
	var th *theme.Theme
	switch settings.Theme {
	case "", "dark":
		th = theme.Default()
	case "light":
		th = theme.Light()
	default:
		return nil, fmt.Errorf("unknown theme %q", settings.Theme)
	}

	overrides := []struct {
		hex string
		dst *core.Color
	}{
		{settings.Colors.Background, &th.Background},
		{settings.Colors.Text, &th.Text},
		{settings.Colors.Header, &th.Header},
		{settings.Colors.HeaderText, &th.HeaderText},
		{settings.Colors.Border, &th.Border},
		{settings.Colors.Accent, &th.Accent},
	}
	for _, o := range overrides {
		if o.hex == "" {
			continue
		}
		c, err := theme.ParseColor(o.hex)
		if err != nil {
			return nil, err
		}
		*o.dst = c
	}
	return th, nil
}
