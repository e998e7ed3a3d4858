// Command filedlg is a terminal file picker. It opens a dialog over the
// real filesystem and prints the chosen paths to stdout, one per line, so
// it can be used from scripts:
//
//	filedlg --mode file --start ~/Documents
//	filedlg --mode save --name report.txt
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kk-code-lab/filedlg/internal/app"
	"github.com/kk-code-lab/filedlg/internal/dialog"
	"github.com/kk-code-lab/filedlg/internal/fs"
	"github.com/kk-code-lab/filedlg/internal/persist"
)

func main() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		color.NoColor = true
	}
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "filedlg:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		modeFlag     string
		startDir     string
		fileName     string
		settingsPath string
		filterSpecs  []string
		debugLog     string
	)

	cmd := &cobra.Command{
		Use:           "filedlg",
		Short:         "pick files and directories from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(modeFlag, startDir, fileName, settingsPath, filterSpecs, debugLog)
		},
	}

	cmd.Flags().StringVarP(&modeFlag, "mode", "m", "file",
		"dialog mode: file, directory, multiple, save")
	cmd.Flags().StringVarP(&startDir, "start", "s", "",
		"starting directory (default: home)")
	cmd.Flags().StringVarP(&fileName, "name", "n", "",
		"initial file name in save mode")
	cmd.Flags().StringVar(&settingsPath, "settings", "",
		"settings file (default: user config dir)")
	cmd.Flags().StringArrayVar(&filterSpecs, "filter", nil,
		"type filter as name:ext,ext (repeatable), e.g. text:.txt,.md")
	cmd.Flags().StringVar(&debugLog, "debug", "",
		"write a debug log to this file")

	return cmd
}

func run(modeFlag, startDir, fileName, settingsPath string, filterSpecs []string, debugLog string) error {
	mode, err := dialog.ParseMode(modeFlag)
	if err != nil {
		return err
	}

	filters, err := parseFilters(filterSpecs)
	if err != nil {
		return err
	}

	var logger *zap.Logger
	if debugLog != "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{debugLog}
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer logger.Sync()
	}

	store, err := openStore(settingsPath)
	if err != nil {
		return err
	}

	fsys := fs.OS()
	home, err := fsys.HomeDir()
	if err != nil {
		home = ""
	}

	session, err := dialog.NewSession(fsys, dialog.Options{
		Mode:            mode,
		StartDir:        startDir,
		DefaultFileName: fileName,
		TypeFilters:     filters,
		Store:           store,
		Logger:          logger,
	})
	if err != nil {
		return fmt.Errorf("start dialog: %w", err)
	}

	application, err := app.NewApplication(session, home)
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	paths, ok := application.Run()
	if !ok {
		color.New(color.FgYellow).Fprintln(os.Stderr, "cancelled")
		os.Exit(1)
	}
	for _, p := range paths {
		fmt.Println(p)
	}
	return nil
}

// parseFilters turns name:ext,ext specs into type filters. The name doubles
// as the filter ID.
func parseFilters(specs []string) ([]dialog.TypeFilter, error) {
	filters := make([]dialog.TypeFilter, 0, len(specs))
	for _, spec := range specs {
		name, exts, ok := strings.Cut(spec, ":")
		if !ok || name == "" || exts == "" {
			return nil, fmt.Errorf("bad filter %q, want name:ext,ext", spec)
		}
		filters = append(filters, dialog.TypeFilter{
			ID:         name,
			Name:       name,
			Extensions: strings.Split(exts, ","),
		})
	}
	return filters, nil
}

func openStore(path string) (persist.Store, error) {
	if path == "" {
		cfgDir, err := os.UserConfigDir()
		if err != nil {
			// No config dir; run without persistence.
			return nil, nil
		}
		path = filepath.Join(cfgDir, "filedlg", "settings.yaml")
	}
	return persist.NewFileStore(path), nil
}
