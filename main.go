package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/hesusruiz/snap/site"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var (
	banner  = color.New(color.FgMagenta, color.Bold)
	success = color.New(color.FgGreen)
	faint   = color.New(color.Faint)
)

// newLogger sets up the logging system, verbose in debug mode.
func newLogger(c *cli.Context) *zap.SugaredLogger {
	var z *zap.Logger
	var err error

	if c.Bool("debug") {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}

	return z.Sugar()
}

// loadProject reads the configuration of the project in the working directory.
func loadProject(c *cli.Context) (*site.Config, error) {
	return site.LoadConfig(c.String("project"))
}

// portArg returns the port in argument n, or def when it is absent or not a number.
func portArg(c *cli.Context, n int, def int) int {
	if port, err := strconv.Atoi(c.Args().Get(n)); err == nil && port > 0 {
		return port
	}
	return def
}

// relative shortens path for display, relative to the working directory when possible.
func relative(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, path); err == nil {
		return rel
	}
	return path
}

func initCmd(c *cli.Context) error {
	name := site.DefaultProjectName
	if c.Args().Present() {
		name = c.Args().First()
	}

	if _, err := site.Init(filepath.Join(c.String("project"), name)); err != nil {
		return err
	}

	fmt.Println()
	banner.Printf("  🫰 Created Snap project in ./%s\n\n", name)
	fmt.Printf("  cd %s && snap dev\n\n", name)
	return nil
}

func devCmd(c *cli.Context) error {
	sugar := newLogger(c)
	defer sugar.Sync()

	cfg, err := loadProject(c)
	if err != nil {
		return err
	}
	cfg.Port = portArg(c, 0, cfg.Port)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	fmt.Println()
	banner.Printf("  🫰 Snap dev server running at http://localhost:%d\n\n", cfg.Port)
	faint.Printf("  Watching for changes in %s\n\n", cfg.PagesDir)

	return site.NewDevServer(cfg, sugar).ListenAndServe(ctx)
}

// printBuild prints the summary of a build, and every failure.
func printBuild(cfg *site.Config, built []string, err error) {
	fmt.Println()
	banner.Printf("  🫰 Built %d page(s) to %s/\n\n", len(built), relative(cfg.OutDir))
	for _, f := range built {
		success.Printf("    → %s\n", f)
	}
	for _, e := range multierr.Errors(err) {
		color.Red("    ✗ %v", e)
	}
	fmt.Println()
}

func buildCmd(c *cli.Context) error {
	sugar := newLogger(c)
	defer sugar.Sync()

	cfg, err := loadProject(c)
	if err != nil {
		return err
	}
	if c.Args().Present() {
		cfg.OutDir = filepath.Join(cfg.ProjectDir, c.Args().First())
	}

	// This is useful for development.
	// If the user specified to watch, loop until interrupted rebuilding when a page is modified
	if c.Bool("watch") {
		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
		defer stop()
		return site.Watch(ctx, cfg, time.Second, sugar, func(built []string, err error) {
			printBuild(cfg, built, err)
		})
	}

	built, err := site.Build(cfg, sugar)
	printBuild(cfg, built, err)
	if err != nil {
		return cli.Exit(fmt.Sprintf("%d page(s) failed", len(multierr.Errors(err))), 1)
	}
	return nil
}

func serveCmd(c *cli.Context) error {
	sugar := newLogger(c)
	defer sugar.Sync()

	cfg, err := loadProject(c)
	if err != nil {
		return err
	}

	dir := cfg.OutDir
	if c.Args().Present() {
		dir = filepath.Join(cfg.ProjectDir, c.Args().First())
	}
	port := portArg(c, 1, cfg.Port)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	fmt.Println()
	banner.Printf("  🫰 Serving at http://localhost:%d\n\n", port)

	return site.Serve(ctx, ":"+strconv.Itoa(port), dir, sugar)
}

func main() {

	app := &cli.App{
		Name:     "snap",
		Version:  "v0.1.0",
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{
				Name:  "Jesus Ruiz",
				Email: "hesus.ruiz@gmail.com",
			},
		},
		Usage: "describe your website, don't code it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "project",
				Aliases: []string{"C"},
				Value:   ".",
				Usage:   "use `DIR` as the project directory",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "init",
				Usage:     "create a new Snap project",
				ArgsUsage: "[name]",
				Action:    initCmd,
			},
			{
				Name:      "dev",
				Usage:     "start the dev server with hot reload",
				ArgsUsage: "[port]",
				Action:    devCmd,
			},
			{
				Name:      "build",
				Usage:     "build the pages for production",
				ArgsUsage: "[dir]",
				Action:    buildCmd,
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "watch",
						Aliases: []string{"w"},
						Usage:   "rebuild when a page changes",
					},
				},
			},
			{
				Name:      "serve",
				Usage:     "serve the built files",
				ArgsUsage: "[dir] [port]",
				Action:    serveCmd,
			},
		},
		UsageText: `snap init my-site
snap dev 3000
snap build`,
	}

	if err := app.Run(os.Args); err != nil {
		color.Red("%v", err)
		os.Exit(1)
	}

}
