package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"aisle/config"
	"aisle/floorplan"
	"aisle/nav"
	"aisle/render"
	"aisle/server"
	"aisle/tui"
)

func main() {
	// Define command line flags
	var (
		interactive = flag.Bool("i", false, "Edit the plan in the interactive TUI")
		serve       = flag.Bool("serve", false, "Run the HTTP plan service")
		addr        = flag.String("addr", "", "Listen address for -serve (overrides config)")
		routeSpec   = flag.String("route", "", `One-shot route: "x1,y1:x2,y2" in inches, or "fromID:toID"`)
		format      = flag.String("format", "text", "Route output format: text or json")
		locations   = flag.String("locations", "", "Merge a locations CSV file into the plan")
		configPath  = flag.String("config", "", "Config YAML file (embedded defaults if omitted)")
		showGrid    = flag.Bool("show-grid", false, "Mark walkable cells when rendering")
		outputFile  = flag.String("o", "", "Output file (default: stdout)")
		debug       = flag.Bool("debug", false, "Debug logging for -serve")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [plan.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Indoor navigation for warehouse floor plans: edit plans, render them,\n")
		fmt.Fprintf(os.Stderr, "compute walking routes with directions, and serve it all over HTTP.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                   # Start the TUI with an empty floor\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s plan.json                         # Render the plan to stdout\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -i plan.json                      # Edit the plan in the TUI\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -route \"36,132:444,132\" plan.json # Route between two points\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -route recv:ship -format json plan.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -locations locs.csv -o plan.json plan.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -serve -addr :8080 plan.json      # Serve the plan API\n", os.Args[0])
	}

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *debug {
		cfg.Log.Debug = true
	}

	navOpts := nav.Options{
		CellSize:            cfg.Grid.CellSizeInches,
		WalkSpeed:           cfg.Walk.SpeedFeetPerSecond,
		LandmarkRadiusCells: cfg.Directions.LandmarkRadiusCells,
	}

	filename := flag.Arg(0)
	if filename == "" && cfg.Server.PlanFile != "" {
		filename = cfg.Server.PlanFile
	}

	plan, err := loadPlan(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *locations != "" {
		n, err := plan.ImportLocations(*locations)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Imported %d locations\n", n)

		// Import alone is a write-back operation; with another mode the
		// merged plan just flows onward.
		if !*interactive && !*serve && *routeSpec == "" {
			target := *outputFile
			if target == "" {
				target = filename
			}
			if target == "" {
				fmt.Fprintf(os.Stderr, "Error: nowhere to write the merged plan (use -o)\n")
				os.Exit(1)
			}
			if err := floorplan.Save(target, plan); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			fmt.Fprintf(os.Stderr, "Wrote %s\n", target)
			return
		}
	}

	switch {
	case *serve:
		runServe(cfg, plan, filename, *addr, navOpts)

	case *routeSpec != "":
		out, err := runRoute(plan, navOpts, *routeSpec, *format, *showGrid)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		writeOut(out, *outputFile)

	case *interactive || filename == "":
		app := tui.NewApp(plan, filename, navOpts)
		if err := tui.Run(app); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		planner := nav.NewPlanner(plan, navOpts)
		r := &render.Renderer{ShowGrid: *showGrid}
		writeOut(r.RenderPlan(plan, planner.Grid()), *outputFile)
	}
}

// loadPlan reads the named plan file, or starts a blank 40x30ft floor
// when none is given.
func loadPlan(filename string) (*floorplan.FloorPlan, error) {
	if filename == "" {
		return &floorplan.FloorPlan{Name: "New Floor", Width: 480, Height: 360}, nil
	}
	return floorplan.Load(filename)
}

// routeOutput is the -format json shape, matching the HTTP route
// endpoint so scripts can consume either.
type routeOutput struct {
	Found             bool           `json:"found"`
	Path              []nav.Waypoint `json:"path,omitempty"`
	Directions        []nav.Step     `json:"directions,omitempty"`
	TotalDistanceFeet int            `json:"totalDistanceFeet,omitempty"`
	EstimatedMinutes  int            `json:"estimatedMinutes,omitempty"`
}

// runRoute computes a one-shot route and formats it.
func runRoute(plan *floorplan.FloorPlan, opts nav.Options, spec, format string, showGrid bool) (string, error) {
	from, to, err := parseRouteSpec(spec, plan)
	if err != nil {
		return "", err
	}
	planner := nav.NewPlanner(plan, opts)
	route := planner.Route(from, to)

	switch format {
	case "text":
		r := &render.Renderer{ShowGrid: showGrid}
		return r.RenderRoute(plan, planner.Grid(), route), nil

	case "json":
		resp := routeOutput{Found: route != nil}
		if route != nil {
			resp.Path = route.Path.Points
			resp.Directions = route.Directions.Steps
			resp.TotalDistanceFeet = route.Directions.TotalDistanceFeet
			resp.EstimatedMinutes = route.Directions.EstimatedMinutes
		}
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding route: %w", err)
		}
		return string(data), nil

	default:
		return "", fmt.Errorf("unknown format %q (want text or json)", format)
	}
}

// parseRouteSpec splits "from:to" where each endpoint is a location id
// or an "x,y" coordinate pair in inches.
func parseRouteSpec(spec string, plan *floorplan.FloorPlan) (from, to floorplan.Point, err error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 2 {
		return from, to, fmt.Errorf(`route %q: want "x1,y1:x2,y2" or "fromID:toID"`, spec)
	}
	if from, err = parseEndpoint(parts[0], plan); err != nil {
		return from, to, err
	}
	to, err = parseEndpoint(parts[1], plan)
	return from, to, err
}

func parseEndpoint(s string, plan *floorplan.FloorPlan) (floorplan.Point, error) {
	s = strings.TrimSpace(s)
	if loc, ok := plan.LocationByID(s); ok {
		return loc.Position(), nil
	}
	coords := strings.Split(s, ",")
	if len(coords) != 2 {
		return floorplan.Point{}, fmt.Errorf("endpoint %q is neither a location id nor an x,y pair", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(coords[0]), 64)
	if err != nil {
		return floorplan.Point{}, fmt.Errorf("endpoint %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(coords[1]), 64)
	if err != nil {
		return floorplan.Point{}, fmt.Errorf("endpoint %q: %w", s, err)
	}
	return floorplan.Point{X: x, Y: y}, nil
}

// runServe starts the HTTP service and blocks until interrupted.
func runServe(cfg *config.Config, plan *floorplan.FloorPlan, planFile, addrFlag string, navOpts nav.Options) {
	logger, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	addr := addrFlag
	if addr == "" {
		addr = cfg.Server.Addr
	}

	planner := nav.NewPlanner(plan, navOpts)
	srv := server.New(planner, planFile, navOpts, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.Watch && planFile != "" {
		go func() {
			if err := srv.Watch(ctx); err != nil {
				logger.Warn("plan watcher stopped", zap.Error(err))
			}
		}()
	}

	if err := srv.Run(ctx, addr); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

// newLogger builds the production JSON logger, at debug level when
// configured.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.Path != "" {
		zcfg.OutputPaths = []string{cfg.Path}
	}
	return zcfg.Build()
}

// writeOut prints to stdout, or to the -o file when given.
func writeOut(out, outputFile string) {
	out = strings.TrimRight(out, "\n") + "\n"
	if outputFile == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(outputFile, []byte(out), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", outputFile)
}
