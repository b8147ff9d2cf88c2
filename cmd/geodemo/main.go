package main

import (
	"context"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/geodetic/internal/config"
	"github.com/kailas-cloud/geodetic/internal/domain/geo"
	logpkg "github.com/kailas-cloud/geodetic/internal/logger"
	"github.com/kailas-cloud/geodetic/internal/metrics"
	"github.com/kailas-cloud/geodetic/internal/report"
	"github.com/kailas-cloud/geodetic/internal/usecase/health"
	"github.com/kailas-cloud/geodetic/internal/usecase/navigation"
	"github.com/kailas-cloud/geodetic/internal/version"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting geodetic demo",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Bool("strict_latitude", cfg.Geodesy.StrictLatitude),
		zap.Int("points", len(cfg.Demo.Points)),
	)

	// Register metrics explicitly (no init())
	registry := prometheus.NewRegistry()
	if err := metrics.RegisterGeodeticMetrics(registry); err != nil {
		logger.Fatal("Failed to register metrics", zap.Error(err))
	}

	ctx := logpkg.ContextWithLogger(context.Background(), logger)

	selfCheck := health.New(logger).Check(ctx)
	if selfCheck.Status != health.Healthy {
		logger.Fatal("Self-check failed", zap.Any("checks", selfCheck.Checks))
	}
	logger.Debug("Self-check passed", zap.Any("checks", selfCheck.Checks))

	nav := navigation.New(cfg.Geodesy.StrictLatitude, logger)
	out := report.NewWriter(os.Stdout)

	run(ctx, cfg, nav, out)

	if err := out.Err(); err != nil {
		logger.Fatal("Failed to write report", zap.Error(err))
	}

	if cfg.Metrics.Dump {
		if err := metrics.WriteText(os.Stdout, registry); err != nil {
			logger.Error("Failed to dump metrics", zap.Error(err))
		}
	}

	logger.Info("Demo finished")
}

func run(ctx context.Context, cfg config.Config, nav *navigation.Service, out *report.Writer) {
	for _, pc := range cfg.Demo.Points {
		p := toPoint(pc)

		c, err := nav.Project(ctx, p)
		if err != nil {
			out.Failure(pc.Name, navigation.OpProject, err)
			continue
		}
		out.Point(pc.Name, p, c)

		u, err := nav.Normalize(ctx, c.Vector(), c.Vector().Norm())
		if err != nil {
			out.Failure(pc.Name, navigation.OpNormalize, err)
		} else {
			out.Normalized(c.Vector(), u)
		}

		// Heading is undefined on the equatorial plane; report and move on.
		h, err := nav.Heading(ctx, p)
		if err != nil {
			out.Failure(pc.Name, navigation.OpHeading, err)
			continue
		}
		out.Heading(pc.Name, h)
	}

	for _, pair := range cfg.Demo.Pairs {
		from, _ := cfg.Point(pair.From)
		to, _ := cfg.Point(pair.To)
		a, b := toPoint(from), toPoint(to)

		chord, err := nav.Distance(ctx, a, b)
		if err != nil {
			out.Failure(pair.From+" -> "+pair.To, navigation.OpDistance, err)
			continue
		}
		out.Distance(pair.From, pair.To, chord, geo.Haversine(a, b))
	}
}

func toPoint(pc config.PointConfig) geo.GeodeticPoint {
	return geo.GeodeticPoint{Lat: pc.Lat, Lon: pc.Lon, Alt: pc.Alt}
}
