package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/giftbench/giftbench/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"GIFTBENCH_CONFIG",
		"GIFTBENCH_ADDR",
		"GIFTBENCH_LOG_LEVEL",
		"GIFTBENCH_MAX_UPLOAD_BYTES",
		"GIFTBENCH_HISTOGRAM_BINS",
		"GIFTBENCH_TEAM_FTE",
		"GIFTBENCH_PREVIEW_ROWS",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(10<<20))
				convey.So(cfg.HistogramBins, convey.ShouldEqual, 20)
				convey.So(cfg.TeamFTE, convey.ShouldEqual, 1.0)
				convey.So(cfg.PreviewRows, convey.ShouldEqual, 5)
				convey.So(cfg.CORSOrigins, convey.ShouldResemble, []string{"*"})
			})
		})

		convey.Convey("When loading config with environment variables", func() {
			_ = os.Setenv("GIFTBENCH_ADDR", ":8080")
			_ = os.Setenv("GIFTBENCH_MAX_UPLOAD_BYTES", "1048576")
			_ = os.Setenv("GIFTBENCH_HISTOGRAM_BINS", "10")
			_ = os.Setenv("GIFTBENCH_TEAM_FTE", "2.5")
			_ = os.Setenv("GIFTBENCH_PREVIEW_ROWS", "3")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.MaxUploadBytes, convey.ShouldEqual, int64(1048576))
				convey.So(cfg.HistogramBins, convey.ShouldEqual, 10)
				convey.So(cfg.TeamFTE, convey.ShouldEqual, 2.5)
				convey.So(cfg.PreviewRows, convey.ShouldEqual, 3)
			})
		})

		convey.Convey("When loading config with a YAML file", func() {
			clearConfigEnvVars()
			dir := t.TempDir()
			path := filepath.Join(dir, "giftbench.yaml")
			yaml := "addr: \":7070\"\nlog_level: debug\nhistogram_bins: 12\n"
			convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
			_ = os.Setenv("GIFTBENCH_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":7070")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.HistogramBins, convey.ShouldEqual, 12)
			})

			convey.Convey("And env should still win over the file", func() {
				_ = os.Setenv("GIFTBENCH_ADDR", ":6060")
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":6060")
			})
		})

		convey.Convey("When the config is invalid", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GIFTBENCH_HISTOGRAM_BINS", "0")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrInvalidConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the config file is missing", func() {
			clearConfigEnvVars()
			_ = os.Setenv("GIFTBENCH_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should fail with ErrLoadConfig", func() {
				convey.So(cfg, convey.ShouldBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})
	})
}
