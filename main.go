package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mordilloSan/go-oslg/oslg"
)

// Example program validating inputs with oslg and reporting through zap.
//
// Usage:
//
//	./go-oslg area --radius 2.5
//	./go-oslg --level debug area --radius -1
//	OSLG_LEVEL=warn ./go-oslg --config oslg.yaml area --radius abc
func main() {
	zl := newZapLogger(os.Stderr)
	code := execute(zl, os.Args[1:])
	_ = zl.Sync()
	os.Exit(code)
}

// execute runs the root command with args and returns the process exit code.
func execute(zl *zap.Logger, args []string) int {
	cmd := newRootCmd(zl)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		zl.Error("command failed", zap.Error(err))
		return 1
	}
	return 0
}

func newZapLogger(w io.Writer) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}

func newRootCmd(zl *zap.Logger) *cobra.Command {
	var (
		level      string
		configPath string
	)

	root := &cobra.Command{
		Use:           "go-oslg",
		Short:         "Validate inputs and report an oslg status",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var content []byte
			if configPath != "" {
				b, err := os.ReadFile(configPath)
				if err != nil {
					return fmt.Errorf("failed to read config file %s: %w", configPath, err)
				}
				content = b
			}
			cfg, err := oslg.LoadConfig(content)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("level") {
				cfg.Level = level
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			oslg.Init(cfg)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&level, "level", "", "reporting level (debug, info, warn, error, fatal)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")

	root.AddCommand(newAreaCmd(zl), newLevelsCmd())
	return root
}

func newAreaCmd(zl *zap.Logger) *cobra.Command {
	var radius string

	cmd := &cobra.Command{
		Use:   "area",
		Short: "Compute the area of a circle, validating its radius",
		RunE: func(cmd *cobra.Command, args []string) error {
			oslg.Log(oslg.DebugLevel, "radius input: "+radius)
			a := circleArea(radius)
			if oslg.Status() < oslg.ErrorLevel {
				fmt.Fprintf(cmd.OutOrStdout(), "%.4f\n", a)
			}
			return report(zl)
		},
	}
	cmd.Flags().StringVar(&radius, "radius", "", "circle radius")
	return cmd
}

// circleArea returns the area for the given radius text, or 0 after
// logging why the radius is unusable.
func circleArea(text string) float64 {
	const mth = "circle area"

	if oslg.Trim(text) == "" {
		return oslg.Empty("radius", mth, oslg.ErrorLevel, 0.0)
	}
	var r any = text
	// out-of-range values parse to ±Inf along with ErrRange
	if f, err := strconv.ParseFloat(oslg.Trim(text), 64); err == nil || errors.Is(err, strconv.ErrRange) {
		r = f
	}
	radius, ok := r.(float64)
	if !ok {
		return oslg.Mismatch("radius", r, oslg.TypeOf[float64](), mth, oslg.ErrorLevel, 0.0)
	}
	switch {
	case math.IsNaN(radius) || math.IsInf(radius, 0):
		return oslg.Invalid("radius", mth, 1, oslg.ErrorLevel, 0.0)
	case radius < 0:
		return oslg.Negative("radius", mth, oslg.ErrorLevel, 0.0)
	case radius == 0:
		return oslg.Zero("radius", mth, oslg.WarnLevel, 0.0)
	}
	return math.Pi * radius * radius
}

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "List levels with their status messages",
		Run: func(cmd *cobra.Command, args []string) {
			for _, l := range oslg.AllLevels() {
				fmt.Fprintf(cmd.OutOrStdout(), "%d %-7s %s\n", int(l), oslg.Tag(l), oslg.Msg(l))
			}
		},
	}
}

// zapLevels maps oslg levels to the zap level used when reporting.
var zapLevels = map[oslg.Level]zapcore.Level{
	oslg.DebugLevel: zapcore.DebugLevel,
	oslg.InfoLevel:  zapcore.InfoLevel,
	oslg.WarnLevel:  zapcore.WarnLevel,
	oslg.ErrorLevel: zapcore.ErrorLevel,
	// zap's FatalLevel exits the process
	oslg.FatalLevel: zapcore.DPanicLevel,
}

// report writes the recorded entries and the overall status through zl.
// It returns an error when the status reached ErrorLevel.
func report(zl *zap.Logger) error {
	for _, e := range oslg.Logs() {
		zl.Log(zapLevels[e.Level], e.Message)
	}
	status := oslg.Status()
	if status == 0 {
		return nil
	}
	zl.Info(oslg.Msg(status), zap.Stringer("status", status), zap.Int("entries", len(oslg.Logs())))
	if status >= oslg.ErrorLevel {
		return fmt.Errorf("validation failed with status %s", status)
	}
	return nil
}
