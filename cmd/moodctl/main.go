package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"MoodSpot-App/internal/config"
	"MoodSpot-App/internal/domain/helper"
	"MoodSpot-App/internal/domain/model"
	"MoodSpot-App/internal/domain/repository"
	"MoodSpot-App/internal/domain/service"
	"MoodSpot-App/internal/infrastructure/ai"
	"MoodSpot-App/internal/infrastructure/geocoding"
	"MoodSpot-App/internal/infrastructure/location"
	"MoodSpot-App/internal/output"
	"MoodSpot-App/internal/usecase"
)

const (
	exitSuccess     = 0
	exitFailure     = 1
	exitUsage       = 2
	exitLocation    = 3
	exitInterrupted = 130
)

type cliOptions struct {
	Mood    string
	Lat     float64
	Lng     float64
	HasLat  bool
	HasLng  bool
	From    string
	To      string
	JSON    bool
	NoColor bool
	Verbose bool
	Help    bool
}

type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

// locationFailure は位置情報エラーを表示済みであることを示す
type locationFailure struct{ err *model.LocationError }

func (e locationFailure) Error() string { return e.err.Error() }

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:])
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "Interrupted (Ctrl-C)")
		os.Exit(exitInterrupted)
	}
	if err != nil {
		var ue usageError
		var lf locationFailure
		switch {
		case errors.As(err, &ue):
			fmt.Fprintln(os.Stderr, ue.msg)
			os.Exit(exitUsage)
		case errors.As(err, &lf):
			os.Exit(exitLocation)
		}
		fmt.Fprintln(os.Stderr, "Error:", err.Error())
		os.Exit(exitFailure)
	}
	os.Exit(exitSuccess)
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" || args[0] == "help" {
		printUsage()
		return nil
	}

	command := args[0]
	opts, err := parseArgs(command, args[1:])
	if err != nil {
		return err
	}
	if opts.Help {
		printUsage()
		return nil
	}

	// サーバー用のログはverbose時のみ表示する
	if !opts.Verbose {
		log.SetOutput(io.Discard)
	}

	out := output.New(output.Options{
		JSON:    opts.JSON,
		NoColor: opts.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb",
	})

	switch command {
	case "moods":
		return out.Moods(model.GetMoodPresets())
	case "distance":
		return runDistance(out, opts)
	case "recommend":
		return runRecommend(ctx, out, opts)
	}
	return usageError{msg: fmt.Sprintf("unknown command %q (run with --help for usage)", command)}
}

func parseArgs(command string, args []string) (cliOptions, error) {
	var opts cliOptions

	fs := pflag.NewFlagSet("moodctl "+command, pflag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.SortFlags = false

	fs.BoolVarP(&opts.Help, "help", "h", false, "display help")
	fs.StringVarP(&opts.Mood, "mood", "m", "", "Current mood (e.g. Happy, Sad, Confused, Unwell)")
	fs.Float64Var(&opts.Lat, "lat", 0, "Current latitude")
	fs.Float64Var(&opts.Lng, "lng", 0, "Current longitude")
	fs.StringVar(&opts.From, "from", "", "Origin as lat,lng")
	fs.StringVar(&opts.To, "to", "", "Destination as lat,lng")
	fs.BoolVar(&opts.JSON, "json", false, "Output machine-readable JSON")
	fs.BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVarP(&opts.Verbose, "verbose", "v", false, "Show pipeline logs")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, usageError{msg: err.Error() + "\n(run with --help for usage)"}
	}
	opts.HasLat = fs.Changed("lat")
	opts.HasLng = fs.Changed("lng")

	if opts.Mood == "" && fs.NArg() > 0 {
		opts.Mood = strings.Join(fs.Args(), " ")
	}
	opts.Mood = strings.TrimSpace(opts.Mood)

	if command == "recommend" && !opts.Help {
		if opts.Mood == "" {
			return cliOptions{}, usageError{msg: "--mood is required"}
		}
		if opts.HasLat != opts.HasLng {
			return cliOptions{}, usageError{msg: "--lat and --lng must be given together"}
		}
	}
	return opts, nil
}

func runDistance(out *output.Output, opts cliOptions) error {
	from, err := model.ParseCoordinate(opts.From)
	if err != nil {
		return usageError{msg: "--from: " + err.Error()}
	}
	to, err := model.ParseCoordinate(opts.To)
	if err != nil {
		return usageError{msg: "--to: " + err.Error()}
	}
	return out.Distance(from, to, helper.HaversineDistance(from, to))
}

func runRecommend(ctx context.Context, out *output.Output, opts cliOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	geminiClient := ai.NewGeminiClientWithBaseURL(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)
	uc := usecase.NewMoodRecommendationUseCase(
		service.NewLocationAcquisitionService(cfg.LocationTimeout, cfg.LocationMaximumAge),
		geocoding.NewNominatimGeocoder(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.GeocodeTimeout),
		ai.NewGeminiRecommendationRepository(geminiClient),
	)

	// 座標の指定が無い場合は測位機能が無い端末として扱う
	var source repository.PositionSource
	if opts.HasLat && opts.HasLng {
		source = location.NewStaticSource(model.Coordinate{Latitude: opts.Lat, Longitude: opts.Lng})
	}

	resp, err := uc.Resolve(ctx, &model.RecommendationRequest{Mood: opts.Mood}, source)
	if err != nil {
		var locErr *model.LocationError
		if errors.As(err, &locErr) {
			if emitErr := out.LocationFailure(locErr); emitErr != nil {
				return emitErr
			}
			return locationFailure{err: locErr}
		}
		return err
	}
	return out.Recommendation(resp)
}

func printUsage() {
	fmt.Fprintln(os.Stdout, "Usage: moodctl <command> [options]")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Mood-based place and music suggestions")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Commands:")
	fmt.Fprintln(os.Stdout, "  recommend --mood <mood> --lat <lat> --lng <lng>   Suggest nearby places and songs")
	fmt.Fprintln(os.Stdout, "  moods                                             List selectable moods")
	fmt.Fprintln(os.Stdout, "  distance --from <lat,lng> --to <lat,lng>          Great-circle distance in km")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Options:")
	fmt.Fprintln(os.Stdout, "  --json                     Output machine-readable JSON")
	fmt.Fprintln(os.Stdout, "  --no-color                 Disable colored output")
	fmt.Fprintln(os.Stdout, "  -v, --verbose              Show pipeline logs")
	fmt.Fprintln(os.Stdout, "")
	fmt.Fprintln(os.Stdout, "Environment:")
	fmt.Fprintln(os.Stdout, "  GEMINI_API_KEY             Generative backend credential (offline suggestions when unset)")
}
