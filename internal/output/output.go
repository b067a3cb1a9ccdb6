package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"MoodSpot-App/internal/domain/model"
)

type Options struct {
	JSON    bool
	NoColor bool
	Stdout  io.Writer
	Stderr  io.Writer
}

// Output はmoodctlの表示を担当する
type Output struct {
	JSON bool

	stdout io.Writer
	stderr io.Writer

	green  *color.Color
	yellow *color.Color
	red    *color.Color
	gray   *color.Color
	bold   *color.Color
}

func New(opts Options) *Output {
	if opts.NoColor {
		color.NoColor = true
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Output{
		JSON:   opts.JSON,
		stdout: opts.Stdout,
		stderr: opts.Stderr,
		green:  color.New(color.FgGreen),
		yellow: color.New(color.FgYellow),
		red:    color.New(color.FgRed),
		gray:   color.New(color.FgHiBlack),
		bold:   color.New(color.Bold),
	}
}

func (o *Output) Print(msg string) {
	if o.JSON {
		return
	}
	fmt.Fprintln(o.stdout, msg)
}

func (o *Output) Warn(msg string) {
	if o.JSON {
		return
	}
	fmt.Fprintln(o.stdout, o.yellow.Sprint(msg))
}

func (o *Output) Error(msg string) {
	fmt.Fprintln(o.stderr, o.red.Sprint(msg))
}

func (o *Output) EmitJSON(v any) error {
	enc := json.NewEncoder(o.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Recommendation は提案結果を表示する
func (o *Output) Recommendation(resp *model.RecommendationResponse) error {
	if o.JSON {
		return o.EmitJSON(resp)
	}

	o.Print(o.bold.Sprintf("Mood: %s (%s)", resp.Mood, resp.Category))
	o.Print(o.gray.Sprintf("Location: %s [%s]", resp.LocationName, resp.Location))
	o.Print("")

	o.Print(o.bold.Sprint("Places") + o.sourceTag(resp.PlacesSource))
	for _, p := range resp.Places {
		o.Print(fmt.Sprintf("  %s %s", o.green.Sprint(p.Name), o.gray.Sprintf("(%s)", p.Type)))
		o.Print("    " + p.Description)
		if p.Address != "" {
			o.Print(o.gray.Sprint("    " + p.Address))
		}
	}
	o.Print("")

	o.Print(o.bold.Sprint("Music") + o.sourceTag(resp.MusicSource))
	for _, s := range resp.Music {
		o.Print(fmt.Sprintf("  %s - %s %s", o.green.Sprint(s.Title), s.Artist, o.gray.Sprintf("[%s]", s.Genre)))
		if s.Reason != "" {
			o.Print("    " + s.Reason)
		}
	}
	return nil
}

// LocationFailure は位置情報エラーを表示する
func (o *Output) LocationFailure(err *model.LocationError) error {
	if o.JSON {
		return o.EmitJSON(map[string]any{
			"error":     string(err.Kind),
			"message":   err.Message,
			"retryable": err.Retryable(),
		})
	}
	o.Error(err.Message)
	if err.Retryable() {
		o.Warn("Check your location settings and try again.")
	}
	return nil
}

// Moods は選択可能な気分の一覧を表示する
func (o *Output) Moods(presets []model.MoodPreset) error {
	if o.JSON {
		return o.EmitJSON(map[string]any{"moods": presets})
	}
	o.Print(o.bold.Sprint("Available moods:"))
	for _, p := range presets {
		o.Print(fmt.Sprintf("  %-10s %s", o.green.Sprint(p.Label), o.gray.Sprint(p.Description)))
	}
	return nil
}

// Distance は2地点間の距離を表示する
func (o *Output) Distance(from, to model.Coordinate, km float64) error {
	if o.JSON {
		return o.EmitJSON(map[string]any{"from": from, "to": to, "distance_km": km})
	}
	o.Print(fmt.Sprintf("%s -> %s: %s", from, to, o.bold.Sprintf("%.1f km", km)))
	return nil
}

func (o *Output) sourceTag(source model.ResultSource) string {
	switch source {
	case model.SourceFallback:
		return " " + o.yellow.Sprint("(offline suggestions)")
	case model.SourceHeuristic:
		return " " + o.gray.Sprint("(approximate)")
	default:
		return ""
	}
}
