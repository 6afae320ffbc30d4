package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/qnkhuat/tetriscore/pkg/event"
	"github.com/qnkhuat/tetriscore/pkg/game"
	"github.com/qnkhuat/tetriscore/pkg/mino"
)

type options struct {
	seed       uint64
	rows       int
	cols       int
	script     string
	scriptFile string
	gravity    time.Duration
	duration   time.Duration
	logPath    string
	logLevel   string
	debug      bool
	json       bool
}

func main() {
	_ = godotenv.Load()

	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log, closeLog, err := initLog(opts.logPath, opts.logLevel, opts.debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize log: %s\n", err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts, log); err != nil {
		log.Error().Err(err).Msg("tetrisim failed")
		closeLog()
		os.Exit(1)
	}
}

func parseFlags(args []string) (*options, error) {
	var (
		opts options
		err  error
	)

	fs := flag.NewFlagSet("tetrisim", flag.ContinueOnError)

	seed, err := envUint("TETRIS_SEED", 0)
	if err != nil {
		return nil, err
	}
	rows, err := envInt("TETRIS_ROWS", game.DefaultRows)
	if err != nil {
		return nil, err
	}
	cols, err := envInt("TETRIS_COLS", game.DefaultCols)
	if err != nil {
		return nil, err
	}
	gravity, err := envDuration("TETRIS_GRAVITY", 0)
	if err != nil {
		return nil, err
	}

	fs.Uint64Var(&opts.seed, "seed", seed, "bag seed, 0 for a random game")
	fs.IntVar(&opts.rows, "rows", rows, "board rows")
	fs.IntVar(&opts.cols, "cols", cols, "board columns")
	fs.StringVar(&opts.script, "script", "", "intents to apply, e.g. \"hhx.k\" (h l j k x z .)")
	fs.StringVar(&opts.scriptFile, "script-file", "", "read intents from file")
	fs.DurationVar(&opts.gravity, "gravity", gravity, "gravity interval; 0 replays the script without a clock")
	fs.DurationVar(&opts.duration, "duration", time.Minute, "maximum run time with gravity")
	fs.StringVar(&opts.logPath, "log", getEnv("TETRIS_LOG", ""), "path to log file, stderr when empty")
	fs.StringVar(&opts.logLevel, "log-level", getEnv("LOG_LEVEL", "info"), "log level")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&opts.json, "json", false, "print events and the final board as JSON lines")

	if err = fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.scriptFile != "" {
		data, err := os.ReadFile(opts.scriptFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read script: %w", err)
		}
		opts.script += string(data)
	}

	return &opts, nil
}

func run(ctx context.Context, opts *options, log zerolog.Logger) error {
	actions, err := event.ParseScript(opts.script)
	if err != nil {
		return fmt.Errorf("failed to parse script: %w", err)
	}

	if opts.rows < 4 || opts.cols < 4 {
		return fmt.Errorf("board of %dx%d is too small", opts.rows, opts.cols)
	}

	newBag := func() *mino.Bag { return mino.NewBag(nil) }
	if opts.seed != 0 {
		newBag = func() *mino.Bag { return mino.NewSeededBag(opts.seed) }
	}

	s := game.NewSession(game.SessionConfig{
		Rows:    opts.rows,
		Cols:    opts.cols,
		Gravity: opts.gravity,
		NewBag:  newBag,
		Logger:  &log,
	})

	log.Info().
		Str("session", s.Name).
		Uint64("seed", opts.seed).
		Int("actions", len(actions)).
		Msg("starting")

	if opts.gravity <= 0 {
		replay(s.Board(), actions, log)
	} else if err := live(ctx, s, actions, opts); err != nil {
		return err
	}

	return printBoard(os.Stdout, s.Name, s.Board().Snapshot(), opts.json)
}

// replay applies actions in order without a clock, stopping at game over.
func replay(b *game.Board, actions []event.Action, log zerolog.Logger) {
	for i, a := range actions {
		if b.GameOver() {
			log.Info().Int("applied", i).Int("skipped", len(actions)-i).Msg("game over before end of script")
			return
		}

		b.Apply(a)
	}
}

// live runs the session under gravity, feeding the scripted intents first,
// until game over, the run time elapses or the process is signalled.
func live(ctx context.Context, s *game.Session, actions []event.Action, opts *options) error {
	ctx, cancel := context.WithTimeout(ctx, opts.duration)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	go func() {
		for _, a := range actions {
			if err := s.Push(ctx, a); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case err := <-done:
			if err := drainEvents(s, opts.json); err != nil {
				return err
			}
			if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case ev := <-s.Events():
			if err := printEvent(os.Stdout, ev, opts.json); err != nil {
				return err
			}
		}
	}
}

// drainEvents prints events queued before the run ended.
func drainEvents(s *game.Session, asJSON bool) error {
	for {
		select {
		case ev := <-s.Events():
			if err := printEvent(os.Stdout, ev, asJSON); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
