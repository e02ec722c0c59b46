package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"

	"github.com/jcorbin/gobf/internal/config"
	"github.com/jcorbin/gobf/internal/flushio"
	"github.com/jcorbin/gobf/internal/panicerr"
)

type command struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	cfg     config.Config
	dump    bool
	closers []io.Closer
}

var errUsage = errors.New("usage: gobf [flags] FILE")

func (cmd *command) main(ctx context.Context, args []string) (rerr error) {
	defer func() {
		if err := cmd.Close(); rerr == nil {
			rerr = err
		}
	}()

	fs := flag.NewFlagSet("gobf", flag.ContinueOnError)
	fs.SetOutput(cmd.stderr)
	src, err := cmd.parseFlags(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	} else if err != nil {
		return err
	}
	log, err := cmd.logger()
	if err != nil {
		return err
	}

	var opts = []Option{
		WithTapeSize(cmd.cfg.TapeSize),
		WithStepLimit(cmd.cfg.StepLimit),
	}
	if cmd.cfg.Trace {
		opts = append(opts, WithLogf(func(mess string, args ...interface{}) {
			log.Debug(fmt.Sprintf(mess, args...))
		}))
	}

	source, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	prog, err := Compile(string(source), opts...)
	if err != nil {
		return fmt.Errorf("%v: %w", src, err)
	}

	out := flushio.NewWriteFlusher(cmd.stdout)
	if cmd.cfg.Tee != "" {
		f, err := os.Create(cmd.cfg.Tee)
		if err != nil {
			return err
		}
		cmd.closers = append(cmd.closers, f)
		out = flushio.Tee(out, flushio.NewWriteFlusher(f))
	}

	if cmd.cfg.Timeout.Duration != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cmd.cfg.Timeout.Duration)
		defer cancel()
	}

	if cmd.dump {
		fmt.Fprintf(cmd.stderr, "# Program %v\n", src)
		dumpProgram(cmd.stderr, prog)
	}

	ex := prog.Start(ctx, flushingInput{Reader(cmd.stdin), out})
	err = panicerr.Recover("gobf", func() error {
		n, err := WriteTo(out, ex.Output())
		log.Info("run done", "output", n, "steps", ex.Steps())
		return err
	})
	if cmd.dump {
		dumpTape(cmd.stderr, ex)
	}
	return err
}

func (cmd *command) parseFlags(fs *flag.FlagSet, args []string) (string, error) {
	var (
		cfgPath   string
		tapeSize  int
		stepLimit uint64
		timeout   config.Duration
		trace     bool
		traceFile string
		tee       string
	)
	fs.StringVar(&cfgPath, "config", "", "load settings from a TOML file")
	fs.IntVar(&tapeSize, "tape-size", 0, "number of tape cells (default 1024)")
	fs.Uint64Var(&stepLimit, "step-limit", 0, "fail after this many steps")
	fs.TextVar(&timeout, "timeout", config.Duration{}, "specify a time limit")
	fs.BoolVar(&trace, "trace", false, "enable trace logging")
	fs.StringVar(&traceFile, "trace-file", "", "also log JSON lines into this file")
	fs.StringVar(&tee, "tee", "", "copy output into this file")
	fs.BoolVar(&cmd.dump, "dump", false, "dump the program and final tape to stderr")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return "", errUsage
	}

	cmd.cfg = config.Default()
	if cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return "", err
		}
		cmd.cfg = cfg
	}

	// explicit flags override the file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape-size":
			cmd.cfg.TapeSize = tapeSize
		case "step-limit":
			cmd.cfg.StepLimit = stepLimit
		case "timeout":
			cmd.cfg.Timeout = timeout
		case "trace":
			cmd.cfg.Trace = trace
		case "trace-file":
			cmd.cfg.TraceFile = traceFile
		case "tee":
			cmd.cfg.Tee = tee
		}
	})
	return fs.Arg(0), cmd.cfg.Validate()
}

func (cmd *command) logger() (*slog.Logger, error) {
	level := slog.LevelWarn
	if cmd.cfg.Trace {
		level = slog.LevelDebug
	}
	handlers := []slog.Handler{
		slog.NewTextHandler(cmd.stderr, &slog.HandlerOptions{Level: level}),
	}
	if cmd.cfg.TraceFile != "" {
		f, err := os.Create(cmd.cfg.TraceFile)
		if err != nil {
			return nil, err
		}
		cmd.closers = append(cmd.closers, f)
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slogmulti.Fanout(handlers...)), nil
}

func (cmd *command) Close() (err error) {
	for i := len(cmd.closers) - 1; i >= 0; i-- {
		if cerr := cmd.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	cmd.closers = nil
	return err
}
