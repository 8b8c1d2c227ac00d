package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"reflect"
	"runtime"
	"runtime/pprof"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rawbytedev/breaker"
	"github.com/rawbytedev/breaker/pkg/view"
)

var errMismatch = errors.New("unexpected result")

func main() {
	if err := realMain(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func realMain() error {
	n := flag.Int("n", 1, "repeat the scenarios n times")
	memprofile := flag.String("memprofile", "", "write a heap profile to this file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	if !*verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	if *memprofile != "" {
		runtime.MemProfileRate = 1
	}
	for i := 0; i < *n; i++ {
		if err := run(logger.With(zap.Int("iter", i))); err != nil {
			logger.Error("scenario failed", zap.Error(err))
			return err
		}
	}
	if *memprofile != "" {
		if err := writeHeap(*memprofile); err != nil {
			logger.Error("heap profile", zap.Error(err))
			return err
		}
		logger.Info("heap profile written", zap.String("path", *memprofile))
	}
	return nil
}

func run(logger *zap.Logger) error {
	a := strings.Clone("Hello, Rustaceans!")
	c := breaker.ConstOf(&a)
	logger.Debug("before", zap.String("value", c.Load()), zap.Uintptr("addr", c.Addr()))
	// SAFETY: a is owned by this frame and read only through c below.
	*breaker.ForceMut(c) = "Hello, unsafe!"
	if a != "Hello, unsafe!" {
		return fmt.Errorf("forcemut: got %q: %w", a, errMismatch)
	}
	logger.Info("forcemut", zap.String("value", c.Load()))

	u := uint32(65)
	// SAFETY: uint32 and rune have identical size and alignment.
	r := breaker.ForceConvert[rune](&u)
	if *r != 'A' {
		return fmt.Errorf("forceconvert: got %q: %w", *r, errMismatch)
	}
	logger.Info("forceconvert", zap.String("value", string(*r)))

	buf := make([]byte, 8)
	words := view.Slice[uint32](buf)
	words[0], words[1] = 1, 2
	logger.Info("view", zap.Int("words", len(words)), zap.Binary("bytes", buf))

	var halves []uint16
	view.AliasKind(reflect.ValueOf(&halves).Elem(), buf, reflect.Uint16, -1)
	if len(halves) != 4 {
		return fmt.Errorf("aliaskind: got %d elements: %w", len(halves), errMismatch)
	}
	logger.Debug("aliaskind", zap.Int("halves", len(halves)))
	return nil
}

func writeHeap(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pprof.WriteHeapProfile(f)
}
