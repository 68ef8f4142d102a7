package bootstrap

import (
	"os"

	"go.uber.org/zap"

	"github.com/wippyai/julert/console"
	"github.com/wippyai/julert/heap"
	"github.com/wippyai/julert/rt"
)

// Main runs entry after inits with the environment configuration and ends
// the process. It never returns.
func Main(entry func(), inits ...func()) {
	cfg := DefaultConfig()
	cfg.Main = entry
	cfg.Initializers = inits
	Run(cfg)
}

// Run executes the program described by cfg, calls cfg.Exit with the exit
// status and returns it. Run only returns when cfg.Exit does.
func Run(cfg *Config) int {
	if cfg == nil {
		cfg = &Config{}
	}
	exit := cfg.Exit
	if exit == nil {
		exit = os.Exit
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	console.Setup()
	if cfg.Stdout != nil {
		prev := console.SetStdout(cfg.Stdout)
		defer console.SetStdout(prev)
	}

	rt.SetLogger(log)
	defer rt.SetLogger(nil)

	if cfg.Heap != nil {
		opts := append([]heap.Option{heap.WithLogger(log)}, cfg.Heap...)
		prev := heap.SetDefault(heap.NewSpace(opts...))
		defer heap.SetDefault(prev)
	}

	handler := func(err error) {
		log.Error("unhandled panic", zap.Error(err))
		_ = rt.WritePanic(console.Stdout(), err)
		if ferr := console.Flush(); ferr != nil {
			log.Warn("flush failed", zap.Error(ferr))
		}
		exit(rt.ExitPanic)
	}
	if !rt.InstallHandler(handler) {
		log.Debug("process handler already installed")
	}

	code := run(cfg, log, handler)
	if code != rt.ExitSuccess {
		return code
	}

	if err := console.Flush(); err != nil {
		log.Warn("flush failed", zap.Error(err))
	}
	if cfg.Debug {
		reportLive(log, heap.Default())
	}
	exit(rt.ExitSuccess)
	return rt.ExitSuccess
}

// run executes initializers and the entry point. A panic escaping either
// is handed to handler.
func run(cfg *Config, log *zap.Logger, handler rt.Handler) (code int) {
	defer rt.Recover(func(err error) {
		handler(err)
		code = rt.ExitPanic
	})

	for i, fn := range cfg.Initializers {
		log.Debug("running initializer", zap.Int("index", i))
		fn()
	}
	if cfg.Main != nil {
		log.Debug("running entry point")
		cfg.Main()
	}
	return rt.ExitSuccess
}

func reportLive(log *zap.Logger, s *heap.Space) {
	live := s.Live()
	if live == 0 {
		return
	}
	log.Debug("live handles at exit",
		zap.Int("count", live),
		zap.Int64("bytes", s.Bytes()))
	s.Each(func(h heap.Handle, typeName string) bool {
		log.Debug("live handle", zap.Uint32("handle", uint32(h)), zap.String("type", typeName))
		return true
	})
}
