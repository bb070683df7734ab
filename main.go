package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/tevino/abool/v2"

	"moon-go/interpreter"
)

// / Route SIGINT/SIGTERM to flag until the returned func is called.
func InterruptHandler(flag *abool.AtomicBool) func() {
	quit := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		for {
			select {
			case <-quit:
				flag.Set()
			case <-done:
				return
			}
		}
	}()
	return func() {
		signal.Stop(quit)
		close(done)
	}
}

func real_main(args []string) int {
	options := Options{}
	exit_code := ReadFlags(&args, &options)
	if exit_code >= 0 {
		return exit_code
	}

	config, err := LoadConfig(options.ConfigFile)
	if err != nil {
		Error("%v", err)
		return ExitFailure.Code()
	}

	moon := NewMoonMain(config, &options)
	if GMetrics != nil {
		defer GMetrics.Report(g_stdout)
	}

	if options.Tool != nil {
		return options.Tool.Func1(moon, args).Code()
	}

	if options.InputFile == "" {
		stop := InterruptHandler(moon.interrupt_)
		defer stop()
		return moon.StartPlayground().Code()
	}

	stop := InterruptHandler(moon.interrupt_)
	defer stop()
	input := interpreter.ReaderInput(os.Stdin, g_stdout)
	return moon.RunScript(options.InputFile, input).Code()
}

func main() {
	os.Exit(real_main(os.Args))
}
