package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/lixenwraith/termgreet/audio"
	"github.com/lixenwraith/termgreet/constants"
	"github.com/lixenwraith/termgreet/greet"
)

var (
	holdFlag  = flag.Duration("hold", constants.DefaultHoldDuration, "How long to hold the greeting on screen")
	chimeFlag = flag.Bool("chime", false, "Play the greeting chime (also TERMGREET_CHIME=1)")
	debugFlag = flag.Bool("debug", false, "Enable debug logging to logs/termgreet.log")
)

func main() {
	greeter := greet.New()

	// Panic Recovery: Ensure the terminal is restored even if drawing crashes
	defer func() {
		if r := recover(); r != nil {
			greeter.Stop()

			fmt.Fprintf(os.Stderr, "\nTERMGREET CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := audio.LoadConfig()
	if *chimeFlag {
		cfg.Enabled = true
	}

	engine := audio.NewEngine(cfg)
	if cfg.Enabled {
		if err := engine.Start(); err != nil {
			log.Printf("Audio start failed: %v (continuing without audio)", err)
		} else if engine.Silent() {
			log.Printf("No speaker available (continuing without audio)")
		}
		defer engine.Stop()
	}

	if err := greeter.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initialising terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer greeter.Stop()

	// Release the hold early on SIGINT/SIGTERM so the deferred Stop still
	// restores the terminal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		greeter.Interrupt()
	}()

	if err := greeter.Render(constants.GreetingMessage, constants.GreetingRow, constants.GreetingCol); err != nil {
		panic(err)
	}

	variants, err := greeter.RenderColorVariants(constants.GreetingMessage, constants.GreetingRow, constants.GreetingCol)
	if err != nil {
		panic(err)
	}
	log.Printf("Rendered %d color variant rows (capability %+v)", variants, greeter.Capability())

	engine.Play(audio.GreetingChime(cfg))

	completed, err := greeter.Present(*holdFlag)
	if err != nil {
		panic(err)
	}

	greeter.Stop()

	if !completed {
		engine.Stop()
		os.Exit(1)
	}
}
