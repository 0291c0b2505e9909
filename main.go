// Command woodgrain previews procedural textures in the terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	s, err := parseSettings(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	if err := InitLogger(s.logPath, s.logLevel); err != nil {
		log.Fatalf("failed to open log: %v", err)
	}

	if err := run(s); err != nil {
		LogError("preview failed", "err", err)
		CloseLogger()
		log.Fatal(err)
	}
	CloseLogger()
}

func run(s settings) (err error) {
	defer func() {
		if r := recover(); r != nil {
			LogPanic(r, "run")
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	LogInfo("starting preview", "seed", s.seed, "generator", s.generator, "rings", s.rings,
		"octaves", s.noise.Octaves, "persistence", s.noise.Persistence,
		"frequency", s.noise.Frequency, "amplitude", s.noise.Amplitude)

	generators, err := buildGenerators(s)
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialModel(generators, s.generator), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
