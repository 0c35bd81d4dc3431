package main

import (
	"flag"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"aviator/internal/tui"
)

func main() {
	debug := flag.Bool("debug", false, "log to debug.log")
	seed := flag.Int64("seed", 0, "fixed random seed (0 = time-based)")
	fps := flag.Int("fps", 30, "frames per second")
	flag.Parse()

	if *debug {
		f, err := tea.LogToFile("debug.log", "aviator")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
	}

	opts := []tui.Option{tui.WithFPS(*fps)}
	if *seed != 0 {
		opts = append(opts, tui.WithSeed(*seed))
	}

	p := tea.NewProgram(tui.New(opts...), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal(err)
	}
}
