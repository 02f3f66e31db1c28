package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"reefcatch/internal/client"
	"reefcatch/internal/config"
	"reefcatch/internal/game"
)

func main() {
	tuning := game.DefaultTuning()
	if path := config.GetGameEnv("TUNING", ""); path != "" {
		loaded, err := game.LoadTuning(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "tuning: %v\n", err)
			os.Exit(1)
		}
		tuning = loaded
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	reader := bufio.NewReader(os.Stdin)
	c := client.New(reader, os.Stdout, client.Options{Tuning: tuning})
	if err := c.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
