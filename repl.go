package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/sarmadiali98/ReLico-sub000/api"
	"github.com/sarmadiali98/ReLico-sub000/builder"
	"github.com/sarmadiali98/ReLico-sub000/config"
)

const (
	historyFile = ".relico_history"
	promptMain  = ">>> "
	promptCont  = "... "
	banner      = "ReLico scratchpad. Ctrl+D exits, :quit exits, :reset discards the buffered model."
)

// repl runs the interactive scratchpad. Model text accumulates line by
// line; whenever the buffer parses as a complete model it is translated
// and the Lingua Franca program is printed, so classes can be added one
// at a time. The continuation prompt shows while the parser reports
// incomplete input.
func repl(cfg *config.Config) {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}

	// committed holds the last successfully translated model text,
	// pending the lines typed since.
	var committed, pending []string

	for {
		prompt := promptMain
		if len(pending) > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			// Ctrl+C drops the unfinished construct.
			pending = nil
			continue
		}

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ":") {
			ln.AppendHistory(line)
			if quit := replCommand(trimmed, &committed, &pending); quit {
				break
			}
			continue
		}
		if trimmed == "" && len(pending) == 0 {
			continue
		}
		ln.AppendHistory(line)
		pending = append(pending, line)

		all := make([]string, 0, len(committed)+len(pending))
		all = append(all, committed...)
		all = append(all, pending...)
		src := strings.Join(all, "\n")

		text, warnings, err := api.Translate([]byte(src), "scratch", cfg)
		if err != nil {
			if builder.IsIncomplete(err) {
				continue
			}
			fmt.Println(err)
			pending = nil
			continue
		}
		for _, warning := range warnings {
			fmt.Println(warning)
		}
		fmt.Print(text)
		committed = all
		pending = nil
	}

	if f, err := os.Create(histPath); err == nil {
		ln.WriteHistory(f)
		f.Close()
	}
}

func replCommand(cmd string, committed, pending *[]string) (quit bool) {
	switch cmd {
	case ":quit", ":exit":
		return true
	case ":reset":
		*committed = nil
		*pending = nil
		fmt.Println("buffer cleared.")
	default:
		fmt.Println("unknown command, expected :quit or :reset")
	}
	return false
}
