// Command uciloop is a minimal UCI front-end over the engine adapter. It
// understands exactly the messages spec.md §6.3 names (uci, isready,
// ucinewgame, position, go, quit) and is deliberately thin: parsing a full
// UCI session (time controls, ponder, multi-PV) is an external
// collaborator's job, not this repository's.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/arn-halden/deepline"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "uciloop: logger init failed:", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	cfg := deepline.DefaultConfig()
	adapter := deepline.NewAdapter(cfg, sugar)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "uci":
			fmt.Println("id name deepline")
			fmt.Println("id author deepline")
			fmt.Println("uciok")
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			adapter.NewGame()
		case "position":
			handlePosition(adapter, fields[1:])
		case "go":
			m, ok := adapter.FindBestMove()
			if !ok {
				fmt.Println("bestmove 0000")
				continue
			}
			fmt.Printf("bestmove %s\n", moveToUCI(m))
		case "quit":
			return
		default:
			sugar.Debugw("ignored unknown UCI message", "line", line)
		}
	}
}

func handlePosition(adapter *deepline.Adapter, args []string) {
	if len(args) == 0 {
		return
	}

	i := 0
	switch args[0] {
	case "startpos":
		adapter.NewGame()
		i = 1
	case "fen":
		// Collect fields until "moves" or end of input.
		var fenFields []string
		j := 1
		for j < len(args) && args[j] != "moves" {
			fenFields = append(fenFields, args[j])
			j++
		}
		if err := adapter.SetPositionFromFEN(strings.Join(fenFields, " ")); err != nil {
			return
		}
		i = j
	default:
		return
	}

	if i < len(args) && args[i] == "moves" {
		for _, mv := range args[i+1:] {
			adapter.ApplyUCIMove(mv)
		}
	}
}

func moveToUCI(m deepline.Move) string {
	from := string(rune('a'+m.From.File())) + string(rune('1'+m.From.Rank()))
	to := string(rune('a'+m.To.File())) + string(rune('1'+m.To.Rank()))
	return from + to
}
