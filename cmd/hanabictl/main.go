// hanabictl is an offline debug CLI over pkg/hanabi. It has no
// network, lobby, or UI dependency. Every invocation needs --state:
// "new" creates a game and writes its snapshot there; every other
// command loads the snapshot from it. Action commands write the
// resulting snapshot back and print it; "state" and "perspective" only
// print the snapshot or a perspective as JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vctt94/hanabi-engine/pkg/hanabi"
)

var (
	stateFile = flag.String("state", "", "path to a JSON snapshot file (read and rewritten)")
	players   = flag.String("players", "", "comma-separated player names for \"new\"")
	seed      = flag.String("seed", "", "shuffle seed for \"new\"")
	viewer    = flag.String("viewer", "", "viewer id for \"perspective\"")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <command> [args]\n", os.Args[0])
		fmt.Fprintln(os.Stderr, "Commands:")
		fmt.Fprintln(os.Stderr, "  new --players A,B [--seed s]     Create a new game, print its snapshot")
		fmt.Fprintln(os.Stderr, "  state                            Print the current snapshot")
		fmt.Fprintln(os.Stderr, "  perspective --viewer id           Print a viewer's perspective")
		fmt.Fprintln(os.Stderr, "  play cardId                      Play a card")
		fmt.Fprintln(os.Stderr, "  discard cardId                   Discard a card")
		fmt.Fprintln(os.Stderr, "  hint-color targetId R|Y|G|B|W|M   Give a color hint")
		fmt.Fprintln(os.Stderr, "  hint-number targetId 1-5          Give a number hint")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		flag.Usage()
		return fmt.Errorf("missing command")
	}
	cmd, rest := args[0], args[1:]

	if cmd == "new" {
		return cmdNew()
	}

	engine, err := loadEngine()
	if err != nil {
		return err
	}

	switch cmd {
	case "state":
		return printJSON(engine.GetSnapshot())
	case "perspective":
		if *viewer == "" {
			return fmt.Errorf("perspective requires --viewer")
		}
		p, err := engine.GetPerspectiveState(*viewer)
		if err != nil {
			return err
		}
		return printJSON(p)
	case "play":
		if len(rest) != 1 {
			return fmt.Errorf("play requires a cardId")
		}
		if err := engine.PlayCard(rest[0]); err != nil {
			return err
		}
	case "discard":
		if len(rest) != 1 {
			return fmt.Errorf("discard requires a cardId")
		}
		if err := engine.DiscardCard(rest[0]); err != nil {
			return err
		}
	case "hint-color":
		if len(rest) != 2 {
			return fmt.Errorf("hint-color requires targetId and a color")
		}
		suit, ok := hanabi.ParseSuit(rest[1])
		if !ok {
			return fmt.Errorf("unknown color %q", rest[1])
		}
		if err := engine.GiveColorHint(rest[0], suit); err != nil {
			return err
		}
	case "hint-number":
		if len(rest) != 2 {
			return fmt.Errorf("hint-number requires targetId and a number")
		}
		n, err := strconv.Atoi(rest[1])
		if err != nil {
			return fmt.Errorf("invalid number %q", rest[1])
		}
		if err := engine.GiveNumberHint(rest[0], hanabi.CardNumber(n)); err != nil {
			return err
		}
	default:
		flag.Usage()
		return fmt.Errorf("unknown command %q", cmd)
	}

	if err := saveEngine(engine); err != nil {
		return err
	}
	return printJSON(engine.GetSnapshot())
}

func cmdNew() error {
	if *players == "" {
		return fmt.Errorf("new requires --players A,B,...")
	}
	names := strings.Split(*players, ",")
	shuffleSeed := *seed
	if shuffleSeed == "" {
		shuffleSeed = os.Getenv("HANABI_SEED")
	}
	engine, err := hanabi.NewGame(hanabi.NewGameSetup{
		PlayerNames: names,
		Settings:    hanabi.DefaultSettings(),
		ShuffleSeed: shuffleSeed,
	})
	if err != nil {
		return err
	}
	if err := saveEngine(engine); err != nil {
		return err
	}
	return printJSON(engine.GetSnapshot())
}

func loadEngine() (*hanabi.Engine, error) {
	if *stateFile == "" {
		return nil, fmt.Errorf("missing --state")
	}
	data, err := os.ReadFile(*stateFile)
	if err != nil {
		return nil, fmt.Errorf("reading state file: %w", err)
	}
	var state hanabi.HanabiState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("parsing state file: %w", err)
	}
	return hanabi.FromState(state)
}

func saveEngine(engine *hanabi.Engine) error {
	if *stateFile == "" {
		return fmt.Errorf("missing --state")
	}
	data, err := json.MarshalIndent(engine.GetSnapshot(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*stateFile, data, 0o644)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
