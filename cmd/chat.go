package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lepinkainen/steamstats/internal/agent"
	"github.com/lepinkainen/steamstats/internal/term"
)

// ChatCmd runs an interactive question loop over the loaded library.
type ChatCmd struct {
	ID string `arg:"" optional:"" help:"Steam ID or vanity URL (falls back to config)"`
}

var exitWords = map[string]bool{
	"exit":    true,
	"quit":    true,
	"bye":     true,
	"goodbye": true,
}

func (c *ChatCmd) Run() error {
	session, err := newSession()
	if err != nil {
		return err
	}

	id, err := resolveSteamID(c.ID)
	if err != nil {
		return err
	}

	ctx := context.Background()
	out := os.Stdout

	term.PrintBanner(out)
	result, err := session.Load(ctx, id)
	if err != nil {
		printLoadGuidance(out, err)
		return err
	}
	term.PrintSuccess(out, fmt.Sprintf("Loaded %d games for %s", result.GameCount, result.PlayerName))
	fmt.Fprintln(out, "Ask about your library, or type 'help' for commands. Type 'exit' to leave.")

	responder := agent.NewCommandResponder(agent.Tools(session))
	return runChatLoop(ctx, os.Stdin, out, responder)
}

// runChatLoop reads questions until EOF or an exit word.
func runChatLoop(ctx context.Context, in io.Reader, out io.Writer, responder agent.Responder) error {
	scanner := bufio.NewScanner(in)
	for {
		term.PrintUserPrompt(out)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if exitWords[strings.ToLower(input)] {
			term.PrintAgentMessage(out, "Thanks for chatting! Goodbye!")
			return nil
		}

		reply, err := responder.Respond(ctx, input)
		if err != nil {
			term.PrintError(out, err.Error())
			continue
		}
		term.PrintAgentMessage(out, reply)
	}
}
