package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lepinkainen/steamstats/internal/registry"
)

// Responder turns one line of user input into a reply. The conversational
// model stays an external collaborator behind this interface; the built-in
// CommandResponder maps plain commands straight onto the capability registry.
type Responder interface {
	Respond(ctx context.Context, input string) (string, error)
}

// CommandResponder dispatches simple keyword commands to registry
// capabilities and renders the results as indented JSON.
type CommandResponder struct {
	reg *registry.Registry
}

func NewCommandResponder(reg *registry.Registry) *CommandResponder {
	return &CommandResponder{reg: reg}
}

func (r *CommandResponder) Respond(ctx context.Context, input string) (string, error) {
	fields := strings.Fields(strings.TrimSpace(input))
	if len(fields) == 0 {
		return r.helpText(), nil
	}

	command := strings.ToLower(fields[0])
	rest := fields[1:]

	switch command {
	case "help", "?":
		return r.helpText(), nil
	case "summary":
		return r.call(ctx, "get_library_summary", nil)
	case "count":
		return r.call(ctx, "get_total_game_count", nil)
	case "total", "playtime":
		return r.call(ctx, "get_total_playtime", nil)
	case "top", "most":
		return r.call(ctx, "get_most_played_games", registry.Args{"top_n": optionalInt(rest)})
	case "least":
		return r.call(ctx, "get_least_played_games", registry.Args{"top_n": optionalInt(rest)})
	case "unplayed":
		return r.call(ctx, "list_unplayed_games", registry.Args{"limit": optionalInt(rest)})
	case "recent":
		return r.call(ctx, "get_recently_played_games", registry.Args{"days": optionalInt(rest)})
	case "neglected":
		return r.call(ctx, "get_neglected_games", registry.Args{"days": optionalInt(rest)})
	case "find":
		return r.named(ctx, "find_game_stats", rest)
	case "info":
		return r.named(ctx, "get_game_info", rest)
	case "reviews":
		return r.named(ctx, "summarize_player_reviews", rest)
	default:
		return fmt.Sprintf("Unknown command %q. Type 'help' to see what I can answer.", command), nil
	}
}

// named dispatches a capability that takes the rest of the line as a game name.
func (r *CommandResponder) named(ctx context.Context, capability string, rest []string) (string, error) {
	name := strings.Join(rest, " ")
	if name == "" {
		return fmt.Sprintf("Usage: %s <game name>", capability), nil
	}
	return r.call(ctx, capability, registry.Args{"game_name": name})
}

func (r *CommandResponder) call(ctx context.Context, capability string, args registry.Args) (string, error) {
	result, err := r.reg.Call(ctx, capability, args)
	if err != nil {
		return "", err
	}
	rendered, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render %s result: %w", capability, err)
	}
	return string(rendered), nil
}

// optionalInt reads an optional numeric argument. Invalid or absent values
// return 0 so the registry's own defaulting kicks in.
func optionalInt(fields []string) int {
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

func (r *CommandResponder) helpText() string {
	var b strings.Builder
	b.WriteString("Commands:\n")
	b.WriteString("  summary              library overview\n")
	b.WriteString("  count                game counts (played / unplayed)\n")
	b.WriteString("  total                total playtime in hours\n")
	b.WriteString("  top [n]              most played games\n")
	b.WriteString("  least [n]            least played games with some playtime\n")
	b.WriteString("  unplayed [n]         games with under an hour of playtime\n")
	b.WriteString("  recent [days]        games played recently\n")
	b.WriteString("  neglected [days]     well-played games gathering dust\n")
	b.WriteString("  find <name>          playtime stats for one game\n")
	b.WriteString("  info <name>          store-page details for a game\n")
	b.WriteString("  reviews <name>       recent player reviews\n")
	b.WriteString("  exit                 leave the chat")
	return b.String()
}
