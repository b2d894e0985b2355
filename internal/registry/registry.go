// Package registry implements the capability registry: an explicit table
// mapping operation names to handlers with declared parameter schemas. The
// conversational front end calls library operations exclusively through this
// table.
package registry

import (
	"context"
	"fmt"
	"strconv"
)

// Param declares one named parameter of a capability.
type Param struct {
	Name    string `json:"name"`
	Type    string `json:"type"`
	Default any    `json:"default,omitempty"`
	Doc     string `json:"doc,omitempty"`
}

// Args holds the raw arguments of one capability call. Values arrive from an
// untrusted caller and are coerced, never trusted.
type Args map[string]any

// Int returns the named argument coerced to a positive int. Absent, invalid,
// or non-positive values fall back to def.
func (a Args) Int(key string, def int) int {
	raw, ok := a[key]
	if !ok {
		return def
	}

	var n int
	switch v := raw.(type) {
	case int:
		n = v
	case int64:
		n = int(v)
	case float64:
		n = int(v)
	case string:
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return def
		}
		n = parsed
	default:
		return def
	}

	if n <= 0 {
		return def
	}
	return n
}

// String returns the named argument as a string, or "" when absent.
func (a Args) String(key string) string {
	raw, ok := a[key]
	if !ok {
		return ""
	}
	s, ok := raw.(string)
	if !ok {
		return fmt.Sprintf("%v", raw)
	}
	return s
}

// Handler executes one capability. The returned map is a plain keyed
// structure suitable for direct serialization.
type Handler func(ctx context.Context, args Args) (map[string]any, error)

// Tool is one registered capability.
type Tool struct {
	Name    string
	Doc     string
	Params  []Param
	Handler Handler
}

// Registry is the capability table. Registration order is preserved for
// listings.
type Registry struct {
	tools map[string]Tool
	order []string
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register adds a capability to the table.
func (r *Registry) Register(tool Tool) error {
	if tool.Name == "" {
		return fmt.Errorf("tool name is required")
	}
	if tool.Handler == nil {
		return fmt.Errorf("tool %s has no handler", tool.Name)
	}
	if _, exists := r.tools[tool.Name]; exists {
		return fmt.Errorf("tool %s already registered", tool.Name)
	}
	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	return nil
}

// MustRegister registers a capability and panics on a wiring mistake.
// Registration happens at startup with static definitions, so a failure here
// is a programming error.
func (r *Registry) MustRegister(tool Tool) {
	if err := r.Register(tool); err != nil {
		panic(err)
	}
}

// Get looks up a capability by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all capabilities in registration order.
func (r *Registry) List() []Tool {
	tools := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		tools = append(tools, r.tools[name])
	}
	return tools
}

// Call dispatches one capability invocation.
func (r *Registry) Call(ctx context.Context, name string, args Args) (map[string]any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("unknown capability: %s", name)
	}
	if args == nil {
		args = Args{}
	}
	return tool.Handler(ctx, args)
}
