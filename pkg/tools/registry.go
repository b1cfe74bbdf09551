package tools

import (
	"context"
	"sort"

	"github.com/solidmcp/solidmcp/pkg/scene"
)

// Tool is one command exposed to remote clients. Execute returns the
// structured handler result; every result carries at least a success flag
// and, when a new or mutated entity is involved, its id.
type Tool interface {
	Name() string
	Description() string
	Parameters() map[string]any
	Execute(ctx context.Context, args map[string]any) (map[string]any, error)
}

// Registry manages tool registration and lookup.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register registers a tool under its name.
func (r *Registry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get returns a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// All returns every registered tool sorted by name.
func (r *Registry) All() []Tool {
	out := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		out = append(out, tool)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Catalog renders the tools/list payload: name, description and a
// JSON-Schema parameters object per tool.
func (r *Registry) Catalog() []map[string]any {
	out := make([]map[string]any, 0, len(r.tools))
	for _, tool := range r.All() {
		out = append(out, map[string]any{
			"name":        tool.Name(),
			"description": tool.Description(),
			"inputSchema": tool.Parameters(),
		})
	}
	return out
}

// DefaultRegistry wires every geometry tool against the given scene.
func DefaultRegistry(sc *scene.Scene, exportDir string) *Registry {
	r := NewRegistry()
	r.Register(&CreateTool{Scene: sc})
	r.Register(&DeleteTool{Scene: sc})
	r.Register(&TransformTool{Scene: sc})
	r.Register(&SelectionTool{Scene: sc})
	r.Register(&MaterialTool{Scene: sc})
	r.Register(&BooleanTool{Scene: sc})
	r.Register(&ChamferTool{Scene: sc})
	r.Register(&FilletTool{Scene: sc})
	r.Register(&MortiseTenonTool{Scene: sc})
	r.Register(&DovetailTool{Scene: sc})
	r.Register(&FingerJointTool{Scene: sc})
	export := &ExportTool{Scene: sc, Dir: exportDir}
	r.Register(export)
	r.Register(&exportAlias{ExportTool: export})
	return r
}
