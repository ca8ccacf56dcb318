package toolkit

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/mitchellh/mapstructure"
)

var (
	ErrUnknownTool      = errors.New("unknown tool")
	ErrDuplicateTool    = errors.New("tool already registered")
	ErrInvalidArguments = errors.New("invalid tool arguments")
)

type Handler func(ctx context.Context, args map[string]any) (any, error)

// Tool is what the orchestrator sees: a named operation, what it does and the
// shape of its arguments.
type Tool struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	InputSchema *openapi3.Schema `json:"input_schema"`
}

type Registry struct {
	tools    map[string]Tool
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{
		tools:    make(map[string]Tool),
		handlers: make(map[string]Handler),
	}
}

func (r *Registry) Register(tool Tool, handler Handler) error {
	if _, ok := r.tools[tool.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateTool, tool.Name)
	}

	if tool.InputSchema == nil {
		tool.InputSchema = openapi3.NewObjectSchema()
	}

	r.tools[tool.Name] = tool
	r.handlers[tool.Name] = handler

	return nil
}

// Tools lists registered tools ordered by name.
func (r *Registry) Tools() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}

	sort.Slice(tools, func(i, j int) bool {
		return tools[i].Name < tools[j].Name
	})

	return tools
}

func (r *Registry) Has(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// HandleTool validates args against the tool input schema and runs its handler.
func (r *Registry) HandleTool(ctx context.Context, name string, args map[string]any) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	if args == nil {
		args = map[string]any{}
	}

	if err := tool.InputSchema.VisitJSON(args); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArguments, err.Error())
	}

	return r.handlers[name](ctx, args)
}

// decodeArgs fills a typed input from already validated args.
func decodeArgs[T any](args map[string]any) (T, error) {
	var input T

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           &input,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return input, err
	}

	if err := decoder.Decode(args); err != nil {
		return input, fmt.Errorf("%w: %s", ErrInvalidArguments, err.Error())
	}

	return input, nil
}

func objectSchema(required []string, properties map[string]*openapi3.Schema) *openapi3.Schema {
	schema := openapi3.NewObjectSchema().WithProperties(properties)
	schema.Required = required

	return schema
}

func stringProperty(description string) *openapi3.Schema {
	schema := openapi3.NewStringSchema().WithMinLength(1)
	schema.Description = description

	return schema
}
