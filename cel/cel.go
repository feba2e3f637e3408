// Package cel compiles Common Expression Language expressions into the comparer and
// predicate functions the list package's Func variants take, for chains whose values
// are map[string]any (decoded JSON records, rows, and the like).
package cel

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/google/cel-go/cel"
)

// Evaluator struct contains the CEL expression & the cel program used to evaluate expression vs. input variables.
type Evaluator struct {
	Name       string
	Expression string
	program    cel.Program
}

// NewEvaluator compiles a comparer expression. The expression sees two records, mapX and mapY,
// and must yield an int: negative when mapX sorts first, zero when equal, positive otherwise.
func NewEvaluator(name string, expression string) (*Evaluator, error) {
	if name == "" {
		return nil, fmt.Errorf("name can't be empty string")
	}
	if expression == "" {
		return nil, fmt.Errorf("expression can't be empty string")
	}

	env, err := cel.NewEnv(
		cel.Variable("mapX", cel.MapType(cel.StringType, cel.AnyType)),
		cel.Variable("mapY", cel.MapType(cel.StringType, cel.AnyType)),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}
	p, err := compile(env, expression)
	if err != nil {
		return nil, err
	}
	return &Evaluator{
		Name:       name,
		Expression: expression,
		program:    p,
	}, nil
}

// Evaluate runs the expression against mapX and mapY.
func (e *Evaluator) Evaluate(mapX map[string]any, mapY map[string]any) (int, error) {
	out, _, err := e.program.Eval(map[string]any{
		"mapX": mapX,
		"mapY": mapY,
	})
	if err != nil {
		return 0, fmt.Errorf("error evaluating CEL expression: %w", err)
	}
	nv, err := out.ConvertToNative(reflect.TypeOf(int(0)))
	if err != nil {
		return 0, fmt.Errorf("error ConvertToNative, got err: %w", err)
	}
	v, ok := nv.(int)
	if !ok {
		return 0, fmt.Errorf("error converting to int, nv: %v", nv)
	}
	return v, nil
}

// Compare is Evaluate shaped as a list comparer. A record the expression can't evaluate
// compares equal, so merges and sorts keep it in input order; the failure is logged at Warn.
func (e *Evaluator) Compare(mapX, mapY map[string]any) int {
	r, err := e.Evaluate(mapX, mapY)
	if err != nil {
		slog.Warn("comparer expression failed, treating records as equal", "name", e.Name, "error", err)
		return 0
	}
	return r
}

// Predicate is a compiled boolean expression over a single record named item.
type Predicate struct {
	Name       string
	Expression string
	program    cel.Program
}

// NewPredicate compiles a boolean expression that sees one record as item, e.g. "item['age'] >= 18".
func NewPredicate(name string, expression string) (*Predicate, error) {
	if name == "" {
		return nil, fmt.Errorf("name can't be empty string")
	}
	if expression == "" {
		return nil, fmt.Errorf("expression can't be empty string")
	}

	env, err := cel.NewEnv(
		cel.Variable("item", cel.MapType(cel.StringType, cel.AnyType)),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating CEL environment: %w", err)
	}
	p, err := compile(env, expression)
	if err != nil {
		return nil, err
	}
	return &Predicate{
		Name:       name,
		Expression: expression,
		program:    p,
	}, nil
}

// Evaluate runs the expression against item.
func (p *Predicate) Evaluate(item map[string]any) (bool, error) {
	out, _, err := p.program.Eval(map[string]any{
		"item": item,
	})
	if err != nil {
		return false, fmt.Errorf("error evaluating CEL expression: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("expression did not yield a bool, got %v", out.Value())
	}
	return b, nil
}

// Match is Evaluate shaped as a list predicate. Evaluation errors are logged at Warn and count as no match.
func (p *Predicate) Match(item map[string]any) bool {
	b, err := p.Evaluate(item)
	if err != nil {
		slog.Warn("predicate expression failed, treating record as no match", "name", p.Name, "error", err)
		return false
	}
	return b
}

func compile(env *cel.Env, expression string) (cel.Program, error) {
	ast, issues := env.Compile(expression)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("error compiling CEL expression: %w", issues.Err())
	}
	p, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("error creating Program: %w", err)
	}
	return p, nil
}
