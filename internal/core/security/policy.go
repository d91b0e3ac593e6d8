// Package security implements role-based access control.
// The whole authorization model is one rule expression evaluated by CEL,
// so the matrix can be tuned per deployment without recompiling.
package security

import (
	"fmt"

	"github.com/google/cel-go/cel"
)

// Request describes a single access check.
type Request struct {
	Role     string // admin, secretary, employee
	Resource string // client, employee, inventory, reference, event, purchase, transaction, time_record, report, agenda, user, settings, audit
	Action   string // read, write, delete
	Own      bool   // true when the record belongs to the requesting user
}

// DefaultRules is the built-in access matrix:
//   - admin: everything
//   - secretary: all business data, but no user administration or audit trail
//   - employee: read events and the agenda, manage own time records
const DefaultRules = `
	role == 'admin'
	|| (role == 'secretary' && !(resource in ['user', 'audit']))
	|| (role == 'employee' && (
		(resource in ['event', 'agenda'] && action == 'read')
		|| (resource == 'time_record' && own)
	))
`

// Policy is a compiled access rule set. Safe for concurrent use.
type Policy struct {
	program cel.Program
}

// NewPolicy compiles a CEL rule expression into a Policy.
// The expression sees four variables: role, resource, action (strings) and
// own (bool), and must evaluate to a bool.
func NewPolicy(rules string) (*Policy, error) {
	env, err := cel.NewEnv(
		cel.Variable("role", cel.StringType),
		cel.Variable("resource", cel.StringType),
		cel.Variable("action", cel.StringType),
		cel.Variable("own", cel.BoolType),
	)
	if err != nil {
		return nil, fmt.Errorf("create policy env: %w", err)
	}

	ast, issues := env.Compile(rules)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compile policy rules: %w", issues.Err())
	}
	if ast.OutputType() != cel.BoolType {
		return nil, fmt.Errorf("policy rules must evaluate to bool, got %v", ast.OutputType())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("build policy program: %w", err)
	}

	return &Policy{program: program}, nil
}

// MustPolicy compiles rules or panics. Use for the built-in rule set.
func MustPolicy(rules string) *Policy {
	p, err := NewPolicy(rules)
	if err != nil {
		panic(err)
	}
	return p
}

// Check evaluates the full request, including ownership.
// Evaluation errors deny access.
func (p *Policy) Check(req Request) bool {
	out, _, err := p.program.Eval(map[string]any{
		"role":     req.Role,
		"resource": req.Resource,
		"action":   req.Action,
		"own":      req.Own,
	})
	if err != nil {
		return false
	}
	allowed, ok := out.Value().(bool)
	return ok && allowed
}

// CanAccess reports whether role may perform action on resource.
// Ownership-gated resources should use Check with Own set.
func (p *Policy) CanAccess(role, resource, action string) bool {
	return p.Check(Request{Role: role, Resource: resource, Action: action})
}
