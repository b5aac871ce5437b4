package sql

import (
	"fmt"
	"strings"
)

type (
	// QueryFunction calls a stored function that reads columns of a single row.
	QueryFunction struct {
		name      string
		cols      []string
		arguments []interface{}
	}

	// ExecFunction calls a stored function that changes exactly one row.
	ExecFunction struct {
		name      string
		arguments []interface{}
	}

	// RawQuery is a statement without arguments, such as a setup script.
	RawQuery string
)

var (
	_ Query = QueryFunction{}
	_ Query = ExecFunction{}
	_ Query = RawQuery("")
)

// NewQueryFunction creates a Query to call a query function.
func NewQueryFunction(name string, cols []string, args ...interface{}) QueryFunction {
	q := QueryFunction{
		name:      name,
		cols:      cols,
		arguments: args,
	}
	return q
}

// NewExecFunction creates a Query to call an exec function.
func NewExecFunction(name string, args ...interface{}) ExecFunction {
	e := ExecFunction{
		name:      name,
		arguments: args,
	}
	return e
}

// Cmd selects the columns from the function called with the arguments.
func (q QueryFunction) Cmd() string {
	return fmt.Sprintf("SELECT %s FROM %s(%s)", strings.Join(q.cols, ", "), q.name, placeholders(len(q.arguments)))
}

// Cmd calls the function with the arguments.
func (e ExecFunction) Cmd() string {
	return fmt.Sprintf("SELECT %s(%s)", e.name, placeholders(len(e.arguments)))
}

// Cmd is the statement.
func (r RawQuery) Cmd() string {
	return string(r)
}

// Args returns the arguments for the query function.
func (q QueryFunction) Args() []interface{} {
	return q.arguments
}

// Args returns the arguments for the exec function.
func (e ExecFunction) Args() []interface{} {
	return e.arguments
}

// Args is always nil.
func (RawQuery) Args() []interface{} {
	return nil
}

// placeholders is the list of positional parameters, such as "$1, $2, $3".
func placeholders(n int) string {
	p := make([]string, n)
	for i := range p {
		p[i] = fmt.Sprintf("$%d", i+1)
	}
	return strings.Join(p, ", ")
}
