package sql

import (
	"reflect"
	"testing"
)

func TestQueryCmd(t *testing.T) {
	cmdTests := []struct {
		Query
		wantCmd  string
		wantArgs []interface{}
	}{
		{
			Query:   NewQueryFunction("layout_list", []string{"names"}),
			wantCmd: "SELECT names FROM layout_list()",
		},
		{
			Query:    NewQueryFunction("layout_read", []string{"name", "positions"}, "Easy"),
			wantCmd:  "SELECT name, positions FROM layout_read($1)",
			wantArgs: []interface{}{"Easy"},
		},
		{
			Query:    NewExecFunction("layout_create", "Easy", "[[0,0,0],[2,0,0]]"),
			wantCmd:  "SELECT layout_create($1, $2)",
			wantArgs: []interface{}{"Easy", "[[0,0,0],[2,0,0]]"},
		},
		{
			Query:   RawQuery("DROP TABLE layouts;"),
			wantCmd: "DROP TABLE layouts;",
		},
	}
	for i, test := range cmdTests {
		gotCmd := test.Query.Cmd()
		gotArgs := test.Query.Args()
		switch {
		case test.wantCmd != gotCmd:
			t.Errorf("Test %v: commands not equal: \n wanted: %q \n got:    %q", i, test.wantCmd, gotCmd)
		case len(test.wantArgs) != len(gotArgs):
			t.Errorf("Test %v: wanted %v args, got %v", i, len(test.wantArgs), len(gotArgs))
		case len(gotArgs) != 0 && !reflect.DeepEqual(test.wantArgs, gotArgs):
			t.Errorf("Test %v: args not equal: \n wanted: %v \n got:    %v", i, test.wantArgs, gotArgs)
		}
	}
}
