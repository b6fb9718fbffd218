// Command graphql-editor formats, checks and interactively edits GraphQL
// schema files.
package main

import (
	"os"

	"github.com/graph-gophers/graphql-editor/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
