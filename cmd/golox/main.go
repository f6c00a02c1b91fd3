// Command golox is the Language's interpreter and REPL.
package main

import "github.com/cwbudde/go-lox/cmd/golox/cmd"

func main() {
	cmd.Execute()
}
