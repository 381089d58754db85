/*
combi is a console utility for grammar descriptions.
Usage is

	combi [--log-level <level>] [--log-format <format>] <command> ...

Commands are

	tokens <file>                      prints tokens of grammar description;
	parse [-f yaml|json] <file>        prints parsed rule definitions;
	check [-r <root>] <file>           compiles grammar and prints normalized rules;
	match [-r <root>] [-f yaml|json|tree] <grammar> <input>
	                                   matches input against grammar and prints syntax tree.

Skipped characters and compile messages are logged to stderr.
*/
package main

import (
	"os"
)

func main() {
	if e := rootCommand.Execute(); e != nil {
		os.Exit(2)
	}
}
