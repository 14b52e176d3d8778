package main

import "github.com/funvibe/altlisp/pkg/cli"

func main() {
	cli.Run()
}
