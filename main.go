package main

import "github.com/notargets/gostrip/cmd"

func main() {
	cmd.Execute()
}
