package main

import "github.com/corvind/mangasrc/cmd"

func main() {
	cmd.Execute()
}
