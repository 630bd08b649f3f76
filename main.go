package main

import "github.com/jsphweid/chordsmith/cmd"

func main() {
	cmd.Execute()
}
