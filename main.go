package main

import "github.com/partviz/partviz/cmd"

func main() {
	cmd.Execute()
}
