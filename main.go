package main

import "github.com/example/ellinika/cmd"

func main() {
	cmd.Execute()
}
