package main

import "github.com/gomines/gomines/cmd"

func main() {
	cmd.Execute()
}
