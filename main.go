package main

import "github.com/mouse-blink/errfold/cmd"

func main() {
	cmd.Execute()
}
