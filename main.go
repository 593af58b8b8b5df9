package main

import "github.com/truemediaorg/videolink/cmd"

func main() {
	cmd.Execute()
}
