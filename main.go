package main

import "github.com/nholzer/samplecheck/cmd"

func main() {
	cmd.Execute()
}
