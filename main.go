package main

import "pantry-planner/cmd"

func main() {
	cmd.Execute()
}
