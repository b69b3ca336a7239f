package main

import "owlplanner/internal/cmd"

func main() {
	cmd.Execute()
}
