package main

import "github.com/SENAndrhevn23/FNF-Tools/cmd"

func main() {
	cmd.Execute()
}
