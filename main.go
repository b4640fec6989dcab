package main

import "github.com/jamesbehr/relink/cmd"

func main() {
	cmd.Execute()
}
