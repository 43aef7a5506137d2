package main

import "github.com/MeKo-Tech/qrstyle/cmd/qrstyle/cmd"

func main() {
	cmd.Execute()
}
