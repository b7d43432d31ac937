package main

import "github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/cli"

func main() {
	cli.Execute()
}
