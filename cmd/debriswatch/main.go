package main

import "debris-risk-economics/internal/cli"

func main() {
	cli.Execute()
}
