package main

import "github.com/jennyflying-25/cisco-checker-app/internal/cli"

func main() {
	cli.Execute()
}
