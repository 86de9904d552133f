package main

import "github.com/dbsmedya/credaudit/cmd/credaudit/cmd"

func main() {
	cmd.Execute()
}
