package main

import "github.com/chrisdamba/foodcatalog/cmd"

func main() {
	cmd.Execute()
}
