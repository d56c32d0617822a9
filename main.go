package main

import "restaurant-web/commands"

func main() {
	commands.Execute()
}
