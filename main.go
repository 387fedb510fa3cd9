package main

import "github.com/petscare/petscare_backend/cmd"

func main() {
	cmd.Execute()
}
