// SPDX-License-Identifier: GPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"os/user"

	"csslex/repl"
)

func main() {
	name := "there"
	if currentUser, err := user.Current(); err == nil {
		name = currentUser.Username
	}

	fmt.Printf("Welcome to the csslex REPL, %s!\n", name)
	fmt.Println("Type CSS and press enter to see its events.")
	repl.Start(os.Stdin, os.Stdout)
}
