/*
File    : ziget/main.go
Package : main
*/
package main

import (
	"fmt"
	"os"

	"github.com/Zeph16/ziget/cmd"
	"github.com/Zeph16/ziget/diag"
)

func main() {
	r := diag.New(os.Stderr)

	if len(os.Args) > 1 && os.Args[1] == "serve" {
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "usage: ziget serve <port>")
			os.Exit(1)
		}
		os.Exit(cmd.Serve(os.Args[2], r))
	}

	opts, err := cmd.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	os.Exit(cmd.Run(opts, r))
}
