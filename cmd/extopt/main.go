package main

import "github.com/goplus/extopt/cmd/extopt/internal"

func main() {
	internal.Execute()
}
