// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command logicsim runs demonstration circuits.
//
package main

import "github.com/db47h/logicsim/cmd/logicsim/cmd"

func main() {
	cmd.Execute()
}
