// Command formcheck validates form values against TOML form definitions.
package main

func main() {
	Execute()
}
