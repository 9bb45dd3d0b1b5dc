// Command goofx reads OFX statement files and prints what they contain.
package main

func main() {
	Execute()
}
