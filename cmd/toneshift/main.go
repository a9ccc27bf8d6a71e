// Command toneshift runs the tone transformation service and its
// maintenance commands.
//
// Commands:
//
//	serve      start the HTTP server
//	migrate    apply store migrations
//	transform  transform one piece of text from the terminal
//	tones      list the tone catalog
//	feed       print the community feed
//	version    print the build version
//
// Exit codes: 0 = success, 1 = error.
package main

func main() {
	Execute()
}
