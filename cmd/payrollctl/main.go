// payrollctl is a command-line driver for the payroll comparison engine.
// It reads work entries from a JSON file, runs both rule engines, and
// prints the comparison without needing the HTTP server.
package main

func main() {
	Execute()
}
