/*
File    : ziget/cmd/serve.go
Package : cmd
*/
package cmd

import (
	"io"
	"net"
	"os"

	"github.com/Zeph16/ziget/diag"
)

// Serve opens a TCP listener on port: each connection sends one complete
// .zg source payload terminated by EOF and receives back the compiler's
// diagnostic transcript. Every connection runs its own fully isolated
// compilation in its own goroutine — no state crosses connections, which
// keeps the per-compilation sequential guarantee spec.md §5 requires even
// though many compilations can be in flight across different clients.
func Serve(port string, r *diag.Reporter) int {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		r.Error("failed to start server on port %s: %v", port, err)
		return 1
	}
	defer listener.Close()
	r.Info("ziget compile server listening on :%s", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			r.Error("failed to accept connection: %v", err)
			continue
		}
		go handleConnection(conn)
	}
}

// handleConnection reads one source payload from conn, compiles it into
// a temporary .zg file, and writes the diagnostic transcript back.
func handleConnection(conn net.Conn) {
	defer conn.Close()

	source, err := io.ReadAll(conn)
	if err != nil {
		return
	}

	tmp, err := os.CreateTemp("", "ziget-serve-*.zg")
	if err != nil {
		return
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()
	if _, err := tmp.Write(source); err != nil {
		return
	}
	tmp.Close()

	connReporter := diag.New(conn)
	opts, err := ParseArgs([]string{tmp.Name()})
	if err != nil {
		connReporter.Error("invalid arguments: %v", err)
		return
	}
	exitCode := Run(opts, connReporter)
	connReporter.Info("exit status: %d", exitCode)
}
