/*
File    : ziget/cmd/serve_test.go
Package : cmd
*/
package cmd

import (
	"bufio"
	"io"
	"net"
	"testing"
	"time"

	"github.com/Zeph16/ziget/diag"
	"github.com/stretchr/testify/require"
)

// TestServe_AcceptsConnectionAndRespondsIndependently exercises one
// connection end to end: it should get back a diagnostic transcript
// without the server needing ZIGET_CLANG_PATH set, since the program
// fails before reaching the toolchain step (unset in the test env).
func TestServe_AcceptsConnectionAndRespondsIndependently(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		handleConnection(conn)
	}()

	conn, err := net.Dial("tcp", listener.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(`procedure main { print("hi") }`))
	require.NoError(t, err)
	require.NoError(t, conn.(*net.TCPConn).CloseWrite())

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	out, err := io.ReadAll(bufio.NewReader(conn))
	require.NoError(t, err)
	require.NotEmpty(t, out)
}

func TestServe_ReturnsOneOnListenFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()
	_, port, err := net.SplitHostPort(listener.Addr().String())
	require.NoError(t, err)

	var buf devNullWriter
	code := Serve(port, diag.New(&buf))
	require.Equal(t, 1, code)
}

type devNullWriter struct{}

func (devNullWriter) Write(p []byte) (int, error) { return len(p), nil }
