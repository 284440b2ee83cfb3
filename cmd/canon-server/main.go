// canon-server exposes document comparison over JSON-RPC 2.0 on
// stdin/stdout, so editors and build tooling can ask for semantic
// equivalence without shelling out per call.
package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"go.lsp.dev/jsonrpc2"
)

const serverName = "canon-server"

var version = "0.1.0"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Prefix:          serverName,
	})

	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := &Server{logger: logger}
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	conn.Go(ctx, server.handle)
	logger.Info("listening on stdio", "version", version)
	<-conn.Done()
	if err := conn.Err(); err != nil && err != io.EOF {
		logger.Error("connection closed", "err", err)
		os.Exit(1)
	}
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
