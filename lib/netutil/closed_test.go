// Copyright 2026 The Nickview Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"testing"
)

func TestIsUnreachable(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain error", errors.New("status 500"), false},
		{"eof", io.EOF, true},
		{"wrapped unexpected eof", fmt.Errorf("get: %w", io.ErrUnexpectedEOF), true},
		{"closed", net.ErrClosed, true},
		{"refused", &net.OpError{Op: "read", Err: syscall.ECONNREFUSED}, true},
		{"reset", fmt.Errorf("x: %w", syscall.ECONNRESET), true},
		{"dial", &net.OpError{Op: "dial", Err: errors.New("no such host")}, true},
		{"server closed", http.ErrServerClosed, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsUnreachable(test.err); got != test.want {
				t.Errorf("IsUnreachable(%v) = %v, want %v", test.err, got, test.want)
			}
		})
	}
}

func TestIsUnreachableRealDial(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	address := listener.Addr().String()
	listener.Close()

	_, err = http.Get("http://" + address + "/")
	if err == nil {
		t.Skip("something is listening on the released port")
	}
	if !IsUnreachable(err) {
		t.Errorf("IsUnreachable(%v) = false for refused connection", err)
	}
}
