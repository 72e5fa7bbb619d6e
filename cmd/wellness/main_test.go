package main

import (
	"net"
	"net/http"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_ListenError(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close() // nolint:errcheck

	srv := &http.Server{Addr: l.Addr().String(), Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

	done := make(chan error, 1)
	go func() { done <- serve(srv, make(chan os.Signal)) }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to listen on")
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after listener failure")
	}
}

func TestServe_Signal(t *testing.T) {
	srv := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler(), ReadHeaderTimeout: time.Second}

	sigs := make(chan os.Signal, 1)
	sigs <- syscall.SIGTERM

	done := make(chan error, 1)
	go func() { done <- serve(srv, sigs) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after signal")
	}
}
