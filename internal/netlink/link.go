// Package netlink maintains network connectivity toward the position API.
// It is the daemon-side analog of keeping a WiFi association alive: a cheap
// periodic reachability probe with a time-boxed reconnect window.
package netlink

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"time"
)

// Link reports and maintains connectivity toward the remote endpoint.
type Link interface {
	// EnsureConnected probes the endpoint and, on failure, keeps retrying
	// inside a bounded window. It returns nil once the endpoint is
	// reachable and a *ConnectivityError when the window is exhausted.
	// This is the only operation in the system allowed to block.
	EnsureConnected(ctx context.Context) error

	// Connected reports the result of the most recent probe.
	Connected() bool
}

// ConnectivityError reports that the endpoint stayed unreachable for the
// whole retry window. It is never fatal; the caller retries next interval.
type ConnectivityError struct {
	Window time.Duration
	Err    error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("endpoint unreachable after %s: %v", e.Window, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// Prober checks endpoint reachability once. A nil return means reachable.
type Prober func(ctx context.Context) error

// DialProber probes by opening and closing a TCP connection to the host of
// the given URL. Missing ports default per scheme (80/443).
func DialProber(rawURL string, timeout time.Duration) (Prober, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint url %q: %w", rawURL, err)
	}
	host := u.Host
	if u.Port() == "" {
		port := "80"
		if u.Scheme == "https" {
			port = "443"
		}
		host = net.JoinHostPort(u.Hostname(), port)
	}

	d := &net.Dialer{Timeout: timeout}
	return func(ctx context.Context) error {
		conn, err := d.DialContext(ctx, "tcp", host)
		if err != nil {
			return err
		}
		return conn.Close()
	}, nil
}
