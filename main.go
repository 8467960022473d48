package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	lan "SplineBoard/internal/net"
	"SplineBoard/internal/state"
	"SplineBoard/internal/ui"
)

const (
	customURLScheme = "splineboard://"
	port            = 8891
)

func main() {
	if len(os.Args) > 1 && strings.HasPrefix(os.Args[1], customURLScheme) {
		runViewer(os.Args[1])
	} else {
		runHost()
	}
}

func runHost() {
	log.Println("Starting as HOST")
	doc := state.NewDocument()
	hub := lan.NewHub()

	// Local edits fan out to every connected viewer.
	doc.OnOp = func(op state.Op) {
		hub.Broadcast(lan.Message{Type: "op", Op: &op}, nil)
	}

	go func() {
		if err := hub.Serve(port, doc); err != nil {
			log.Printf("[MAIN] Session server stopped: %v", err)
		}
	}()

	if server, err := lan.Advertise(port); err != nil {
		log.Printf("[MAIN] mDNS advertise failed: %v", err)
	} else {
		defer server.Shutdown()
	}

	shareLink := ""
	if ip, err := lan.OutgoingIP(); err == nil {
		shareLink = fmt.Sprintf("%s%s:%d", customURLScheme, ip, port)
	}
	ui.RunApp(shareLink, doc)
}

func runViewer(link string) {
	log.Println("Starting as VIEWER")
	doc := state.NewDocument()

	addr := strings.TrimSuffix(strings.TrimPrefix(link, customURLScheme), "/")
	if addr == "" {
		// Bare scheme: look for a session on the local network.
		found, err := discover()
		if err != nil {
			log.Fatalf("No session to join: %v", err)
		}
		addr = found
	}

	go func() {
		if err := lan.Join(addr, doc, func(s string) { log.Printf("[MAIN] %s", s) }); err != nil {
			log.Printf("[MAIN] Session ended: %v", err)
		}
	}()
	ui.RunApp("", doc)
}

// discover returns the first session advertised over mDNS.
func discover() (string, error) {
	found := make(chan string, 1)
	if err := lan.Browse(func(addr string) {
		select {
		case found <- addr:
		default:
		}
	}); err != nil {
		return "", err
	}
	select {
	case addr := <-found:
		return addr, nil
	default:
		return "", fmt.Errorf("no session advertised on the local network")
	}
}
