package net

import (
	"fmt"
	"os"

	"github.com/hashicorp/mdns"
)

const serviceType = "_splineboard._tcp"

// Advertise announces a hosted session on the local network so viewers
// can find it without typing an address. The caller shuts the returned
// server down on exit.
func Advertise(port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}

	service, err := mdns.NewMDNSService(
		host,
		serviceType,
		"", // domain, defaults to ".local"
		"", // hostname, defaults to the OS hostname
		port,
		nil, // auto-detect IPs
		[]string{"SplineBoard"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse reports every session discovered on the local network to found,
// as a host:port string. It returns once the lookup window closes.
func Browse(found func(addr string)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	go func() {
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			found(fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port))
		}
	}()
	return mdns.Lookup(serviceType, entries)
}
