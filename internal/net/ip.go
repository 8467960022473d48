package net

import (
	"log"
	"net"
)

// OutgoingIP finds the local address other machines should use to reach
// this host's session.
func OutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// No route out; fall back to scanning local interfaces.
		return localIPFallback()
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}

func localIPFallback() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}
	for _, address := range addrs {
		if ipnet, ok := address.(*net.IPNet); ok && !ipnet.IP.IsLoopback() && ipnet.IP.To4() != nil {
			return ipnet.IP.String(), nil
		}
	}
	log.Println("[NET] No suitable local IP found, share link may be wrong")
	return "127.0.0.1", nil
}
