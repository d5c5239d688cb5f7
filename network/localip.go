package network

import (
	"net"
	"strings"
)

var localIP string

/*
 * Fetch the local IP address of the machine, so a monitor can tell where
 * to point a publisher. The first result is cached.
 */
func LocalIP() (string, error) {
	if localIP == "" {
		conn, err := net.DialTCP("tcp4", nil, &net.TCPAddr{IP: []byte{8, 8, 8, 8}, Port: 53})
		if err != nil {
			return "", err
		}
		defer conn.Close()
		localIP = strings.Split(conn.LocalAddr().String(), ":")[0]
	}
	return localIP, nil
}
