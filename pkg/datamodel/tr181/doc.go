// Package tr181 holds the Device:2 object model of TR-181.
//
// Only the objects needed for device identification, the ACS connection,
// Ethernet and IP interfaces, LAN hosts and software modules are included.
package tr181

//go:generate go run ../../../cmd/cwmp-gen -model ../../../specs/tr181/device.yaml -output .
