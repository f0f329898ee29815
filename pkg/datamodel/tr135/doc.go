// Package tr135 holds the STBService:1 object model of TR-135.
package tr135

//go:generate go run ../../../cmd/cwmp-gen -model ../../../specs/tr135/stb_service.yaml -output .
