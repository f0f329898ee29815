// Package tr104 holds the VoiceService:2 object model of TR-104.
//
// The root object is VoiceService. Lines, extensions and numbering plans are
// tables under CallControl; each Line and Extension carries its own Stats.
package tr104

//go:generate go run ../../../cmd/cwmp-gen -model ../../../specs/tr104/voice_service.yaml -output .
