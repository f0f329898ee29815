package specparse

import (
	"strings"
	"unicode"
)

// GoName converts a data model name into an exported Go identifier.
// "X_ACME-COM_Feature" becomes "X_ACME_COM_Feature"; names are otherwise kept.
func GoName(name string) string {
	var result strings.Builder
	for i, r := range name {
		switch {
		case r == '-':
			result.WriteByte('_')
		case i == 0:
			result.WriteRune(unicode.ToUpper(r))
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// FileName converts a model name to a Go file base name:
// "Device:2.16" becomes "device", "VoiceService:2.0" becomes "voice_service",
// "STBService:1.4" becomes "stb_service".
func FileName(modelName string) string {
	name, _, _ := strings.Cut(modelName, ":")
	runes := []rune(name)

	var result strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				result.WriteByte('_')
			}
		}
		result.WriteRune(unicode.ToLower(r))
	}
	return result.String()
}

// ReceiverName returns the receiver name for a Go type: its first letter in
// lower case.
func ReceiverName(typeName string) string {
	if typeName == "" {
		return "o"
	}
	return strings.ToLower(typeName[:1])
}
