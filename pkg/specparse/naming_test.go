package specparse

import "testing"

func TestGoName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"DeviceInfo", "DeviceInfo"},
		{"IPv4Address", "IPv4Address"},
		{"X_ACME-COM_Feature", "X_ACME_COM_Feature"},
		{"lowercase", "Lowercase"},
	}
	for _, tt := range tests {
		got := GoName(tt.in)
		if got != tt.want {
			t.Errorf("GoName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFileName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Device:2.16", "device"},
		{"VoiceService:2.0", "voice_service"},
		{"STBService:1.4", "stb_service"},
		{"DeviceInfo", "device_info"},
		{"ManagementServer", "management_server"},
		{"IP", "ip"},
	}
	for _, tt := range tests {
		got := FileName(tt.in)
		if got != tt.want {
			t.Errorf("FileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestReceiverName(t *testing.T) {
	if got := ReceiverName("Interface"); got != "i" {
		t.Errorf("ReceiverName = %q, want i", got)
	}
	if got := ReceiverName(""); got != "o" {
		t.Errorf("ReceiverName(\"\") = %q, want o", got)
	}
}
