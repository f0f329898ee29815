package main

import (
	"testing"

	"github.com/cwmp-models/cwmp-go/pkg/specparse"
	"gopkg.in/yaml.v3"
)

func TestDeriveParameterList(t *testing.T) {
	output := DeriveParameterList([]*specparse.RawModelDef{loadVoiceDef(t)})

	mustContain(t, output, `- name: "VoiceService:2.0"`)
	mustContain(t, output, `spec: "urn:broadband-forum-org:tr-104-2-0-1"`)
	mustContain(t, output, `- path: "VoiceService.{i}.CallControl.Extension.{i}."`)
	mustContain(t, output, "maxEntries: 16")
	mustContain(t, output, "{ name: Enable, type: boolean, access: readWrite }")
	mustContain(t, output, "{ name: Status, type: string, access: readOnly }")
	mustContain(t, output, "{ name: Codecs, type: list<string>, access: readWrite }")

	// NumberOfEntries counters are listed on the parent
	mustContain(t, output, "{ name: ExtensionNumberOfEntries, type: unsignedInt, access: readOnly }")
}

func TestDeriveParameterListIsYAML(t *testing.T) {
	output := DeriveParameterList([]*specparse.RawModelDef{loadVoiceDef(t)})

	var parsed struct {
		Models []struct {
			Name    string `yaml:"name"`
			Objects []struct {
				Path       string `yaml:"path"`
				Parameters []struct {
					Name   string `yaml:"name"`
					Type   string `yaml:"type"`
					Access string `yaml:"access"`
				} `yaml:"parameters"`
			} `yaml:"objects"`
		} `yaml:"models"`
	}
	if err := yaml.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("parameter list is not valid YAML: %v\n%s", err, output)
	}
	if len(parsed.Models) != 1 {
		t.Fatalf("got %d models, want 1", len(parsed.Models))
	}
	if got := len(parsed.Models[0].Objects); got != 4 {
		t.Errorf("got %d objects, want 4", got)
	}
	ext := parsed.Models[0].Objects[2]
	if ext.Path != "VoiceService.{i}.CallControl.Extension.{i}." {
		t.Errorf("object 2 = %q", ext.Path)
	}
	if len(ext.Parameters) != 8 {
		t.Errorf("Extension has %d parameters, want 8", len(ext.Parameters))
	}
}
