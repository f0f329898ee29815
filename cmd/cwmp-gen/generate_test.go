package main

import (
	"go/format"
	"strings"
	"testing"

	"github.com/cwmp-models/cwmp-go/pkg/specparse"
)

const voiceDef = `
name: "VoiceService:2.0"
spec: "urn:broadband-forum-org:tr-104-2-0-1"
package: tr104
objects:
  - name: "VoiceService.{i}."
    access: readOnly
    uniqueKeys: [[Alias]]
    description: Voice service object.
    parameters:
      - { name: Alias, type: Alias, access: readWrite, maxLength: 64 }
  - name: "VoiceService.{i}.CallControl."
  - name: "VoiceService.{i}.CallControl.Extension.{i}."
    access: readWrite
    maxEntries: 16
    numEntriesParameter: ExtensionNumberOfEntries
    uniqueKeys: [[Alias], [Name]]
    parameters:
      - { name: Alias, type: Alias, access: readWrite, maxLength: 64 }
      - { name: Enable, type: boolean, access: readWrite, default: false }
      - { name: Name, type: string, access: readWrite, maxLength: 64 }
      - name: Status
        type: string
        enumeration: [Up, Error, Disabled]
        default: "Disabled"
      - { name: ExtensionNumber, type: string, access: readWrite, minLength: 1, maxLength: 32 }
      - { name: Password, type: hexBinary, access: readWrite, hidden: true }
      - { name: CallWaitingTimeout, type: unsignedInt, access: readWrite, min: 0, max: 600, default: 30, units: seconds }
      - { name: Codecs, type: string, list: true, access: readWrite }
  - name: "VoiceService.{i}.CallControl.Extension.{i}.Stats."
    type: ExtensionStats
    parameters:
      - { name: LastReset, type: dateTime, default: "0001-01-01T00:00:00Z" }
      - { name: BytesSent, type: StatsCounter64 }
`

func loadVoiceDef(t *testing.T) *specparse.RawModelDef {
	t.Helper()
	def, err := specparse.ParseModelDef([]byte(voiceDef))
	if err != nil {
		t.Fatalf("ParseModelDef failed: %v", err)
	}
	return def
}

func generateVoice(t *testing.T) string {
	t.Helper()
	output, err := GenerateModel(loadVoiceDef(t), "")
	if err != nil {
		t.Fatalf("GenerateModel failed: %v", err)
	}
	return output
}

func TestGenerateHeader(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "// Code generated by cwmp-gen. DO NOT EDIT.")
	mustContain(t, output, "// Source: VoiceService:2.0 (urn:broadband-forum-org:tr-104-2-0-1)")
	mustContain(t, output, "package tr104")
	mustContain(t, output, `"encoding/xml"`)
	mustContain(t, output, `"github.com/cwmp-models/cwmp-go/pkg/model"`)
	mustContain(t, output, `"github.com/cwmp-models/cwmp-go/pkg/types"`)
}

func TestGeneratePackageOverride(t *testing.T) {
	output, err := GenerateModel(loadVoiceDef(t), "voice")
	if err != nil {
		t.Fatalf("GenerateModel failed: %v", err)
	}
	mustContain(t, output, "package voice")
	mustNotContain(t, output, "package tr104")
}

func TestGenerateStructs(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "// VoiceService represents the VoiceService.{i}. object.")
	mustContain(t, output, "// Voice service object.")
	mustContain(t, output, "type VoiceService struct {")
	mustContain(t, output, "XMLName xml.Name `xml:\"VoiceService\" cbor:\"-\"`")
	mustContain(t, output, "CallControl *CallControl `xml:\"CallControl,omitempty\" cbor:\"CallControl,omitempty\"`")

	// Only roots carry the document element name
	mustNotContain(t, output, "XMLName xml.Name `xml:\"Extension\"")

	mustContain(t, output, "type Extension struct {")
	mustContain(t, output, "Extension []*Extension `xml:\"Extension\" cbor:\"Extension,omitempty\" validate:\"max=16,dive\"`")
	mustContain(t, output, "Stats *ExtensionStats `xml:\"Stats,omitempty\" cbor:\"Stats,omitempty\"`")
}

func TestGenerateFieldTypes(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "Enable bool `xml:\"Enable\" cbor:\"Enable\"`")
	mustContain(t, output, "Password types.HexBinary `xml:\"Password\" cbor:\"Password\"`")
	mustContain(t, output, "Codecs types.StringList `xml:\"Codecs\" cbor:\"Codecs\"`")
	mustContain(t, output, "LastReset types.DateTime `xml:\"LastReset\" cbor:\"LastReset\"`")
	mustContain(t, output, "BytesSent uint64 `xml:\"BytesSent\" cbor:\"BytesSent\"`")
}

func TestGenerateValidateTags(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "Alias string `xml:\"Alias\" cbor:\"Alias\" validate:\"max=64\"`")
	mustContain(t, output, "validate:\"omitempty,oneof=Up Error Disabled\"")
	mustContain(t, output, "validate:\"omitempty,min=1,max=32\"")
	mustContain(t, output, "CallWaitingTimeout uint32 `xml:\"CallWaitingTimeout\" cbor:\"CallWaitingTimeout\" validate:\"min=0,max=600\"`")
}

func TestGenerateConstructor(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "func NewExtension() *Extension {")
	mustContain(t, output, "Enable: false,")
	mustContain(t, output, `Status: "Disabled",`)
	mustContain(t, output, "CallWaitingTimeout: 30,")
	mustContain(t, output, `LastReset: types.MustParseDateTime("0001-01-01T00:00:00Z"),`)

	// No defaults: empty literal
	mustContain(t, output, "return &CallControl{}")
}

func TestGenerateWithers(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "func (e *Extension) WithEnable(value bool) *Extension {")
	mustContain(t, output, "e.Enable = value")
	mustContain(t, output, "func (e *Extension) WithStats(value *ExtensionStats) *Extension {")
	mustContain(t, output, "func (c *CallControl) WithExtension(entries ...*Extension) *CallControl {")
	mustContain(t, output, "c.Extension = append(c.Extension, entries...)")
	mustContain(t, output, "return c")
}

func TestGenerateMetadata(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "func (*Extension) CWMPObject() *model.ObjectMetadata {")
	mustContain(t, output, "return metaExtension")
	mustContain(t, output, "var metaExtension = &model.ObjectMetadata{")
	mustContain(t, output, `Name: "VoiceService.{i}.CallControl.Extension.{i}.",`)
	mustContain(t, output, "Access: model.AccessReadWrite,")
	mustContain(t, output, "MaxEntries: 16,")
	mustContain(t, output, `UniqueKeys: [][]string{{"Alias"}, {"Name"}},`)

	mustContain(t, output, `{Name: "Enable", Field: "Enable", Type: model.TypeBoolean, Access: model.AccessReadWrite, Default: "false"},`)
	mustContain(t, output, `{Name: "Password", Field: "Password", Type: model.TypeHexBinary, Access: model.AccessReadWrite, Hidden: true},`)
	mustContain(t, output, `Type: model.TypeUnsignedInt, Access: model.AccessReadWrite, MinValue: model.Int64(0), MaxValue: model.Int64(600), Default: "30", Units: "seconds"}`)
	mustContain(t, output, `Enumeration: []string{"Up", "Error", "Disabled"}, Default: "Disabled"}`)
	mustContain(t, output, `{Name: "Codecs", Field: "Codecs", Type: model.TypeString, Access: model.AccessReadWrite, List: true},`)

	mustContain(t, output, `{Name: "Extension", Field: "Extension", Path: "VoiceService.{i}.CallControl.Extension.{i}.", Multi: true, NumEntriesParameter: "ExtensionNumberOfEntries"},`)
	mustContain(t, output, `{Name: "Stats", Field: "Stats", Path: "VoiceService.{i}.CallControl.Extension.{i}.Stats."},`)
}

func TestGenerateRegistration(t *testing.T) {
	output := generateVoice(t)

	mustContain(t, output, "func init() {")
	mustContain(t, output, "model.Register(metaVoiceService, func() model.Object { return NewVoiceService() })")
	mustContain(t, output, "model.Register(metaExtensionStats, func() model.Object { return NewExtensionStats() })")

	// Registration order follows the definition
	vs := strings.Index(output, "model.Register(metaVoiceService")
	st := strings.Index(output, "model.Register(metaExtensionStats")
	if vs < 0 || st < 0 || vs > st {
		t.Errorf("registrations out of order: VoiceService at %d, ExtensionStats at %d", vs, st)
	}
}

func TestGenerateIsValidGo(t *testing.T) {
	output := generateVoice(t)

	if _, err := format.Source([]byte(output)); err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, truncate(output, 3000))
	}
}

func TestGenerateNoTypesImport(t *testing.T) {
	def, err := specparse.ParseModelDef([]byte(`
name: "Device:2.16"
package: tr181
objects:
  - name: "Device."
    parameters:
      - { name: RootDataModelVersion, type: string, maxLength: 32 }
`))
	if err != nil {
		t.Fatalf("ParseModelDef failed: %v", err)
	}
	output, err := GenerateModel(def, "")
	if err != nil {
		t.Fatalf("GenerateModel failed: %v", err)
	}
	mustNotContain(t, output, "pkg/types")
	mustContain(t, output, "XMLName xml.Name `xml:\"Device\" cbor:\"-\"`")
}

func TestGenerateInvalidDefault(t *testing.T) {
	def, err := specparse.ParseModelDef([]byte(`
name: "Device:2.16"
package: tr181
objects:
  - name: "Device."
    parameters:
      - { name: Count, type: unsignedInt, default: -1 }
`))
	if err != nil {
		t.Fatalf("ParseModelDef failed: %v", err)
	}
	if _, err := GenerateModel(def, ""); err == nil {
		t.Fatal("expected error for negative unsigned default")
	}
}

func TestGenerateMissingPackage(t *testing.T) {
	def, err := specparse.ParseModelDef([]byte(`
name: "Device:2.16"
objects:
  - name: "Device."
`))
	if err != nil {
		t.Fatalf("ParseModelDef failed: %v", err)
	}
	if _, err := GenerateModel(def, ""); err == nil {
		t.Fatal("expected error without package name")
	}
}

func TestValidateTagEnumerationWithSpaces(t *testing.T) {
	p := &specparse.RawParameterDef{
		Name:        "Mode",
		Type:        "string",
		Enumeration: []string{"Auto Detect", "Manual"},
	}
	if got := validateTag(p, "string"); got != "" {
		t.Errorf("validateTag = %q, want no rule for unsafe enumeration", got)
	}
}

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput (first 3000 chars):\n%s", substr, truncate(output, 3000))
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
