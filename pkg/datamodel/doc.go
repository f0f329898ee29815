// Package datamodel is the parent of the generated Broadband Forum object
// models. Each subpackage is generated by cwmp-gen from a definition under
// specs/ and registers its objects with the model registry on import.
//
// Regenerate all models with:
//
//	go run ./cmd/cwmp-gen -manifest specs/manifest.yaml
package datamodel
