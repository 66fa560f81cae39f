// Package api contains the request and response types generated from the
// OpenAPI contract in api/openapi.yaml.
package api

//go:generate go tool oapi-codegen -config oapi-codegen.yaml ../../api/openapi.yaml
