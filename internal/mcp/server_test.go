package mcp

import (
	"testing"
)

func TestSearchDocsSchemaConstraints(t *testing.T) {
	schema := searchDocsSchema(100)

	if len(schema.Required) != 1 || schema.Required[0] != "query" {
		t.Errorf("required = %v, want [query]", schema.Required)
	}

	query := schema.Properties["query"]
	if query == nil || query.MinLength == nil || *query.MinLength != 1 {
		t.Error("query should require minLength 1")
	}

	max := schema.Properties["maxResults"]
	if max == nil || max.Minimum == nil || max.Maximum == nil {
		t.Fatal("maxResults should carry bounds")
	}
	if *max.Minimum != 1 || *max.Maximum != 100 {
		t.Errorf("maxResults bounds = [%v, %v], want [1, 100]", *max.Minimum, *max.Maximum)
	}

	method := schema.Properties["method"]
	if method == nil || len(method.Enum) != 2 {
		t.Errorf("method should enumerate get and post, got %+v", method)
	}
}

func TestSearchDocsSchemaDefaultCap(t *testing.T) {
	schema := searchDocsSchema(0)

	max := schema.Properties["maxResults"]
	if max == nil || max.Maximum == nil || *max.Maximum != 100 {
		t.Error("an unset cap should fall back to 100")
	}
}

func TestGetDocsSchemaPattern(t *testing.T) {
	schema := getDocsSchema()

	route := schema.Properties["route"]
	if route == nil || route.Pattern != "^/" {
		t.Errorf("route pattern = %+v, want ^/", route)
	}
	if len(schema.Required) != 1 || schema.Required[0] != "route" {
		t.Errorf("required = %v, want [route]", schema.Required)
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	server := NewServer(nil, ServerConfig{Version: "0.1.0", MaxResults: 100})
	if server == nil {
		t.Fatal("NewServer returned nil")
	}
}
