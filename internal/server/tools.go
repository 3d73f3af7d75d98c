package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func idProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Bundle id returned by bundle_create or bundle_copy",
	}
}

// sizeProperties are shared by tools that resolve a bitmap.
func sizeProperties() map[string]interface{} {
	return map[string]interface{}{
		"id": idProperty(),
		"width": map[string]interface{}{
			"type":        "integer",
			"description": "Requested width in pixels",
		},
		"height": map[string]interface{}{
			"type":        "integer",
			"description": "Requested height in pixels",
		},
		"scale": map[string]interface{}{
			"type":        "number",
			"description": "Scale relative to the bundle's default size (e.g. 1.5 for 150%). Overrides width and height",
		},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	getBitmapProps := sizeProperties()
	getBitmapProps["omit_image"] = map[string]interface{}{
		"type":        "boolean",
		"description": "Return only resolution details, without the encoded PNG",
		"default":     false,
	}

	sampleProps := sizeProperties()
	sampleProps["points"] = map[string]interface{}{
		"type": "array",
		"items": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"x":     map[string]interface{}{"type": "integer"},
				"y":     map[string]interface{}{"type": "integer"},
				"label": map[string]interface{}{"type": "string", "description": "Optional label for this point"},
			},
			"required": []string{"x", "y"},
		},
		"description": "Pixels of the resolved bitmap to sample",
	}

	return []Tool{
		// Bundle lifecycle
		{
			Name:        "bundle_create",
			Description: "Create a bitmap bundle from image files holding the same graphic at different sizes. Fails if any file cannot be loaded; no partial bundle is created.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"paths": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "string"},
						"description": "Absolute paths to the variant images, in preference order for ties",
					},
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Optional label for the bundle",
					},
					"reload": map[string]interface{}{
						"type":        "boolean",
						"description": "Re-read files even if they were loaded before",
						"default":     false,
					},
				},
				"required": []string{"paths"},
			},
		},
		{
			Name:        "bundle_copy",
			Description: "Create a new handle sharing the same bundle, including its cache of rescaled bitmaps.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
					"name": map[string]interface{}{
						"type":        "string",
						"description": "Optional label for the new handle",
					},
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "bundle_release",
			Description: "Release a bundle handle. Other handles sharing the bundle keep working.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "bundle_list",
			Description: "List all bundle handles.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
		{
			Name:        "bundle_info",
			Description: "Describe a bundle: default size, variant sizes, cached sizes and cache statistics.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},

		// Resolution
		{
			Name:        "bundle_get_bitmap",
			Description: "Get the bundle's bitmap at a size, rescaling the closest variant if needed. Rescaled bitmaps are cached for the bundle's lifetime. Returns base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": getBitmapProps,
				"required":   []string{"id"},
			},
		},
		{
			Name:        "bundle_sample_color",
			Description: "Sample pixel colors of the bundle's bitmap at a size.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sampleProps,
				"required":   []string{"id", "points"},
			},
		},
		{
			Name:        "bundle_compare",
			Description: "Compare the bundle's bitmap at a size with every variant rescaled to that size, to check that all variants show the same graphic.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": sizeProperties(),
				"required":   []string{"id"},
			},
		},

		// Configuration
		{
			Name:        "bundle_filters",
			Description: "List the available resample filters and the one in use.",
			InputSchema: map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
