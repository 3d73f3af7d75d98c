// Package server implements the MCP (Model Context Protocol) server for
// bitmap bundles.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Bundle lifecycle:
//   - bundle_create: Build a bundle from variant image files
//   - bundle_copy: New handle sharing an existing bundle
//   - bundle_release: Drop a handle
//   - bundle_list: List handles
//   - bundle_info: Default size, variants and cache state
//
// Resolution:
//   - bundle_get_bitmap: Bitmap at a size or scale, as base64 PNG
//   - bundle_sample_color: Pixel colors of a resolved bitmap
//   - bundle_compare: Resolved bitmap against every rescaled variant
//
// Configuration:
//   - bundle_filters: Available resample filters
//
// # Bundle Registry
//
// Bundles are registered under ids of the form "bundle-N". bundle_copy
// registers a second id for the same bundle value, so both ids share one
// rescale cache. Releasing an id drops only that handle.
//
// Rescaled bitmaps are never evicted while a bundle is registered. Clients
// that request many distinct sizes from one bundle grow memory accordingly;
// release and recreate the bundle to start over.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
