package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/bitmap-bundle-mcp/internal/bundle"
	"github.com/ironsheep/bitmap-bundle-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bundle_create", "bundle_get_bitmap").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Bundle lifecycle
	case "bundle_create":
		return s.handleBundleCreate(args)
	case "bundle_copy":
		return s.handleBundleCopy(args)
	case "bundle_release":
		return s.handleBundleRelease(args)
	case "bundle_list":
		return s.handleBundleList(args)
	case "bundle_info":
		return s.handleBundleInfo(args)

	// Resolution
	case "bundle_get_bitmap":
		return s.handleBundleGetBitmap(args)
	case "bundle_sample_color":
		return s.handleBundleSampleColor(args)
	case "bundle_compare":
		return s.handleBundleCompare(args)

	// Configuration
	case "bundle_filters":
		return s.handleBundleFilters(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// BundleInfo describes a registered bundle handle.
type BundleInfo struct {
	ID          string            `json:"id"`
	Name        string            `json:"name,omitempty"`
	OK          bool              `json:"ok"`
	DefaultSize bundle.Size       `json:"default_size"`
	Variants    []bundle.Size     `json:"variants"`
	Paths       []string          `json:"paths,omitempty"`
	CachedSizes []bundle.Size     `json:"cached_sizes"`
	Cache       bundle.CacheStats `json:"cache"`
	SharedWith  []string          `json:"shared_with,omitempty"`
}

func (s *Server) describe(e *entry) *BundleInfo {
	info := &BundleInfo{
		ID:          e.id,
		Name:        e.name,
		OK:          e.bundle.IsOk(),
		Variants:    e.bundle.Variants(),
		Paths:       e.paths,
		CachedSizes: e.bundle.CachedSizes(),
		Cache:       e.bundle.CacheStats(),
		SharedWith:  s.sharing(e),
	}
	if size, err := e.bundle.DefaultSize(); err == nil {
		info.DefaultSize = size
	}
	return info
}

// === Bundle Lifecycle Handlers ===

type bundleCreateArgs struct {
	Paths  []string `json:"paths"`
	Name   string   `json:"name"`
	Reload bool     `json:"reload"`
}

func (s *Server) handleBundleCreate(args json.RawMessage) (interface{}, error) {
	var a bundleCreateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Paths) == 0 {
		return nil, fmt.Errorf("paths must not be empty")
	}

	if a.Reload {
		for _, p := range a.Paths {
			s.cache.Evict(p)
		}
	}
	imgs, err := s.cache.LoadAll(a.Paths)
	if err != nil {
		return nil, err
	}

	var b bundle.Bundle
	if len(imgs) == 1 {
		b = bundle.FromImage(imgs[0], bundle.WithImage(s.image))
	} else {
		b, err = bundle.FromBitmapsChecked(imgs, bundle.WithImage(s.image))
		var rerr *bundle.RasterError
		if errors.As(err, &rerr) && rerr.Index < len(a.Paths) {
			return nil, fmt.Errorf("%w (%s)", err, a.Paths[rerr.Index])
		}
		if err != nil {
			return nil, err
		}
	}
	if !b.IsOk() {
		return nil, fmt.Errorf("%w: no usable bitmaps in %v", bundle.ErrInvalidBundle, a.Paths)
	}

	e, err := s.register(a.Name, a.Paths, b)
	if err != nil {
		return nil, err
	}
	s.debugf("created %s from %d variants %v", e.id, len(imgs), b.Variants())
	return s.describe(e), nil
}

type bundleIDArgs struct {
	ID string `json:"id"`
}

type bundleCopyArgs struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (s *Server) handleBundleCopy(args json.RawMessage) (interface{}, error) {
	var a bundleCopyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	src, err := s.lookup(a.ID)
	if err != nil {
		return nil, err
	}

	name := a.Name
	if name == "" {
		name = src.name
	}
	e, err := s.register(name, src.paths, src.bundle)
	if err != nil {
		return nil, err
	}
	s.debugf("copied %s to %s", src.id, e.id)
	return s.describe(e), nil
}

// ReleaseResult reports the outcome of bundle_release.
type ReleaseResult struct {
	ID       string `json:"id"`
	Released bool   `json:"released"`

	// SharedHandles counts remaining handles still using the same bundle.
	SharedHandles int `json:"shared_handles"`
}

func (s *Server) handleBundleRelease(args json.RawMessage) (interface{}, error) {
	var a bundleIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	shared, err := s.release(a.ID)
	if err != nil {
		return nil, err
	}
	return &ReleaseResult{ID: a.ID, Released: true, SharedHandles: shared}, nil
}

// BundleListResult lists registered handles.
type BundleListResult struct {
	Bundles []*BundleInfo `json:"bundles"`
}

func (s *Server) handleBundleList(args json.RawMessage) (interface{}, error) {
	list := s.entries()
	result := &BundleListResult{Bundles: make([]*BundleInfo, 0, len(list))}
	for _, e := range list {
		result.Bundles = append(result.Bundles, s.describe(e))
	}
	return result, nil
}

func (s *Server) handleBundleInfo(args json.RawMessage) (interface{}, error) {
	var a bundleIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, err := s.lookup(a.ID)
	if err != nil {
		return nil, err
	}
	return s.describe(e), nil
}

// === Resolution Handlers ===

// bitmapArgs selects a bitmap either by explicit size or by scale relative
// to the bundle's default size. Scale wins when set.
type bitmapArgs struct {
	ID     string  `json:"id"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Scale  float64 `json:"scale"`
}

func (s *Server) resolve(a bitmapArgs) (*entry, bundle.Resolution, error) {
	e, err := s.lookup(a.ID)
	if err != nil {
		return nil, bundle.Resolution{}, err
	}

	target := bundle.Sz(a.Width, a.Height)
	if a.Scale != 0 {
		def, err := e.bundle.DefaultSize()
		if err != nil {
			return nil, bundle.Resolution{}, err
		}
		target = def.Scale(a.Scale)
	}
	// The resampler allocates the whole target, so an oversized request
	// must fail here rather than exhaust memory.
	if limit := s.cfg.MaxDimension; target.Width > limit || target.Height > limit {
		return nil, bundle.Resolution{}, fmt.Errorf("%w: %v exceeds max dimension %d", bundle.ErrInvalidSize, target, limit)
	}

	var r bundle.Resolution
	if a.Scale != 0 {
		r, err = e.bundle.BitmapForScale(a.Scale)
	} else {
		r, err = e.bundle.Bitmap(target)
	}
	if err != nil {
		return nil, bundle.Resolution{}, err
	}
	if r.Origin == bundle.Rescaled {
		s.debugf("%s: rescaled %v from %v (%d cached sizes)", e.id, r.Size, r.Source, len(e.bundle.CachedSizes()))
	}
	return e, r, nil
}

type bundleGetBitmapArgs struct {
	bitmapArgs
	OmitImage bool `json:"omit_image"`
}

// BitmapResult is the result of bundle_get_bitmap.
type BitmapResult struct {
	ID     string                `json:"id"`
	Size   bundle.Size           `json:"size"`
	Origin string                `json:"origin"`
	Source *bundle.Size          `json:"source,omitempty"`
	Image  *imaging.EncodedImage `json:"image,omitempty"`
}

func (s *Server) handleBundleGetBitmap(args json.RawMessage) (interface{}, error) {
	var a bundleGetBitmapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, r, err := s.resolve(a.bitmapArgs)
	if err != nil {
		return nil, err
	}

	result := &BitmapResult{ID: e.id, Size: r.Size, Origin: r.Origin.String()}
	if r.Origin == bundle.Rescaled {
		src := r.Source
		result.Source = &src
	}
	if !a.OmitImage {
		result.Image, err = imaging.EncodePNG(r.Image)
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

type bundleSampleColorArgs struct {
	bitmapArgs
	Points []imaging.LabeledPoint `json:"points"`
}

// SampleColorResult is the result of bundle_sample_color.
type SampleColorResult struct {
	ID      string                       `json:"id"`
	Size    bundle.Size                  `json:"size"`
	Origin  string                       `json:"origin"`
	Samples []imaging.LabeledColorResult `json:"samples"`
}

func (s *Server) handleBundleSampleColor(args json.RawMessage) (interface{}, error) {
	var a bundleSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Points) == 0 {
		return nil, errors.New("points must not be empty")
	}
	e, r, err := s.resolve(a.bitmapArgs)
	if err != nil {
		return nil, err
	}

	samples, err := imaging.SampleColorsMulti(r.Image, a.Points)
	if err != nil {
		return nil, err
	}
	return &SampleColorResult{ID: e.id, Size: r.Size, Origin: r.Origin.String(), Samples: samples}, nil
}

// VariantComparison compares a resolved bitmap with one variant rescaled to
// the same size.
type VariantComparison struct {
	Variant  bundle.Size            `json:"variant"`
	IsSource bool                   `json:"is_source"`
	Result   *imaging.CompareResult `json:"result"`
}

// CompareResult is the result of bundle_compare.
type CompareResult struct {
	ID          string              `json:"id"`
	Size        bundle.Size         `json:"size"`
	Origin      string              `json:"origin"`
	Comparisons []VariantComparison `json:"comparisons"`
}

// handleBundleCompare checks that every variant depicts the same graphic by
// comparing the resolved bitmap with each variant rescaled to the target.
func (s *Server) handleBundleCompare(args json.RawMessage) (interface{}, error) {
	var a bitmapArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	e, r, err := s.resolve(a)
	if err != nil {
		return nil, err
	}
	set := e.bundle.VariantSet()
	source := bundle.ResolveIndex(set, r.Size)
	result := &CompareResult{ID: e.id, Size: r.Size, Origin: r.Origin.String()}
	for i := 0; i < set.Len(); i++ {
		v := set.At(i)
		ref := v.Image
		if v.Size() != r.Size {
			if ref, err = e.bundle.Rescale(v.Image, r.Size); err != nil {
				return nil, err
			}
		}
		cmp, err := imaging.CompareImages(r.Image, ref)
		if err != nil {
			return nil, err
		}
		result.Comparisons = append(result.Comparisons, VariantComparison{
			Variant:  v.Size(),
			IsSource: i == source,
			Result:   cmp,
		})
	}
	return result, nil
}

// FiltersResult lists the available resample filters.
type FiltersResult struct {
	Current string   `json:"current"`
	Filters []string `json:"filters"`
}

func (s *Server) handleBundleFilters(args json.RawMessage) (interface{}, error) {
	current := s.cfg.Filter
	if current == "" {
		current = imaging.DefaultFilter
	}
	return &FiltersResult{Current: current, Filters: imaging.FilterNames()}, nil
}
