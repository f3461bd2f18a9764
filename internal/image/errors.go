package imagepkg

import "fmt"

// AssetLoadError reports that an asset could not be fetched or decoded.
type AssetLoadError struct {
	Ref   AssetRef
	Cause error
}

func (e *AssetLoadError) Error() string {
	return fmt.Sprintf("load asset %s: %v", e.Ref, e.Cause)
}

func (e *AssetLoadError) Unwrap() error { return e.Cause }

// RenderError reports that a drawing surface could not be allocated or encoded.
type RenderError struct {
	Op    string
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render: %s: %v", e.Op, e.Cause)
}

func (e *RenderError) Unwrap() error { return e.Cause }
