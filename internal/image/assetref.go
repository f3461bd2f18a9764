package imagepkg

import (
	"fmt"
	"image"
	"strings"
)

// AssetKind tells the loader where an asset's bytes come from.
type AssetKind int

const (
	AssetFile AssetKind = iota
	AssetURL
	AssetData
)

func (k AssetKind) String() string {
	switch k {
	case AssetFile:
		return "file"
	case AssetURL:
		return "url"
	case AssetData:
		return "data"
	}
	return fmt.Sprintf("AssetKind(%d)", int(k))
}

// AssetRef names one image to load. For AssetData, either Data holds the
// encoded bytes or Location holds a data: URI.
type AssetRef struct {
	Name     string
	Kind     AssetKind
	Location string
	Data     []byte
}

func FileRef(name, path string) AssetRef {
	return AssetRef{Name: name, Kind: AssetFile, Location: path}
}

func URLRef(name, url string) AssetRef {
	return AssetRef{Name: name, Kind: AssetURL, Location: url}
}

func DataRef(name string, data []byte) AssetRef {
	return AssetRef{Name: name, Kind: AssetData, Data: data}
}

// DataURIRef wraps a data: URI such as the one produced by a browser FileReader.
func DataURIRef(name, uri string) AssetRef {
	return AssetRef{Name: name, Kind: AssetData, Location: uri}
}

// ParseRef picks the kind from the shape of s: data: URIs, http(s) URLs,
// anything else is a file path.
func ParseRef(name, s string) AssetRef {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:"):
		return DataURIRef(name, s)
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return URLRef(name, s)
	}
	return FileRef(name, s)
}

func (r AssetRef) String() string {
	loc := r.Location
	if r.Kind == AssetData {
		if loc == "" {
			loc = fmt.Sprintf("%d bytes", len(r.Data))
		} else if len(loc) > 32 {
			loc = loc[:32] + "..."
		}
	}
	if r.Name == "" {
		return fmt.Sprintf("%s(%s)", r.Kind, loc)
	}
	return fmt.Sprintf("%s[%s:%s]", r.Name, r.Kind, loc)
}

// DecodedAsset is a decoded raster image with its natural size.
type DecodedAsset struct {
	Ref    AssetRef
	Image  image.Image
	Width  int
	Height int
}
