package imagepkg

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/tcb-studio/vodunvisual/internal/util"
)

var errMalformedDataURI = errors.New("malformed data URI")

// fetch returns the encoded bytes behind ref.
func (l *Loader) fetch(ctx context.Context, ref AssetRef) ([]byte, error) {
	switch ref.Kind {
	case AssetFile:
		return util.ReadFile(ref.Location, l.maxBytes)
	case AssetURL:
		return util.GetBytes(ctx, l.client, ref.Location, l.maxBytes)
	case AssetData:
		b := ref.Data
		if b == nil {
			var err error
			if b, err = decodeDataURI(ref.Location); err != nil {
				return nil, err
			}
		}
		if l.maxBytes > 0 && int64(len(b)) > l.maxBytes {
			return nil, util.ErrTooLarge
		}
		return b, nil
	}
	return nil, fmt.Errorf("unsupported asset kind %s", ref.Kind)
}

// decodeDataURI extracts the payload of data:[<mediatype>][;base64],<data>.
func decodeDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(strings.ToLower(uri), "data:") {
		return nil, errMalformedDataURI
	}
	header, payload, ok := strings.Cut(uri[len("data:"):], ",")
	if !ok {
		return nil, errMalformedDataURI
	}
	if strings.HasSuffix(strings.ToLower(header), ";base64") {
		b, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformedDataURI, err)
		}
		return b, nil
	}
	s, err := url.PathUnescape(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedDataURI, err)
	}
	return []byte(s), nil
}
